package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/wadjakorntonsri/ito/internal/app"
	"github.com/wadjakorntonsri/ito/pkg/core/domain"
)

// appFunc returns the App opened by the root command's pre-run hook
type appFunc func() *app.App

func newListCmd(current appFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every link.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			links, err := current().Links.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, l := range links {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", l.ID, l.Alias, l.TargetURL)
			}
			return nil
		},
	}
}

func newCreateCmd(current appFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "create <alias> <target_url>",
		Short:   "Create a link.",
		Example: "  ito create docs https://go.dev/doc/",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := current().Links.Create(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s -> %s (id %d)\n", link.Alias, link.TargetURL, link.ID)
			return nil
		},
	}
}

func newDeleteCmd(current appFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a link by id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			return current().Links.Delete(cmd.Context(), id)
		},
	}
}

func newExportCmd(current appFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write all links as JSON to stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			links, err := current().Links.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(links)
		},
	}
}

func newImportCmd(current appFunc) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import links from a JSON export, skipping aliases that already exist.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer f.Close()

			var links []domain.Link
			if err := json.NewDecoder(f).Decode(&links); err != nil {
				return fmt.Errorf("decode failed: %w", err)
			}

			count := 0
			for _, l := range links {
				// ids are reassigned, aliases are the identity
				_, err := current().Links.Create(cmd.Context(), l.Alias, l.TargetURL)
				switch {
				case errors.Is(err, domain.ErrDuplicateAlias):
					fmt.Fprintf(cmd.ErrOrStderr(), "skipping existing alias: %s\n", l.Alias)
				case err != nil:
					fmt.Fprintf(cmd.ErrOrStderr(), "failed to import %s: %v\n", l.Alias, err)
				default:
					count++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d links\n", count)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file to import")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
