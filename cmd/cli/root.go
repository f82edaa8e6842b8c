package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/wadjakorntonsri/ito/internal/app"
	"github.com/wadjakorntonsri/ito/pkg/config"
	"github.com/wadjakorntonsri/ito/pkg/logging"
)

// cli holds the App opened for the running command
type cli struct {
	app *app.App
}

func (c *cli) current() *app.App {
	return c.app
}

func (c *cli) close() {
	if c.app != nil {
		_ = c.app.Close()
		c.app = nil
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "ito",
		Short:         "Manage ito short links from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(config.Load(), logging.New(os.Stderr, logging.LevelWarn))
			if err != nil {
				return err
			}
			c.app = a
			return nil
		},
	}

	root.AddCommand(
		newListCmd(c.current),
		newCreateCmd(c.current),
		newDeleteCmd(c.current),
		newExportCmd(c.current),
		newImportCmd(c.current),
	)
	return root
}
