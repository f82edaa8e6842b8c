package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wadjakorntonsri/ito/internal/app"
	"github.com/wadjakorntonsri/ito/pkg/config"
	"github.com/wadjakorntonsri/ito/pkg/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(logging.LogLevel(cfg.LogLevel))

	if err := run(cfg, logger); err != nil {
		logger.Error(context.Background(), "server exited", "error", err)
		os.Exit(1)
	}
}

// run serves until SIGINT/SIGTERM or a listener failure. The database pool is
// closed on every return path.
func run(cfg *config.Config, logger *logging.Logger) error {
	ctx := context.Background()

	a, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer a.Close()

	mux, err := a.Handler()
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info(ctx, "server starting", "addr", cfg.Addr(), "env", cfg.AppEnv, "database", cfg.DatabaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	logger.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	return nil
}
