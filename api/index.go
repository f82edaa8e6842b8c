package handler

import (
	"context"
	"net/http"

	"github.com/wadjakorntonsri/ito/internal/app"
	"github.com/wadjakorntonsri/ito/pkg/config"
	"github.com/wadjakorntonsri/ito/pkg/logging"
)

var mux http.Handler

func init() {
	cfg := config.Load()
	logger := logging.NewLogger(logging.LogLevel(cfg.LogLevel))

	// Note: On serverless platforms a local file is ephemeral unless DATABASE_URL points at libsql
	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error(context.Background(), "failed to connect to database", "error", err)
		panic(err)
	}

	mux, err = a.Handler()
	if err != nil {
		panic(err)
	}
}

// Handler is the serverless entrypoint
func Handler(w http.ResponseWriter, r *http.Request) {
	mux.ServeHTTP(w, r)
}
