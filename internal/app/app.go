// Package app wires the store, services and HTTP layer together for every
// entrypoint.
package app

import (
	"database/sql"
	"net/http"

	"github.com/wadjakorntonsri/ito/pkg/adapters/handler"
	"github.com/wadjakorntonsri/ito/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/ito/pkg/adapters/view"
	"github.com/wadjakorntonsri/ito/pkg/config"
	"github.com/wadjakorntonsri/ito/pkg/core/services"
	"github.com/wadjakorntonsri/ito/pkg/logging"
)

type App struct {
	DB       *sql.DB
	Repo     *sqlite.SQLiteRepository
	Links    *services.LinkService
	Resolver *services.Resolver
	Logger   *logging.Logger
}

// New opens the database pool described by cfg and builds the service layer.
// The caller owns the pool and must call Close.
func New(cfg *config.Config, logger *logging.Logger) (*App, error) {
	db, err := sqlite.Open(cfg.DatabaseURL, cfg.MaxOpenConns)
	if err != nil {
		return nil, err
	}

	repo, err := sqlite.NewSQLiteRepository(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		DB:       db,
		Repo:     repo,
		Links:    services.NewLinkService(repo, logger),
		Resolver: services.NewResolver(repo, logger),
		Logger:   logger,
	}, nil
}

// Handler builds the HTTP router
func (a *App) Handler() (http.Handler, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	h := handler.NewHTTPHandler(a.Links, a.Resolver, renderer, a.Repo, a.Logger)
	return handler.NewRouter(h, a.Logger), nil
}

func (a *App) Close() error {
	return a.DB.Close()
}
