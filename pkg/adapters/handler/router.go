package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/wadjakorntonsri/ito/pkg/logging"
)

// NewRouter creates and configures the main application router
func NewRouter(h *HTTPHandler, logger *logging.Logger) http.Handler {
	mw := NewMiddleware(logger)

	r := chi.NewRouter()
	r.Use(mw.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(DecodedRoutePath)

	r.Get("/", h.Index)
	r.Get("/favicon.ico", h.Favicon)
	r.Get("/healthz", h.Health)
	r.Post("/links", h.Create)
	r.Delete("/links/{id}", h.Delete)

	// Everything else is an alias lookup; static routes above win.
	r.Get("/{alias}", h.Redirect)

	return r
}
