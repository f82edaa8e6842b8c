package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wadjakorntonsri/ito/pkg/core/domain"
	"github.com/wadjakorntonsri/ito/pkg/logging"
	"github.com/wadjakorntonsri/ito/pkg/ports"
)

// PageRenderer turns a list of links into an HTML page
type PageRenderer interface {
	Render(links []domain.Link) ([]byte, error)
}

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type HTTPHandler struct {
	service  ports.LinkService
	resolver ports.Resolver
	renderer PageRenderer
	pinger   Pinger
	logger   *logging.Logger
}

func NewHTTPHandler(service ports.LinkService, resolver ports.Resolver, renderer PageRenderer, pinger Pinger, logger *logging.Logger) *HTTPHandler {
	return &HTTPHandler{
		service:  service,
		resolver: resolver,
		renderer: renderer,
		pinger:   pinger,
		logger:   logger,
	}
}

// Index renders every link
func (h *HTTPHandler) Index(w http.ResponseWriter, r *http.Request) {
	links, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := h.renderer.Render(links)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func (h *HTTPHandler) Favicon(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
}

// Redirect to the target of an alias
func (h *HTTPHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	alias := chi.URLParam(r, "alias")

	target, err := h.resolver.Resolve(r.Context(), alias)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Create a link from a form-encoded alias and target_url
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error: invalid form body", http.StatusBadRequest)
		return
	}

	if _, err := h.service.Create(r.Context(), r.PostForm.Get("alias"), r.PostForm.Get("target_url")); err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Delete a link by id
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Error: invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeError maps domain errors to status codes. Anything unrecognised is a 500
// and its details stay in the log.
func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateAlias),
		errors.Is(err, domain.ErrInvalidURL),
		errors.Is(err, domain.ErrInvalidAlias):
		status = http.StatusBadRequest
	default:
		h.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "Error: internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Debug(r.Context(), "request rejected", "status", status, "error", err)
	http.Error(w, "Error: "+err.Error(), status)
}
