package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/wadjakorntonsri/ito/pkg/logging"
)

const (
	correlationHeader = "X-Correlation-ID"
	maxCorrelationID  = 64
)

type Middleware struct {
	logger *logging.Logger
}

func NewMiddleware(logger *logging.Logger) *Middleware {
	return &Middleware{logger: logger}
}

// RequestLogger tags the request with a correlation id and logs its outcome.
// A correlation id sent by the client is reused when it is short and made of
// [A-Za-z0-9._-], otherwise a fresh one is generated.
func (m *Middleware) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.WithCorrelationID(r.Context(), clientCorrelationID(r))
		w.Header().Set(correlationHeader, logging.GetCorrelationID(ctx))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.logger.Info(ctx, "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		}()

		next.ServeHTTP(ww, r.WithContext(ctx))
	})
}

func clientCorrelationID(r *http.Request) string {
	id := r.Header.Get(correlationHeader)
	if len(id) > maxCorrelationID {
		return ""
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return ""
		}
	}
	return id
}

// DecodedRoutePath makes chi match against the decoded path. Without it chi
// routes on RawPath whenever the client's escaping is not canonical, and URL
// params such as {alias} arrive still percent-encoded.
func DecodedRoutePath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePath == "" {
			rctx.RoutePath = r.URL.Path
		}
		next.ServeHTTP(w, r)
	})
}
