package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wadjakorntonsri/ito/pkg/logging"
)

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name           string
		incomingID     string
		handlerStatus  int
		expectedStatus float64
		replaced       bool
	}{
		{name: "generates id", handlerStatus: http.StatusTeapot, expectedStatus: http.StatusTeapot},
		{name: "reuses client id", incomingID: "client-id-1", handlerStatus: http.StatusNoContent, expectedStatus: http.StatusNoContent},
		{name: "implicit ok", handlerStatus: 0, expectedStatus: http.StatusOK},
		{name: "replaces overlong id", incomingID: strings.Repeat("a", maxCorrelationID+1), handlerStatus: http.StatusOK, expectedStatus: http.StatusOK, replaced: true},
		{name: "replaces id with odd characters", incomingID: "abc\"} {\"x", handlerStatus: http.StatusOK, expectedStatus: http.StatusOK, replaced: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			mw := NewMiddleware(logging.New(&buf, logging.LevelInfo))

			var seenID string
			handler := mw.RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = logging.GetCorrelationID(r.Context())
				if tt.handlerStatus != 0 {
					w.WriteHeader(tt.handlerStatus)
				}
			}))

			req := httptest.NewRequest(http.MethodGet, "/foo", nil)
			if tt.incomingID != "" {
				req.Header.Set(correlationHeader, tt.incomingID)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.NotEmpty(t, seenID)
			switch {
			case tt.replaced:
				assert.NotEqual(t, tt.incomingID, seenID)
				assert.Len(t, seenID, 36)
			case tt.incomingID != "":
				assert.Equal(t, tt.incomingID, seenID)
			}
			assert.Equal(t, seenID, rr.Header().Get(correlationHeader))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "request", entry["msg"])
			assert.Equal(t, "/foo", entry["path"])
			assert.Equal(t, tt.expectedStatus, entry["status"])
			assert.Equal(t, seenID, entry["correlation_id"])
		})
	}
}

func TestRecovererReturns500(t *testing.T) {
	f := newFixture(t)
	f.resolver = nil // nil resolver panics on use

	rr := serve(t, f.router(), httptest.NewRequest(http.MethodGet, "/foo", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
