package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"creature-reviews/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
)

type observed struct {
	method string
	route  string
	status int
}

type fakeRecorder struct {
	calls []observed
}

func (f *fakeRecorder) ObserveRequest(method, route string, status int, _ time.Duration) {
	f.calls = append(f.calls, observed{method: method, route: route, status: status})
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: &buf})
	rec := &fakeRecorder{}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(RequestLogger(log, rec))
	r.Get("/creature/{creatureID}", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	res := httptest.NewRecorder()
	r.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/creature/7", nil))

	require.Equal(t, http.StatusNotFound, res.Code)
	require.Equal(t, []observed{{method: "GET", route: "/creature/{creatureID}", status: 404}}, rec.calls)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "warn", line["level"])
	require.Equal(t, "/creature/7", line["path"])
	require.Equal(t, "/creature/{creatureID}", line["route"])
	require.NotEmpty(t, line["request_id"])
}

func TestRequestLoggerDefaultsStatus(t *testing.T) {
	rec := &fakeRecorder{}
	h := RequestLogger(nil, rec)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	res := httptest.NewRecorder()
	h.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Len(t, rec.calls, 1)
	require.Equal(t, http.StatusOK, rec.calls[0].status)
	require.Equal(t, "", rec.calls[0].route)
}
