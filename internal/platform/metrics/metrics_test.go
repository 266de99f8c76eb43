package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCacheResult(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	m.CacheResult("categories", "hit")
	m.CacheResult("categories", "hit")
	m.CacheResult("categories", "miss")

	require.Equal(t, 2.0, testutil.ToFloat64(m.cacheResults.WithLabelValues("categories", "hit")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.cacheResults.WithLabelValues("categories", "miss")))
}

func TestObserveRequest(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	m.ObserveRequest(http.MethodGet, "/api/category/", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	require.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/category/", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestDoubleRegisterFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)
	_, err = New(reg)
	require.Error(t, err)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.CacheResult("categories", "hit")
	m.ObserveRequest("GET", "/", 200, time.Second)
}

func TestHandlerExposesCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)
	m.CacheResult("categories", "miss")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), `creature_reviews_cache_results_total{cache="categories",result="miss"} 1`))
}
