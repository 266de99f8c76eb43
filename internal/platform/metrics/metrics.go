package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "creature_reviews"

// Metrics agrupa los collectors del servicio.
type Metrics struct {
	cacheResults    *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDurationSec *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		cacheResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_results_total",
			Help:      "Lecturas de cache por resultado (hit, miss, error).",
		}, []string{"cache", "result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requests HTTP atendidos.",
		}, []string{"method", "route", "status"}),
		httpDurationSec: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de los requests HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	for _, c := range []prometheus.Collector{m.cacheResults, m.httpRequests, m.httpDurationSec} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// CacheResult implementa categories.CacheRecorder.
func (m *Metrics) CacheResult(cache, result string) {
	if m == nil {
		return
	}
	m.cacheResults.WithLabelValues(cache, result).Inc()
}

// ObserveRequest implementa middleware.RequestRecorder.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDurationSec.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
