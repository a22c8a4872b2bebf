// Package metrics declares the Prometheus collectors exported at /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JaimeStill/discvault/pkg/middleware"
)

// HTTP metrics
var (
	// HTTPRequestsTotal counts completed requests by method, route and status class.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discvault_http_requests_total",
			Help: "Completed HTTP requests by method, route and status class",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discvault_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)
)

// Lookup metrics
var (
	// MusicBrainzRequestsTotal counts upstream requests by endpoint and outcome.
	MusicBrainzRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discvault_musicbrainz_requests_total",
			Help: "MusicBrainz requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	// CacheLookupsTotal counts cache reads by cache name and result (hit/miss/error).
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discvault_cache_lookups_total",
			Help: "Cache reads by cache and result",
		},
		[]string{"cache", "result"},
	)

	// CircuitBreakerState tracks breaker state (0=closed, 1=half-open, 2=open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "discvault_circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"component"},
	)
)

// HTTP is the middleware.HTTPRecorder backed by the HTTP collectors.
var HTTP middleware.HTTPRecorder = httpRecorder{}

type httpRecorder struct{}

func (httpRecorder) ObserveRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, middleware.StatusClass(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
