// Package metrics instruments the HTTP surface with Prometheus
// counters/histograms/gauges, exposed at GET /metrics via promhttp. This
// runs alongside the JSON /monitoring/metrics endpoint rather than
// replacing it.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the process-wide Prometheus collectors for this service.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	leaderboardSize prometheus.Gauge
	registrySize    prometheus.Gauge
}

// New creates and registers the service's collectors against the default
// Prometheus registry.
func New() *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leaderboard_http_requests_total",
			Help: "Total HTTP requests processed, by route and status.",
		}, []string{"route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "leaderboard_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		leaderboardSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "leaderboard_index_size",
			Help: "Current number of customers with a positive score in the Ranked Index.",
		}),
		registrySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "leaderboard_registry_size",
			Help: "Current number of customers ever recorded in the Score Registry.",
		}),
	}

	prometheus.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.leaderboardSize,
		m.registrySize,
	)

	return m
}

// Observe records one HTTP request's route, status and duration.
func (m *Metrics) Observe(route string, status int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// SetSizes records the current Registry and Ranked Index sizes.
func (m *Metrics) SetSizes(registryCount, indexCount int) {
	m.registrySize.Set(float64(registryCount))
	m.leaderboardSize.Set(float64(indexCount))
}

// Handler returns the http.Handler serving the Prometheus text exposition
// format, for mounting at GET /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}
