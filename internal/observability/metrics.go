package observability

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of one process. A nil *Metrics is a
// valid no-op recorder.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	errors   *prometheus.CounterVec
	auth     *prometheus.CounterVec
	edge     *prometheus.CounterVec
}

// NewMetrics registers collectors under namespace on a private registry.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_errors_total",
			Help:      "Error envelopes rendered, by kind.",
		}, []string{"kind"}),
		auth: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_decisions_total",
			Help:      "Authentication gate outcomes.",
		}, []string{"outcome"}),
		edge: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edge_decisions_total",
			Help:      "Edge route guard decisions.",
		}, []string{"decision"}),
	}
	m.registry.MustRegister(m.requests, m.latency, m.errors, m.auth, m.edge)
	return m
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(kind string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(kind).Inc()
}

// RecordAuth counts one gate outcome ("ok" or a failure kind).
func (m *Metrics) RecordAuth(outcome string) {
	if m == nil {
		return
	}
	m.auth.WithLabelValues(outcome).Inc()
}

// RecordEdge counts one edge guard decision.
func (m *Metrics) RecordEdge(decision string) {
	if m == nil {
		return
	}
	m.edge.WithLabelValues(decision).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
