package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the dashboard. Each instance owns
// its registry so servers built in tests do not collide.
type Metrics struct {
	registry *prometheus.Registry

	// MiddlewareRequests counts middleware fetches.
	// Labels: endpoint, status (HTTP status code or "error")
	MiddlewareRequests *prometheus.CounterVec

	// MiddlewareDuration measures middleware fetch latency in seconds.
	// Labels: endpoint
	MiddlewareDuration *prometheus.HistogramVec

	// CacheLookups counts response cache lookups.
	// Labels: result (hit|miss|error)
	CacheLookups *prometheus.CounterVec

	// HTTPRequests counts dashboard requests.
	// Labels: method, route, status_code
	HTTPRequests *prometheus.CounterVec

	// HTTPDuration measures dashboard request latency in seconds.
	// Labels: method, route
	HTTPDuration *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry together with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		MiddlewareRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crashstats_middleware_requests_total",
				Help: "Total number of middleware requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),

		MiddlewareDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "crashstats_middleware_request_duration_seconds",
				Help:    "Duration of middleware requests in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"endpoint"},
		),

		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crashstats_cache_lookups_total",
				Help: "Total number of response cache lookups by result",
			},
			[]string{"result"},
		),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crashstats_http_requests_total",
				Help: "Total number of HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "status_code"},
		),

		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "crashstats_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "route"},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveMiddleware records one middleware fetch. status is 0 when the
// request failed before a response arrived.
func (m *Metrics) ObserveMiddleware(endpoint string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.MiddlewareRequests.WithLabelValues(endpoint, label).Inc()
	m.MiddlewareDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// CacheHit records a cache hit
func (m *Metrics) CacheHit() {
	if m != nil {
		m.CacheLookups.WithLabelValues("hit").Inc()
	}
}

// CacheMiss records a cache miss
func (m *Metrics) CacheMiss() {
	if m != nil {
		m.CacheLookups.WithLabelValues("miss").Inc()
	}
}

// CacheError records a failed cache lookup
func (m *Metrics) CacheError() {
	if m != nil {
		m.CacheLookups.WithLabelValues("error").Inc()
	}
}

// Middleware is a chi middleware recording request count and latency per
// route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
