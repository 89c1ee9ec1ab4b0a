package http

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/frontend"
	"github.com/secmon-lab/crashstats/pkg/usecase"
	"github.com/secmon-lab/crashstats/pkg/utils/apperr"
	"github.com/secmon-lab/crashstats/pkg/utils/metrics"
)

// DefaultReadHeaderTimeout is used when no WithReadHeaderTimeout option is given
const DefaultReadHeaderTimeout = 15 * time.Second

// Server represents the HTTP server
type Server struct {
	*http.Server
	router    chi.Router
	reports   *usecase.Reports
	templates map[string]*template.Template
}

type serverOptions struct {
	metrics           *metrics.Metrics
	readHeaderTimeout time.Duration
	staticFS          http.FileSystem
}

// Option configures the server
type Option func(*serverOptions)

// WithMetrics records HTTP metrics and exposes them on /metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *serverOptions) {
		o.metrics = m
	}
}

// WithReadHeaderTimeout sets the read header timeout of the underlying http.Server
func WithReadHeaderTimeout(d time.Duration) Option {
	return func(o *serverOptions) {
		o.readHeaderTimeout = d
	}
}

// WithStaticFS replaces the embedded static assets
func WithStaticFS(fs http.FileSystem) Option {
	return func(o *serverOptions) {
		o.staticFS = fs
	}
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, reports *usecase.Reports, opts ...Option) (*Server, error) {
	options := serverOptions{readHeaderTimeout: DefaultReadHeaderTimeout}
	for _, opt := range opts {
		opt(&options)
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	if options.staticFS == nil {
		fs, err := frontend.GetStaticFS()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get embedded static files")
		}
		options.staticFS = fs
	}

	router := chi.NewRouter()
	s := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: options.readHeaderTimeout,
		},
		router:    router,
		reports:   reports,
		templates: templates,
	}

	// Apply global middleware
	router.Use(middleware.StripSlashes)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	if options.metrics != nil {
		router.Use(options.metrics.Middleware)
	}
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)
	if options.metrics != nil {
		router.Handle("/metrics", options.metrics.Handler())
	}
	router.Handle("/static/*", http.StripPrefix("/static", NewStaticHandler(options.staticFS)))

	router.Get("/", s.handleRoot)

	// HTML report pages
	router.Group(func(r chi.Router) {
		r.Use(BaseDataMiddleware(reports, s.renderError))

		r.Get("/products/{product}", s.handleProducts)
		r.Get("/products/{product}/versions/{versions}", s.handleProducts)

		r.Get("/topcrasher/products/{product}", s.handleTopCrasher)
		r.Get("/topcrasher/products/{product}/versions/{versions}", s.handleTopCrasher)
		r.Get("/topcrasher/products/{product}/versions/{versions}/days/{days}", s.handleTopCrasher)
		r.Get("/topcrasher/products/{product}/versions/{versions}/days/{days}/crash_type/{crash_type}", s.handleTopCrasher)
		r.Get("/topcrasher/products/{product}/versions/{versions}/days/{days}/crash_type/{crash_type}/os_name/{os_name}", s.handleTopCrasher)

		r.Get("/daily", s.handleDaily)

		r.Get("/builds/products/{product}", s.handleBuilds)
		r.Get("/builds/products/{product}/versions/{versions}", s.handleBuilds)

		r.Get("/hangreport/products/{product}/versions/{versions}", s.handleHangReport)

		r.Get("/topchangers/products/{product}", s.handleTopChangers)
		r.Get("/topchangers/products/{product}/duration/{duration}", s.handleTopChangers)
		r.Get("/topchangers/products/{product}/versions/{versions}", s.handleTopChangers)
		r.Get("/topchangers/products/{product}/versions/{versions}/duration/{duration}", s.handleTopChangers)

		r.Get("/report/index/{crash_id}", s.handleReportIndex)
		r.Get("/report/list", s.handleReportList)
		r.Get("/query", s.handleQuery)
	})

	// JSON endpoints
	router.Group(func(r chi.Router) {
		r.Use(BaseDataMiddleware(reports, writeError))
		r.Get("/topcrasher/plot_signature/{product}/{versions}/{start_date}/{end_date}/*", s.handlePlotSignature)
	})
	router.Get("/buginfo/bug", s.handleBugInfo)
	router.Get("/signature_summary/json_data", s.handleSignatureSummary)

	return s, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "crashstats",
	})
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode JSON response", "error", err)
	}
}

// writeError writes an error response of a JSON endpoint
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apperr.Handle(r.Context(), err)
	writeJSON(w, r, apperr.StatusCode(err), map[string]string{
		"error": errorMessage(err),
	})
}
