package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/pkg/domain/interfaces"
	"github.com/secmon-lab/crashstats/pkg/service/middleware"
	"github.com/secmon-lab/crashstats/pkg/utils/metrics"
	"github.com/urfave/cli/v3"
)

// Middleware holds the connection settings of the crash stats middleware
// and of the Bugzilla API
type Middleware struct {
	BaseURL     string
	HTTPHost    string
	Username    string
	Password    string
	Timeout     time.Duration
	BugzillaURL string
}

// Flags returns CLI flags for Middleware configuration
func (m *Middleware) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "mware-base-url",
			Usage:       "Base URL of the crash stats middleware",
			Category:    "Middleware",
			Required:    true,
			Sources:     cli.EnvVars("CRASHSTATS_MWARE_BASE_URL"),
			Destination: &m.BaseURL,
		},
		&cli.StringFlag{
			Name:        "mware-http-host",
			Usage:       "Host header sent to the middleware",
			Category:    "Middleware",
			Sources:     cli.EnvVars("CRASHSTATS_MWARE_HTTP_HOST"),
			Destination: &m.HTTPHost,
		},
		&cli.StringFlag{
			Name:        "mware-username",
			Usage:       "Basic auth user name for the middleware",
			Category:    "Middleware",
			Sources:     cli.EnvVars("CRASHSTATS_MWARE_USERNAME"),
			Destination: &m.Username,
		},
		&cli.StringFlag{
			Name:        "mware-password",
			Usage:       "Basic auth password for the middleware",
			Category:    "Middleware",
			Sources:     cli.EnvVars("CRASHSTATS_MWARE_PASSWORD"),
			Destination: &m.Password,
		},
		&cli.DurationFlag{
			Name:        "mware-timeout",
			Usage:       "Timeout of a single middleware request",
			Category:    "Middleware",
			Value:       middleware.DefaultTimeout,
			Sources:     cli.EnvVars("CRASHSTATS_MWARE_TIMEOUT"),
			Destination: &m.Timeout,
		},
		&cli.StringFlag{
			Name:        "bugzilla-base-url",
			Usage:       "Base URL of the Bugzilla REST API",
			Category:    "Middleware",
			Value:       middleware.DefaultBugzillaURL,
			Sources:     cli.EnvVars("CRASHSTATS_BUGZILLA_BASE_URL"),
			Destination: &m.BugzillaURL,
		},
	}
}

// Configure creates the middleware and Bugzilla clients. Both read through
// cache when it is not nil.
func (m *Middleware) Configure(cache interfaces.Cache, ttl time.Duration, mt *metrics.Metrics) (*middleware.Client, *middleware.Bugzilla, error) {
	opts := []middleware.Option{
		middleware.WithTimeout(m.Timeout),
		middleware.WithMetrics(mt),
	}
	if cache != nil {
		opts = append(opts, middleware.WithCache(cache, ttl))
	}

	client, err := middleware.New(m.BaseURL, append(opts,
		middleware.WithHTTPHost(m.HTTPHost),
		middleware.WithBasicAuth(m.Username, m.Password),
	)...)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create middleware client",
			goerr.V("base_url", m.BaseURL))
	}

	bugzilla, err := middleware.NewBugzilla(m.BugzillaURL, opts...)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create bugzilla client",
			goerr.V("base_url", m.BugzillaURL))
	}

	return client, bugzilla, nil
}

// LogValue returns structured log value. The password is never logged.
func (m Middleware) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", m.BaseURL),
		slog.String("http_host", m.HTTPHost),
		slog.String("username", m.Username),
		slog.Bool("has_password", m.Password != ""),
		slog.Duration("timeout", m.Timeout),
		slog.String("bugzilla_base_url", m.BugzillaURL),
	)
}
