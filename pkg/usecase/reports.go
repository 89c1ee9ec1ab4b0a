package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/pkg/domain/interfaces"
	"github.com/secmon-lab/crashstats/pkg/domain/model"
	"github.com/secmon-lab/crashstats/pkg/domain/types"
)

// Reports builds the dashboard report pages from middleware data
type Reports struct {
	mw       interfaces.Middleware
	bugzilla interfaces.Bugzilla
	config   *model.DashboardConfig
	now      model.Clock
}

// Option configures Reports
type Option func(*Reports)

// WithClock replaces the clock reports use for "now"
func WithClock(clock model.Clock) Option {
	return func(r *Reports) {
		r.now = clock
	}
}

// WithBugzilla sets the Bugzilla client used by BugInfo
func WithBugzilla(bz interfaces.Bugzilla) Option {
	return func(r *Reports) {
		r.bugzilla = bz
	}
}

// NewReports creates the report use cases. A nil config uses the built-in defaults.
func NewReports(mw interfaces.Middleware, config *model.DashboardConfig, opts ...Option) *Reports {
	if config == nil {
		config = model.DefaultDashboardConfig()
	}
	r := &Reports{
		mw:     mw,
		config: config,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the dashboard configuration
func (r *Reports) Config() *model.DashboardConfig {
	return r.config
}

// DefaultProduct returns the product shown when the URL names none
func (r *Reports) DefaultProduct() types.Product {
	return r.config.DefaultProduct
}

// Today returns the current UTC date as YYYY-MM-DD
func (r *Reports) Today() string {
	return types.FormatDate(r.now())
}

// ResolveBase fetches the current versions and resolves the product and
// ';' separated versions of a request against them
func (r *Reports) ResolveBase(ctx context.Context, product types.Product, versions string) (*model.BaseData, error) {
	current, err := r.mw.CurrentVersions(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get current versions")
	}
	return model.ResolveBase(current, product, versions, r.config.DefaultProduct)
}

func badRequest(msg string, opts ...goerr.Option) error {
	return goerr.New(msg, append(opts, goerr.T(model.ErrTagBadRequest))...)
}

// parseDate parses a YYYY-MM-DD request parameter
func parseDate(name, value string) (time.Time, error) {
	t, err := types.ParseDate(value)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "invalid date parameter",
			goerr.V("parameter", name),
			goerr.T(model.ErrTagBadRequest))
	}
	return t, nil
}

// parseInt parses an integer request parameter
func parseInt(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, goerr.Wrap(err, "invalid integer parameter",
			goerr.V("parameter", name),
			goerr.V("value", value),
			goerr.T(model.ErrTagBadRequest))
	}
	return n, nil
}

// optionInt returns value as an int when it is one of allowed, else fallback
func optionInt(value string, allowed []int, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || !model.ContainsInt(allowed, n) {
		return fallback
	}
	return n
}

// versionsOrFeatured returns the resolved versions of base, or the featured
// versions of its product when the URL named none
func versionsOrFeatured(base *model.BaseData) types.Versions {
	if len(base.Versions) > 0 {
		return base.Versions
	}
	return base.Featured()
}

// singleVersion returns the version when exactly one is selected
func singleVersion(versions types.Versions) types.Version {
	if len(versions) == 1 {
		return versions[0]
	}
	return ""
}
