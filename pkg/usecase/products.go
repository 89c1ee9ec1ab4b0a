package usecase

import (
	"context"
	"sort"
	"strconv"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/pkg/domain/interfaces"
	"github.com/secmon-lab/crashstats/pkg/domain/model"
	"github.com/secmon-lab/crashstats/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

// Products builds the product overview: the crash ratio of the selected (or
// featured) versions over the last duration days.
func (r *Reports) Products(ctx context.Context, base *model.BaseData, duration string) (*model.ProductsPage, error) {
	days := optionInt(duration, r.config.ProductsDurations, model.DefaultDuration)
	versions := versionsOrFeatured(base)

	end := r.now()
	start := end.AddDate(0, 0, -(days + 1))

	adu, err := r.mw.ADUByDay(ctx, interfaces.ADUQuery{
		Product:  base.Product,
		Versions: versions,
		OSNames:  r.config.OSNames,
		Start:    start,
		End:      end,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get ADU by day", goerr.V("product", base.Product))
	}

	return &model.ProductsPage{
		Duration: days,
		Version:  singleVersion(versions),
		Versions: versions,
		Graph:    model.PlotGraph(ctx, start, end, adu, base.CurrentVersions),
	}, nil
}

// LatestFeaturedVersion returns the first featured version of the product,
// the version the top crasher page shows when the URL names none
func (r *Reports) LatestFeaturedVersion(base *model.BaseData) (types.Version, error) {
	featured := base.Featured()
	if len(featured) == 0 {
		return "", goerr.New("product has no featured version",
			goerr.V("product", base.Product),
			goerr.T(model.ErrTagNotFound))
	}
	return featured[0], nil
}

// TopCrasherInput holds the optional path parameters of the top crasher page
type TopCrasherInput struct {
	Days      string
	CrashType string
	OSName    string
}

// TopCrasher builds the top crashers by signature report of the first
// selected version, with bug associations merged into each crash
func (r *Reports) TopCrasher(ctx context.Context, base *model.BaseData, in TopCrasherInput) (*model.TopCrasherPage, error) {
	if len(base.Versions) == 0 {
		return nil, goerr.New("no version selected",
			goerr.V("product", base.Product),
			goerr.T(model.ErrTagNotFound))
	}
	version := base.Versions[0]

	days := optionInt(in.Days, r.config.TopCrasherDays, model.DefaultDuration)

	crashType := types.CrashType(in.CrashType)
	if !crashType.IsValid() {
		crashType = types.CrashTypeBrowser
	}

	osName := types.OSName(in.OSName)
	if !r.config.IsTopCrasherOS(osName) {
		osName = ""
	}

	tcbs, err := r.mw.TCBS(ctx, interfaces.TCBSQuery{
		Product:       base.Product,
		Version:       version,
		CrashType:     crashType,
		End:           r.now(),
		DurationHours: days * 24,
		Limit:         r.config.TCBSLimit,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get top crashers",
			goerr.V("product", base.Product),
			goerr.V("version", version))
	}

	bugs, err := r.mw.Bugs(ctx, tcbs.Signatures())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get bug associations")
	}
	tcbs.AttachBugs(bugs.Hits)

	return &model.TopCrasherPage{
		Version:   version,
		Days:      days,
		CrashType: crashType,
		OSName:    osName,
		TCBS:      tcbs,
	}, nil
}

// DailyInput holds the query parameters of the crashes per ADU page
type DailyInput struct {
	FormSelection string
	Product       string
	OSNames       []string
	HangType      string
	ReportTypes   []string
	Throttle      []string
	Versions      []string
	DateStart     string
	DateEnd       string
}

// Daily form selections
const (
	FormSelectionByVersion    = "by_version"
	FormSelectionByReportType = "by_report_type"
)

// Daily builds the crashes per ADU graph of a free-form query
func (r *Reports) Daily(ctx context.Context, base *model.BaseData, in DailyInput) (*model.DailyPage, error) {
	formSelection := in.FormSelection
	if formSelection == "" {
		formSelection = FormSelectionByVersion
	}

	product := types.Product(in.Product)
	if product == "" {
		product = r.config.DefaultProduct
	}

	osNames := r.config.OSNames
	if len(in.OSNames) > 0 {
		osNames = make([]types.OSName, len(in.OSNames))
		for i, name := range in.OSNames {
			osNames[i] = types.OSName(name)
		}
	}

	hangType := types.ReportType(in.HangType)
	if hangType == "" {
		hangType = types.ReportTypeAny
	}

	var versions types.Versions
	for _, v := range in.Versions {
		if v != "" {
			versions = append(versions, types.Version(v))
		}
	}
	if len(versions) == 0 {
		versions = base.CurrentVersions.Featured(product)
	}

	end := r.now()
	if in.DateEnd != "" {
		var err error
		if end, err = parseDate("date_end", in.DateEnd); err != nil {
			return nil, err
		}
	}
	start := end.AddDate(0, 0, -8)
	if in.DateStart != "" {
		var err error
		if start, err = parseDate("date_start", in.DateStart); err != nil {
			return nil, err
		}
	}

	reportTypes := make([]types.ReportType, 0, len(in.ReportTypes))
	for _, rt := range in.ReportTypes {
		reportTypes = append(reportTypes, types.ReportType(rt))
	}
	queryTypes := []types.ReportType{hangType}
	if formSelection == FormSelectionByReportType {
		queryTypes = reportTypes
	}

	ctxlog.From(ctx).Debug("daily report",
		"product", product,
		"versions", versions.String(),
		"os", types.JoinOSNames(osNames),
		"report_types", types.JoinReportTypes(queryTypes),
	)

	adu, err := r.mw.ADUByDay(ctx, interfaces.ADUQuery{
		Product:     product,
		Versions:    versions,
		OSNames:     osNames,
		Start:       start,
		End:         end,
		ReportTypes: queryTypes,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get ADU by day", goerr.V("product", product))
	}

	return &model.DailyPage{
		FormSelection: formSelection,
		Product:       product,
		Versions:      versions,
		StartDate:     types.FormatDate(start),
		EndDate:       types.FormatDate(end),
		Throttle:      in.Throttle,
		OSNames:       osNames,
		HangType:      hangType,
		ReportTypes:   reportTypes,
		Graph:         model.PlotGraph(ctx, start, end, adu, base.CurrentVersions),
	}, nil
}

// Builds lists the nightly builds of the product, or of one version
func (r *Reports) Builds(ctx context.Context, base *model.BaseData, version types.Version) (*model.BuildsPage, error) {
	builds, err := r.mw.DailyBuilds(ctx, base.Product, version)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get daily builds",
			goerr.V("product", base.Product),
			goerr.V("version", version))
	}
	return &model.BuildsPage{
		Version: version,
		Groups:  model.GroupNightlyBuilds(builds),
	}, nil
}

// HangReportInput holds the query parameters of the hang report
type HangReportInput struct {
	Page     string
	Duration string
}

// HangReport builds one page of the hang pairs report. The page is not
// clamped here; callers redirect when PastLastPage reports true.
func (r *Reports) HangReport(ctx context.Context, base *model.BaseData, in HangReportInput) (*model.HangReportPage, error) {
	page := 1
	if in.Page != "" {
		n, err := parseInt("page", in.Page)
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, badRequest("Invalid page", goerr.V("page", n))
		}
		page = n
	}

	duration := model.DefaultDuration
	if in.Duration != "" {
		n, err := strconv.Atoi(in.Duration)
		if err != nil || !model.ContainsInt(r.config.ReportDurations, n) {
			return nil, badRequest("Invalid duration", goerr.V("duration", in.Duration))
		}
		duration = n
	}

	if len(base.Versions) == 0 {
		return nil, badRequest("a version is required", goerr.V("product", base.Product))
	}
	version := base.Versions[0]

	report, err := r.mw.HangReport(ctx, interfaces.HangReportQuery{
		Product:  base.Product,
		Version:  version,
		End:      r.now(),
		Duration: duration,
		ListSize: r.config.HangListSize,
		Page:     page,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get hang report",
			goerr.V("product", base.Product),
			goerr.V("version", version))
	}

	return &model.HangReportPage{
		Version:     version,
		Duration:    duration,
		CurrentPage: page,
		Report:      report,
	}, nil
}

// TopChangers lists the browser signatures that climbed in the top crashers
// ranking, grouped by how many ranks they gained, biggest climb first
func (r *Reports) TopChangers(ctx context.Context, base *model.BaseData, duration string) (*model.TopChangersPage, error) {
	days := model.DefaultDuration
	if duration != "" {
		n, err := strconv.Atoi(duration)
		if err != nil || !model.ContainsInt(r.config.ReportDurations, n) {
			return nil, badRequest("Invalid duration", goerr.V("duration", duration))
		}
		days = n
	}

	versions := versionsOrFeatured(base)
	end := r.now()

	reports := make([]*model.TCBS, len(versions))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, v := range versions {
		eg.Go(func() error {
			tcbs, err := r.mw.TCBS(egCtx, interfaces.TCBSQuery{
				Product:       base.Product,
				Version:       v,
				CrashType:     types.CrashTypeBrowser,
				End:           end,
				DurationHours: days * 24,
				Limit:         r.config.TCBSLimit,
			})
			if err != nil {
				return goerr.Wrap(err, "failed to get top crashers", goerr.V("version", v))
			}
			reports[i] = tcbs
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	byChange := make(map[int][]model.TopCrash)
	for _, tcbs := range reports {
		for _, crash := range tcbs.Crashes {
			if crash.ChangeInRank.New || crash.ChangeInRank.Value <= 0 {
				continue
			}
			byChange[crash.ChangeInRank.Value] = append(byChange[crash.ChangeInRank.Value], crash)
		}
	}

	changers := make([]model.ChangerGroup, 0, len(byChange))
	for change, crashes := range byChange {
		changers = append(changers, model.ChangerGroup{Change: change, Crashes: crashes})
	}
	sort.Slice(changers, func(i, j int) bool {
		return changers[i].Change > changers[j].Change
	})

	return &model.TopChangersPage{
		Duration: days,
		Versions: versions,
		Changers: changers,
	}, nil
}
