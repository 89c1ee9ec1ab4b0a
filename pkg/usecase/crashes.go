package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/pkg/domain/interfaces"
	"github.com/secmon-lab/crashstats/pkg/domain/model"
	"github.com/secmon-lab/crashstats/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

// commentDays is how far back the report page looks for user comments
const commentDays = 14

// ReportIndex builds the detail page of one crash report
func (r *Reports) ReportIndex(ctx context.Context, crashID string) (*model.ReportIndexPage, error) {
	id := types.CrashID(crashID)
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid crash ID", goerr.T(model.ErrTagBadRequest))
	}

	report, err := r.mw.ProcessedCrash(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get processed crash", goerr.V("crash_id", id))
	}

	page := &model.ReportIndexPage{
		Report:      report,
		ProcessType: report.ResolveProcessType(),
		Product:     report.Product,
		Version:     report.Version,
		Dump:        model.ParseDump(report.Dump),
	}

	end := r.now()
	start := end.AddDate(0, 0, -commentDays)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		bugs, err := r.mw.Bugs(egCtx, []types.Signature{report.Signature})
		if err != nil {
			return goerr.Wrap(err, "failed to get bug associations")
		}
		page.BugAssociations = bugs.Hits
		return nil
	})
	eg.Go(func() error {
		comments, err := r.mw.CommentsBySignature(egCtx, report.Signature, start, end)
		if err != nil {
			return goerr.Wrap(err, "failed to get comments")
		}
		page.Comments = comments
		return nil
	})
	eg.Go(func() error {
		raw, err := r.mw.RawCrash(egCtx, id)
		if err != nil {
			return goerr.Wrap(err, "failed to get raw crash")
		}
		page.Raw = raw
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to build report page", goerr.V("crash_id", id))
	}

	if hangID, ok := page.Raw.HangID(); ok {
		page.HangID = hangID
		pairID := report.UUID
		if pairID == "" {
			pairID = id
		}
		pairs, err := r.mw.CrashPairs(ctx, pairID, hangID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get crash pairs", goerr.V("hang_id", hangID))
		}
		page.CrashPairs = pairs
	}

	return page, nil
}

// ReportListInput holds the query parameters of the report list
type ReportListInput struct {
	Signature  string
	Version    string
	Date       string
	RangeValue string
}

// ReportList lists the crash reports of a signature during the range_value
// days before date
func (r *Reports) ReportList(ctx context.Context, in ReportListInput) (*model.ReportListPage, error) {
	if in.Signature == "" {
		return nil, badRequest("signature is required")
	}
	end, err := parseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	days, err := parseInt("range_value", in.RangeValue)
	if err != nil {
		return nil, err
	}
	if days < 0 {
		return nil, badRequest("range_value must not be negative", goerr.V("range_value", days))
	}

	start := end.AddDate(0, 0, -days)
	list, err := r.mw.ReportList(ctx, interfaces.ReportListQuery{
		Signature:    types.Signature(in.Signature),
		Versions:     in.Version,
		Start:        start,
		ResultNumber: r.config.ReportListSize,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get report list", goerr.V("signature", in.Signature))
	}

	return &model.ReportListPage{
		Signature:  types.Signature(in.Signature),
		Version:    in.Version,
		StartDate:  types.FormatDate(start),
		EndDate:    types.FormatDate(end),
		RangeValue: days,
		ReportList: list,
	}, nil
}

// QueryInput holds the query parameters of the signature search
type QueryInput struct {
	Product   string
	Versions  []string
	OSNames   []string
	DateStart string
	DateEnd   string
	Limit     string
}

// Query searches signatures. Unset parameters default to the base product,
// its featured versions, the configured OS names and the last seven days.
func (r *Reports) Query(ctx context.Context, base *model.BaseData, in QueryInput) (*model.QueryPage, error) {
	product := base.Product
	if in.Product != "" {
		product = types.Product(in.Product)
	}

	var versions types.Versions
	for _, v := range in.Versions {
		versions = append(versions, types.ParseVersions(v)...)
	}
	if len(versions) == 0 {
		versions = base.CurrentVersions.Featured(product)
	}

	osNames := r.config.OSNames
	if len(in.OSNames) > 0 {
		osNames = nil
		for _, name := range in.OSNames {
			for _, part := range strings.Split(name, ";") {
				if part != "" {
					osNames = append(osNames, types.OSName(part))
				}
			}
		}
	}

	end := r.now()
	if in.DateEnd != "" {
		var err error
		if end, err = parseDate("date_end", in.DateEnd); err != nil {
			return nil, err
		}
	}
	start := end.AddDate(0, 0, -model.DefaultDuration)
	if in.DateStart != "" {
		var err error
		if start, err = parseDate("date_start", in.DateStart); err != nil {
			return nil, err
		}
	}
	if end.Before(start) {
		return nil, badRequest("date_end is before date_start",
			goerr.V("date_start", types.FormatDate(start)),
			goerr.V("date_end", types.FormatDate(end)))
	}

	limit := r.config.SearchLimit
	if in.Limit != "" {
		n, err := parseInt("limit", in.Limit)
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, badRequest("limit must be positive", goerr.V("limit", n))
		}
		limit = n
	}

	result, err := r.mw.Search(ctx, interfaces.SearchQuery{
		Product:  product,
		Versions: versions,
		OSNames:  osNames,
		Start:    start,
		End:      end,
		Limit:    limit,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search signatures", goerr.V("product", product))
	}

	return &model.QueryPage{
		Product:   product,
		Versions:  versions,
		OSNames:   osNames,
		StartDate: types.FormatDate(start),
		EndDate:   types.FormatDate(end),
		Limit:     limit,
		Query:     result,
	}, nil
}
