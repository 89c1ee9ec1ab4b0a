package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/pkg/domain/interfaces"
	"github.com/secmon-lab/crashstats/pkg/domain/model"
	"github.com/secmon-lab/crashstats/pkg/domain/types"
	"github.com/secmon-lab/crashstats/pkg/utils/dates"
	"golang.org/x/sync/errgroup"
)

// splitList splits a comma separated parameter, dropping empty items
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// BugInfo returns the requested fields of comma separated bug IDs, as
// Bugzilla answers them
func (r *Reports) BugInfo(ctx context.Context, bugIDs, fields string) (json.RawMessage, error) {
	if r.bugzilla == nil {
		return nil, goerr.New("bugzilla client is not configured")
	}

	ids := splitList(bugIDs)
	if len(ids) == 0 {
		return nil, badRequest("bug_ids is required")
	}
	for _, id := range ids {
		if !isDigits(id) {
			return nil, badRequest("bug_ids must be numeric", goerr.V("bug_id", id))
		}
	}

	include := splitList(fields)
	if len(include) == 0 {
		return nil, badRequest("include_fields is required")
	}

	info, err := r.bugzilla.BugInfo(ctx, ids, include)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get bug info", goerr.V("bug_ids", ids))
	}
	return info, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

// PlotSignature returns the trend graph of a signature between two dates
func (r *Reports) PlotSignature(ctx context.Context, base *model.BaseData, startDate, endDate string, signature types.Signature) (*model.TrendGraph, error) {
	start, err := parseDate("start_date", startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", endDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, badRequest("end_date is before start_date",
			goerr.V("start_date", startDate),
			goerr.V("end_date", endDate))
	}

	trend, err := r.mw.SignatureTrend(ctx, interfaces.SignatureTrendQuery{
		Product:       base.Product,
		Versions:      base.Versions,
		Signature:     signature,
		End:           end,
		DurationHours: int(dates.Hours(start, end)),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get signature trend", goerr.V("signature", signature))
	}

	return model.NewTrendGraph(trend), nil
}

// SignatureSummary fetches every breakdown of a signature since date
// concurrently and reshapes them for the summary tables
func (r *Reports) SignatureSummary(ctx context.Context, signature types.Signature, date string) (*model.SignatureSummary, error) {
	if signature == "" {
		return nil, badRequest("signature is required")
	}
	start, err := parseDate("date", date)
	if err != nil {
		return nil, err
	}
	end := r.now()

	var mu sync.Mutex
	results := make(map[model.SummaryReportType][]model.SignatureSummaryRow, len(model.SummaryReportTypes))

	eg, egCtx := errgroup.WithContext(ctx)
	for _, reportType := range model.SummaryReportTypes {
		eg.Go(func() error {
			rows, err := r.mw.SignatureSummary(egCtx, reportType, signature, start, end)
			if err != nil {
				return goerr.Wrap(err, "failed to get signature summary",
					goerr.V("report_type", reportType),
					goerr.V("signature", signature))
			}
			mu.Lock()
			results[reportType] = rows
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return model.NewSignatureSummary(results), nil
}
