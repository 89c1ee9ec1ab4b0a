package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/pkg/domain/interfaces"
	"github.com/secmon-lab/crashstats/pkg/domain/model"
	"github.com/secmon-lab/crashstats/pkg/domain/types"
)

// timestampLayout is how the middleware expects date-times in paths
const timestampLayout = "2006-01-02T15:04:05"

// seg escapes a single path segment
func seg[T ~string](v T) string {
	return url.PathEscape(string(v))
}

// segs escapes each value and joins them with ';'
func segs[T ~string](values []T) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = url.PathEscape(string(v))
	}
	return strings.Join(escaped, ";")
}

func date(t time.Time) string {
	return types.FormatDate(t)
}

func timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// hourly formats t truncated to the hour so requests made within the same
// hour share a cache key
func hourly(t time.Time) string {
	return timestamp(t.Truncate(time.Hour))
}

// CurrentVersions returns every release known to the middleware
func (c *Client) CurrentVersions(ctx context.Context) (model.CurrentVersions, error) {
	var resp struct {
		CurrentVersions model.CurrentVersions `json:"currentversions"`
	}
	if err := c.fetch(ctx, request{endpoint: "current_versions", path: "/current/versions/"}, &resp); err != nil {
		return nil, err
	}
	return resp.CurrentVersions, nil
}

// ADUByDay returns crash and active user counts per day and version
func (c *Client) ADUByDay(ctx context.Context, q interfaces.ADUQuery) (*model.ADUByDay, error) {
	reportTypes := q.ReportTypes
	if len(reportTypes) == 0 {
		reportTypes = []types.ReportType{types.ReportTypeAny}
	}
	path := fmt.Sprintf("/adu/byday/p/%s/v/%s/rt/%s/os/%s/start/%s/end/%s",
		seg(q.Product), segs(q.Versions), segs(reportTypes), segs(q.OSNames),
		date(q.Start), date(q.End))

	var resp model.ADUByDay
	if err := c.fetch(ctx, request{endpoint: "adu_by_day", path: path}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TCBS returns the top crashers by signature
func (c *Client) TCBS(ctx context.Context, q interfaces.TCBSQuery) (*model.TCBS, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 300
	}
	path := fmt.Sprintf("/crashes/signatures/product/%s/version/%s/crash_type/%s/end_date/%s/duration/%d/limit/%d/",
		seg(q.Product), seg(q.Version), seg(q.CrashType), seg(hourly(q.End)), q.DurationHours, limit)

	var resp model.TCBS
	if err := c.fetch(ctx, request{endpoint: "tcbs", path: path}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Bugs returns the bugs associated with signatures
func (c *Client) Bugs(ctx context.Context, signatures []types.Signature) (*model.BugAssociations, error) {
	if len(signatures) == 0 {
		return &model.BugAssociations{}, nil
	}
	form := url.Values{}
	for _, s := range signatures {
		form.Add("id", s.String())
	}

	var resp model.BugAssociations
	req := request{endpoint: "bugs", method: http.MethodPost, path: "/bugs/by/signatures", form: form}
	if err := c.fetch(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// HangReport returns one page of hang pairs
func (c *Client) HangReport(ctx context.Context, q interfaces.HangReportQuery) (*model.HangReport, error) {
	path := fmt.Sprintf("/reports/hang/p/%s/v/%s/end/%s/duration/%d/listsize/%d/page/%d",
		seg(q.Product), seg(q.Version), date(q.End), q.Duration, q.ListSize, q.Page)

	var resp model.HangReport
	if err := c.fetch(ctx, request{endpoint: "hang_report", path: path}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ProcessedCrash returns a processed crash report
func (c *Client) ProcessedCrash(ctx context.Context, id types.CrashID) (*model.ProcessedCrash, error) {
	var resp model.ProcessedCrash
	path := "/crash/processed/by/uuid/" + seg(id)
	if err := c.fetch(ctx, request{endpoint: "processed_crash", path: path}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RawCrash returns the metadata submitted with a crash
func (c *Client) RawCrash(ctx context.Context, id types.CrashID) (model.RawCrash, error) {
	var resp model.RawCrash
	path := "/crash/meta/by/uuid/" + seg(id)
	if err := c.fetch(ctx, request{endpoint: "raw_crash", path: path}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CommentsBySignature returns user comments of a signature between start and end
func (c *Client) CommentsBySignature(ctx context.Context, signature types.Signature, start, end time.Time) (*model.Comments, error) {
	path := fmt.Sprintf("/crashes/comments/signature/%s/search_mode/contains/to/%s/from/%s/report_type/any/report_process/any/",
		seg(signature), seg(hourly(end)), seg(hourly(start)))

	var resp model.Comments
	if err := c.fetch(ctx, request{endpoint: "comments", path: path}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CrashPairs returns the crashes that share hangID with id
func (c *Client) CrashPairs(ctx context.Context, id types.CrashID, hangID types.HangID) (model.CrashPairs, error) {
	path := fmt.Sprintf("/crashes/paireduuid/uuid/%s/hangid/%s", seg(id), seg(hangID))

	var resp model.CrashPairs
	if err := c.fetch(ctx, request{endpoint: "crash_pairs", path: path}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ReportList returns crash reports of a signature
func (c *Client) ReportList(ctx context.Context, q interfaces.ReportListQuery) (*model.ReportList, error) {
	path := fmt.Sprintf("/report/list/signature/%s/versions/%s/fields/signature/search_mode/contains/from/%s/report_type/any/report_process/any/result_number/%d/",
		seg(q.Signature), seg(q.Versions), seg(hourly(q.Start)), q.ResultNumber)

	var resp model.ReportList
	if err := c.fetch(ctx, request{endpoint: "report_list", path: path}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search returns signatures of a product between two dates
func (c *Client) Search(ctx context.Context, q interfaces.SearchQuery) (*model.SearchResult, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	path := fmt.Sprintf("/search/signatures/products/%s/in/signature/search_mode/contains/to/%s/from/%s/report_type/any/report_process/any/result_number/%d/",
		seg(q.Product), date(q.End), date(q.Start), limit)

	var resp model.SearchResult
	if err := c.fetch(ctx, request{endpoint: "search", path: path}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignatureTrend returns the history of a signature over DurationHours ending at End
func (c *Client) SignatureTrend(ctx context.Context, q interfaces.SignatureTrendQuery) (*model.SignatureTrend, error) {
	steps := q.Steps
	if steps <= 0 {
		steps = 60
	}
	path := fmt.Sprintf("/topcrash/sig/trend/history/p/%s/v/%s/sig/%s/end/%s/duration/%d/steps/%d",
		seg(q.Product), segs(q.Versions), seg(q.Signature), date(q.End), q.DurationHours, steps)

	var resp model.SignatureTrend
	if err := c.fetch(ctx, request{endpoint: "signature_trend", path: path}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignatureSummary returns one breakdown of a signature
func (c *Client) SignatureSummary(ctx context.Context, reportType model.SummaryReportType, signature types.Signature, start, end time.Time) ([]model.SignatureSummaryRow, error) {
	path := fmt.Sprintf("/signaturesummary/report_type/%s/signature/%s/start_date/%s/end_date/%s",
		seg(reportType), seg(signature), date(start), date(end))

	var resp []model.SignatureSummaryRow
	if err := c.fetch(ctx, request{endpoint: "signature_summary", path: path}, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch signature summary", goerr.V("report_type", reportType))
	}
	return resp, nil
}

// DailyBuilds returns the builds of a product, or of one of its versions
func (c *Client) DailyBuilds(ctx context.Context, product types.Product, version types.Version) ([]model.Build, error) {
	path := "/products/builds/product/" + seg(product)
	if version != "" {
		path += "/version/" + seg(version)
	}

	var resp []model.Build
	if err := c.fetch(ctx, request{endpoint: "daily_builds", path: path}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
