package interfaces

//go:generate moq -out mocks/middleware_mock.go -pkg mocks . Middleware Bugzilla

import (
	"context"
	"encoding/json"
	"time"

	"github.com/secmon-lab/crashstats/pkg/domain/model"
	"github.com/secmon-lab/crashstats/pkg/domain/types"
)

// Middleware defines the statistics API the dashboard reads from
type Middleware interface {
	// CurrentVersions returns every release the middleware knows about
	CurrentVersions(ctx context.Context) (model.CurrentVersions, error)

	// ADUByDay returns daily crash and active user counts
	ADUByDay(ctx context.Context, q ADUQuery) (*model.ADUByDay, error)

	// TCBS returns the top crashers by signature
	TCBS(ctx context.Context, q TCBSQuery) (*model.TCBS, error)

	// Bugs returns the bug associations of the given signatures
	Bugs(ctx context.Context, signatures []types.Signature) (*model.BugAssociations, error)

	// HangReport returns one page of the hang pairs report
	HangReport(ctx context.Context, q HangReportQuery) (*model.HangReport, error)

	// ProcessedCrash returns the processed crash report
	ProcessedCrash(ctx context.Context, id types.CrashID) (*model.ProcessedCrash, error)

	// RawCrash returns the submitted crash metadata
	RawCrash(ctx context.Context, id types.CrashID) (model.RawCrash, error)

	// CommentsBySignature returns user comments for a signature
	CommentsBySignature(ctx context.Context, signature types.Signature, start, end time.Time) (*model.Comments, error)

	// CrashPairs returns the crashes sharing a hang ID
	CrashPairs(ctx context.Context, id types.CrashID, hangID types.HangID) (model.CrashPairs, error)

	// ReportList returns crash reports for a signature
	ReportList(ctx context.Context, q ReportListQuery) (*model.ReportList, error)

	// Search searches signatures
	Search(ctx context.Context, q SearchQuery) (*model.SearchResult, error)

	// SignatureTrend returns the history of a signature
	SignatureTrend(ctx context.Context, q SignatureTrendQuery) (*model.SignatureTrend, error)

	// SignatureSummary returns one breakdown of a signature
	SignatureSummary(ctx context.Context, reportType model.SummaryReportType, signature types.Signature, start, end time.Time) ([]model.SignatureSummaryRow, error)

	// DailyBuilds returns builds of a product, optionally of one version
	DailyBuilds(ctx context.Context, product types.Product, version types.Version) ([]model.Build, error)
}

// Bugzilla defines the read-only bug tracker API
type Bugzilla interface {
	// BugInfo returns the requested fields of the given bugs as Bugzilla sends them
	BugInfo(ctx context.Context, bugIDs []string, fields []string) (json.RawMessage, error)
}

// ADUQuery selects daily crash and active user counts
type ADUQuery struct {
	Product     types.Product
	Versions    types.Versions
	OSNames     []types.OSName
	Start       time.Time
	End         time.Time
	ReportTypes []types.ReportType
}

// TCBSQuery selects a top crashers by signature report
type TCBSQuery struct {
	Product       types.Product
	Version       types.Version
	CrashType     types.CrashType
	End           time.Time
	DurationHours int
	Limit         int
}

// HangReportQuery selects a page of the hang report
type HangReportQuery struct {
	Product  types.Product
	Version  types.Version
	End      time.Time
	Duration int
	ListSize int
	Page     int
}

// ReportListQuery selects crash reports of a signature
type ReportListQuery struct {
	Signature    types.Signature
	Versions     string
	Start        time.Time
	ResultNumber int
}

// SearchQuery selects signatures matching a search
type SearchQuery struct {
	Product  types.Product
	Versions types.Versions
	OSNames  []types.OSName
	Start    time.Time
	End      time.Time
	Limit    int
}

// SignatureTrendQuery selects the history of a signature
type SignatureTrendQuery struct {
	Product       types.Product
	Versions      types.Versions
	Signature     types.Signature
	End           time.Time
	DurationHours int
	Steps         int
}
