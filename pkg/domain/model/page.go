package model

import (
	"time"

	"github.com/secmon-lab/crashstats/pkg/domain/types"
)

// ProductsPage is the product overview with its crash ratio graph
type ProductsPage struct {
	Duration int
	Version  types.Version
	Versions types.Versions
	Graph    *GraphData
}

// TopCrasherPage is the top crashers by signature report
type TopCrasherPage struct {
	Version   types.Version
	Days      int
	CrashType types.CrashType
	OSName    types.OSName
	TCBS      *TCBS
}

// DailyPage is the crashes per ADU report
type DailyPage struct {
	FormSelection string
	Product       types.Product
	Versions      types.Versions
	StartDate     string
	EndDate       string
	Throttle      []string
	OSNames       []types.OSName
	HangType      types.ReportType
	ReportTypes   []types.ReportType
	Graph         *GraphData
}

// BuildsPage lists the nightly builds of a product
type BuildsPage struct {
	Version types.Version
	Groups  []BuildGroup
}

// HangReportPage is one page of the hang pairs report
type HangReportPage struct {
	Version     types.Version
	Duration    int
	CurrentPage int
	Report      *HangReport
}

// ChangerGroup holds the signatures that climbed the same number of ranks
type ChangerGroup struct {
	Change  int
	Crashes []TopCrash
}

// TopChangersPage lists the signatures that climbed in the top crashers ranking
type TopChangersPage struct {
	Duration int
	Versions types.Versions
	Changers []ChangerGroup
}

// ReportIndexPage is the detail page of a single crash report
type ReportIndexPage struct {
	Report          *ProcessedCrash
	ProcessType     types.ProcessType
	Product         types.Product
	Version         types.Version
	Dump            *Dump
	BugAssociations []BugAssociation
	Comments        *Comments
	Raw             RawCrash
	HangID          types.HangID
	CrashPairs      CrashPairs
}

// CrashingThread returns the thread that crashed, if the dump has frames
func (p *ReportIndexPage) CrashingThread() *Thread {
	if p.Dump == nil {
		return nil
	}
	return p.Dump.Thread(p.Dump.CrashingThread)
}

// ReportListPage lists the crash reports of a signature
type ReportListPage struct {
	Signature  types.Signature
	Version    string
	StartDate  string
	EndDate    string
	RangeValue int
	ReportList *ReportList
}

// QueryPage is the signature search page
type QueryPage struct {
	Product   types.Product
	Versions  types.Versions
	OSNames   []types.OSName
	StartDate string
	EndDate   string
	Limit     int
	Query     *SearchResult
}

// Clock returns the current time. Use cases take one so reports are reproducible in tests.
type Clock func() time.Time

// PastLastPage reports whether the requested page is beyond the last page of results
func (p *HangReportPage) PastLastPage() bool {
	return p.Report != nil && p.Report.TotalPages > 0 && p.CurrentPage > p.Report.TotalPages
}
