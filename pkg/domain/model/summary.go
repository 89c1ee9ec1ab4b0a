package model

import "encoding/json"

// SummaryReportType names one breakdown of the signature summary
type SummaryReportType string

const (
	SummaryArchitecture SummaryReportType = "architecture"
	SummaryFlashVersion SummaryReportType = "flash_version"
	SummaryOS           SummaryReportType = "os"
	SummaryProcessType  SummaryReportType = "process_type"
	SummaryProducts     SummaryReportType = "products"
	SummaryUptime       SummaryReportType = "uptime"
)

// SummaryReportTypes lists every breakdown fetched for a signature summary
var SummaryReportTypes = []SummaryReportType{
	SummaryArchitecture,
	SummaryFlashVersion,
	SummaryOS,
	SummaryProcessType,
	SummaryProducts,
	SummaryUptime,
}

// SignatureSummaryRow is one row of a middleware signature summary answer
type SignatureSummaryRow struct {
	Category      string    `json:"category"`
	ProductName   string    `json:"product_name"`
	VersionString string    `json:"version_string"`
	Percentage    FlexFloat `json:"percentage"`
	ReportCount   FlexInt   `json:"report_count"`
}

// CategoryShare is a category's share of the crashes of a signature
type CategoryShare struct {
	Name            string
	Percentage      float64
	NumberOfCrashes int64
}

// ProductVersionShare is a product version's share of the crashes of a signature
type ProductVersionShare struct {
	Product         string  `json:"product"`
	Version         string  `json:"version"`
	Percentage      float64 `json:"percentage"`
	NumberOfCrashes int64   `json:"numberOfCrashes"`
}

// SignatureSummary is the JSON document behind the signature summary tab
type SignatureSummary struct {
	Architectures   []CategoryShare
	FlashVersions   []CategoryShare
	PercentageByOS  []CategoryShare
	ProcessTypes    []CategoryShare
	ProductVersions []ProductVersionShare
	UptimeRange     []CategoryShare
}

// NewSignatureSummary reshapes the six breakdowns. Category percentages come
// from the middleware as fractions and are scaled to percent; product version
// percentages are already percent.
func NewSignatureSummary(results map[SummaryReportType][]SignatureSummaryRow) *SignatureSummary {
	return &SignatureSummary{
		Architectures:   categoryShares(results[SummaryArchitecture]),
		FlashVersions:   categoryShares(results[SummaryFlashVersion]),
		PercentageByOS:  categoryShares(results[SummaryOS]),
		ProcessTypes:    categoryShares(results[SummaryProcessType]),
		ProductVersions: productVersionShares(results[SummaryProducts]),
		UptimeRange:     categoryShares(results[SummaryUptime]),
	}
}

func categoryShares(rows []SignatureSummaryRow) []CategoryShare {
	shares := make([]CategoryShare, 0, len(rows))
	for _, r := range rows {
		shares = append(shares, CategoryShare{
			Name:            r.Category,
			Percentage:      r.Percentage.Float64() * 100,
			NumberOfCrashes: r.ReportCount.Int64(),
		})
	}
	return shares
}

func productVersionShares(rows []SignatureSummaryRow) []ProductVersionShare {
	shares := make([]ProductVersionShare, 0, len(rows))
	for _, r := range rows {
		shares = append(shares, ProductVersionShare{
			Product:         r.ProductName,
			Version:         r.VersionString,
			Percentage:      r.Percentage.Float64(),
			NumberOfCrashes: r.ReportCount.Int64(),
		})
	}
	return shares
}

// MarshalJSON names each category column after its breakdown
// (architecture, os, range, processType, flashVersion).
func (s SignatureSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"architectures":   namedShares(s.Architectures, "architecture"),
		"flashVersions":   namedShares(s.FlashVersions, "flashVersion"),
		"percentageByOs":  namedShares(s.PercentageByOS, "os"),
		"processTypes":    namedShares(s.ProcessTypes, "processType"),
		"productVersions": s.ProductVersions,
		"uptimeRange":     namedShares(s.UptimeRange, "range"),
	})
}

func namedShares(shares []CategoryShare, nameKey string) []map[string]any {
	out := make([]map[string]any, 0, len(shares))
	for _, s := range shares {
		out = append(out, map[string]any{
			nameKey:           s.Name,
			"percentage":      s.Percentage,
			"numberOfCrashes": s.NumberOfCrashes,
		})
	}
	return out
}
