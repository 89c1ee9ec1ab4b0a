package model

import (
	"github.com/secmon-lab/crashstats/pkg/domain/types"
	"github.com/secmon-lab/crashstats/pkg/utils/dates"
)

// SignatureTrend is the crash count history of a signature
type SignatureTrend struct {
	Signature        types.Signature    `json:"signature"`
	StartDate        string             `json:"start_date"`
	EndDate          string             `json:"end_date"`
	SignatureHistory []SignatureHistory `json:"signatureHistory"`
}

// SignatureHistory is one step of a signature trend
type SignatureHistory struct {
	Date           string    `json:"date"`
	Count          FlexInt   `json:"count"`
	PercentOfTotal FlexFloat `json:"percentOfTotal"`
}

// TrendGraph is the JSON document plotted on the signature trend graph
type TrendGraph struct {
	StartDate string          `json:"startDate"`
	Signature types.Signature `json:"signature"`
	EndDate   string          `json:"endDate"`
	Counts    [][2]any        `json:"counts"`
	Percents  [][2]any        `json:"percents"`
}

// NewTrendGraph converts a trend into [millis, count] and [millis, percent] series.
// History steps with an unparsable date are skipped.
func NewTrendGraph(trend *SignatureTrend) *TrendGraph {
	graph := &TrendGraph{
		StartDate: trend.StartDate,
		Signature: trend.Signature,
		EndDate:   trend.EndDate,
		Counts:    make([][2]any, 0, len(trend.SignatureHistory)),
		Percents:  make([][2]any, 0, len(trend.SignatureHistory)),
	}

	for _, h := range trend.SignatureHistory {
		ts, err := types.ParseTimestamp(h.Date)
		if err != nil {
			continue
		}
		ms := dates.UnixMillis(ts)
		graph.Counts = append(graph.Counts, [2]any{ms, h.Count.Int64()})
		graph.Percents = append(graph.Percents, [2]any{ms, h.PercentOfTotal.Float64() * 100})
	}

	return graph
}
