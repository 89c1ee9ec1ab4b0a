package model

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/crashstats/pkg/domain/types"
	"github.com/secmon-lab/crashstats/pkg/utils/dates"
)

// GraphPoint is a [unix_millis, value] pair. A nil value is plotted as a gap.
type GraphPoint struct {
	Time  int64
	Value *float64
}

// MarshalJSON writes the point as a two element array
func (p GraphPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Time, p.Value})
}

// GraphSeries is the crash ratio series of one version
type GraphSeries struct {
	Version types.Version
	Points  []GraphPoint
}

// GraphData is the per-version crash ratio graph drawn on the products and
// daily pages. It serializes to the flat layout the graph script reads:
// startDate, endDate, count, item1..N and ratio1..N.
type GraphData struct {
	StartDate string
	EndDate   string
	Series    []GraphSeries
}

// MarshalJSON flattens the series into itemN/ratioN keys
func (g GraphData) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"startDate": g.StartDate,
		"endDate":   g.EndDate,
		"count":     len(g.Series),
	}
	for i, s := range g.Series {
		n := strconv.Itoa(i + 1)
		points := s.Points
		if points == nil {
			points = []GraphPoint{}
		}
		out["item"+n] = s.Version
		out["ratio"+n] = points
	}
	return json.Marshal(out)
}

type dayTotal struct {
	crashes int64
	users   int64
}

// PlotGraph buckets the ADU statistics of every version per day and computes
// the throttled crash ratio for each day in [start, end). Days with no data
// are nil points; days with data but zero users are dropped.
func PlotGraph(ctx context.Context, start, end time.Time, adu *ADUByDay, current CurrentVersions) *GraphData {
	throttles := current.Throttles(adu.Product)

	graph := &GraphData{
		StartDate: adu.StartDate,
		EndDate:   types.FormatDate(end),
		Series:    make([]GraphSeries, 0, len(adu.Versions)),
	}

	days := dates.Range(start, end)

	for _, version := range adu.Versions {
		totals := make(map[int64]dayTotal)
		for _, s := range version.Statistics {
			day, err := types.ParseDate(s.Date)
			if err != nil {
				ctxlog.From(ctx).Warn("skipping ADU statistic with bad date",
					"version", version.Version,
					"date", s.Date,
				)
				continue
			}
			key := dates.UnixMillis(day)
			total := totals[key]
			total.crashes += s.Crashes.Int64()
			total.users += s.Users.Int64()
			totals[key] = total
		}

		throttle, ok := throttles[version.Version]
		if !ok {
			throttle = 100
		}
		if throttle != 100 {
			throttle *= 100
		}

		series := GraphSeries{
			Version: version.Version,
			Points:  make([]GraphPoint, 0, len(days)),
		}
		for _, day := range days {
			key := dates.UnixMillis(day)
			total, ok := totals[key]
			if !ok {
				series.Points = append(series.Points, GraphPoint{Time: key})
				continue
			}
			if total.users == 0 {
				ctxlog.From(ctx).Warn("no ADU data for day",
					"day", types.FormatDate(day),
					"version", version.Version,
				)
				continue
			}

			ratio := float64(total.crashes) / float64(total.users) * throttle
			series.Points = append(series.Points, GraphPoint{Time: key, Value: &ratio})
		}

		graph.Series = append(graph.Series, series)
	}

	return graph
}
