package model

import (
	"sort"
	"time"

	"github.com/secmon-lab/crashstats/pkg/domain/types"
)

// BuildTypeNightly is the only build type listed on the builds page
const BuildTypeNightly = "Nightly"

// Build is one daily build known to the middleware
type Build struct {
	Product    types.Product `json:"product"`
	Version    types.Version `json:"version"`
	Platform   string        `json:"platform"`
	BuildID    FlexInt       `json:"buildid"`
	BuildType  string        `json:"build_type"`
	BetaNumber *int          `json:"beta_number"`
	Repository string        `json:"repository"`
	Date       string        `json:"date"`
}

// BuildGroup collects the builds of one version on one day
type BuildGroup struct {
	Date    time.Time
	Version types.Version
	Builds  []Build
}

// GroupNightlyBuilds keeps nightly builds with a valid date and groups them by
// (date, version), newest first. Builds keep their middleware order within a group.
func GroupNightlyBuilds(builds []Build) []BuildGroup {
	type key struct {
		date    string
		version types.Version
	}

	groups := make(map[key]*BuildGroup)
	for _, b := range builds {
		if b.BuildType != BuildTypeNightly {
			continue
		}
		date, err := types.ParseDate(b.Date)
		if err != nil {
			continue
		}

		k := key{date: b.Date, version: b.Version}
		g, ok := groups[k]
		if !ok {
			g = &BuildGroup{Date: date, Version: b.Version}
			groups[k] = g
		}
		g.Builds = append(g.Builds, b)
	}

	result := make([]BuildGroup, 0, len(groups))
	for _, g := range groups {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].Version > result[j].Version
	})

	return result
}
