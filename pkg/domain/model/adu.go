package model

import "github.com/secmon-lab/crashstats/pkg/domain/types"

// ADUByDay is the middleware's per-day crash and active user report
type ADUByDay struct {
	Product   types.Product `json:"product"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Versions  []ADUVersion  `json:"versions"`
}

// ADUVersion holds the daily statistics for one version
type ADUVersion struct {
	Product    types.Product  `json:"product"`
	Version    types.Version  `json:"version"`
	Statistics []ADUStatistic `json:"statistics"`
}

// ADUStatistic is one (day, os, report type) bucket
type ADUStatistic struct {
	Date     string    `json:"date"`
	OS       string    `json:"os"`
	Crashes  FlexInt   `json:"crashes"`
	Users    FlexInt   `json:"users"`
	Ratio    FlexFloat `json:"ratio"`
	Throttle FlexFloat `json:"throttle"`
}
