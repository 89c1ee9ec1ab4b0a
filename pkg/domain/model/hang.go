package model

import "github.com/secmon-lab/crashstats/pkg/domain/types"

// HangReport is one page of the hang pairs report
type HangReport struct {
	Rows        []HangRow `json:"hangReport"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
	TotalCount  int       `json:"totalCount"`
	EndDate     string    `json:"endDate"`
}

// HangRow pairs the browser and plugin signatures of a hang
type HangRow struct {
	BrowserSignature types.Signature `json:"browser_signature"`
	PluginSignature  types.Signature `json:"plugin_signature"`
	BrowserHangID    types.HangID    `json:"browser_hangid"`
	Flash            bool            `json:"is_flash"`
	URL              string          `json:"url"`
	Duplicates       []string        `json:"duplicates"`
	ReportDay        string          `json:"report_day"`
}
