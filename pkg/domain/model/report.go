package model

import "github.com/secmon-lab/crashstats/pkg/domain/types"

// ReportList is the list of crash reports matching a signature
type ReportList struct {
	Hits  []ReportListEntry `json:"hits"`
	Total int               `json:"total"`
}

// ReportListEntry is one crash report in a report list
type ReportListEntry struct {
	UUID          types.CrashID   `json:"uuid"`
	Signature     types.Signature `json:"signature"`
	Product       types.Product   `json:"product"`
	Version       types.Version   `json:"version"`
	Build         string          `json:"build"`
	OSName        string          `json:"os_name"`
	OSVersion     string          `json:"os_version"`
	CPUName       string          `json:"cpu_name"`
	Reason        string          `json:"reason"`
	Address       string          `json:"address"`
	URL           string          `json:"url"`
	DateProcessed string          `json:"date_processed"`
	Uptime        FlexInt         `json:"uptime"`
	InstallAge    FlexInt         `json:"install_age"`
	HangID        types.HangID    `json:"hangid"`
	ProcessType   *string         `json:"process_type"`
	UserComments  string          `json:"user_comments"`
}

// Comments are the user comments submitted with crashes of a signature
type Comments struct {
	Hits  []Comment `json:"hits"`
	Total int       `json:"total"`
}

// Comment is a single user comment
type Comment struct {
	UUID          types.CrashID `json:"uuid"`
	DateProcessed string        `json:"date_processed"`
	UserComments  string        `json:"user_comments"`
	Email         string        `json:"email"`
}

// SearchResult is the signature search answer
type SearchResult struct {
	Hits  []SearchHit `json:"hits"`
	Total int         `json:"total"`
}

// SearchHit is one signature matching a search
type SearchHit struct {
	Signature     types.Signature `json:"signature"`
	Count         FlexInt         `json:"count"`
	IsWindows     FlexInt         `json:"is_windows"`
	IsMac         FlexInt         `json:"is_mac"`
	IsLinux       FlexInt         `json:"is_linux"`
	NumberHang    FlexInt         `json:"numhang"`
	NumberPlugin  FlexInt         `json:"numplugin"`
	NumberContent FlexInt         `json:"numcontent"`
}
