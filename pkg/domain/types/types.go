package types

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// Product represents a product name such as "Firefox"
type Product string

// String returns the string representation
func (p Product) String() string {
	return string(p)
}

// Version represents a product version string such as "15.0a1"
type Version string

// String returns the string representation
func (v Version) String() string {
	return string(v)
}

// Versions is an ordered list of versions. In URLs it is joined with ';'.
type Versions []Version

// ParseVersions splits a ';' separated version list. Empty segments are dropped.
func ParseVersions(s string) Versions {
	if s == "" {
		return Versions{}
	}

	var result Versions
	for _, v := range strings.Split(s, ";") {
		if v == "" {
			continue
		}
		result = append(result, Version(v))
	}
	return result
}

// String joins the versions with ';'
func (vs Versions) String() string {
	return joinStrings(vs, ";")
}

// Contains reports whether v is in the list
func (vs Versions) Contains(v Version) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}

// Signature represents a crash signature
type Signature string

// String returns the string representation
func (s Signature) String() string {
	return string(s)
}

// CrashID represents a crash report identifier (UUID)
type CrashID string

// String returns the string representation
func (id CrashID) String() string {
	return string(id)
}

// Validate checks that the crash ID is a UUID
func (id CrashID) Validate() error {
	if id == "" {
		return goerr.New("crash ID is empty")
	}
	if _, err := uuid.Parse(string(id)); err != nil {
		return goerr.Wrap(err, "crash ID is not a UUID", goerr.V("crash_id", id))
	}
	return nil
}

// HangID represents the identifier shared by the two halves of a hang pair
type HangID string

// String returns the string representation
func (id HangID) String() string {
	return string(id)
}

// CrashType is the process category used by top crasher reports
type CrashType string

const (
	CrashTypeAll     CrashType = "all"
	CrashTypeBrowser CrashType = "browser"
	CrashTypePlugin  CrashType = "plugin"
	CrashTypeContent CrashType = "content"
)

// CrashTypes lists the crash types selectable on the top crasher page
var CrashTypes = []CrashType{CrashTypeBrowser, CrashTypePlugin, CrashTypeContent, CrashTypeAll}

// String returns the string representation
func (t CrashType) String() string {
	return string(t)
}

// IsValid checks if the crash type is known
func (t CrashType) IsValid() bool {
	switch t {
	case CrashTypeAll, CrashTypeBrowser, CrashTypePlugin, CrashTypeContent:
		return true
	default:
		return false
	}
}

// OSName represents an operating system name as known to the middleware
type OSName string

// String returns the string representation
func (o OSName) String() string {
	return string(o)
}

// ReportType is a report type filter for ADU queries ("any", "crash", "hang", ...)
type ReportType string

const (
	// ReportTypeAny selects every report type
	ReportTypeAny         ReportType = "any"
	ReportTypeCrash       ReportType = "crash"
	ReportTypeHang        ReportType = "hang"
	ReportTypeOOPP        ReportType = "oopp"
	ReportTypeHangBrowser ReportType = "hang_browser"
	ReportTypeHangPlugin  ReportType = "hang_plugin"
)

// HangTypes are the choices of the daily page's hang_type selector
var HangTypes = []ReportType{ReportTypeAny, ReportTypeCrash, ReportTypeHang}

// ReportTypes are the choices of the daily page's report_type[] checkboxes
var ReportTypes = []ReportType{ReportTypeCrash, ReportTypeOOPP, ReportTypeHangBrowser, ReportTypeHangPlugin}

// String returns the string representation
func (r ReportType) String() string {
	return string(r)
}

// ProcessType is the process a crash happened in, as shown on the report page
type ProcessType string

const (
	ProcessTypeBrowser ProcessType = "browser"
	ProcessTypePlugin  ProcessType = "plugin"
	ProcessTypeContent ProcessType = "content"
	ProcessTypeUnknown ProcessType = "unknown"
)

// String returns the string representation
func (p ProcessType) String() string {
	return string(p)
}

// JoinOSNames joins OS names with ';' as the middleware expects
func JoinOSNames(names []OSName) string {
	return joinStrings(names, ";")
}

// JoinReportTypes joins report types with ';' as the middleware expects
func JoinReportTypes(types []ReportType) string {
	return joinStrings(types, ";")
}

func joinStrings[T ~string](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = string(item)
	}
	return strings.Join(parts, sep)
}
