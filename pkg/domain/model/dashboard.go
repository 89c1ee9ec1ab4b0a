package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/pkg/domain/types"
)

// DashboardConfig holds the report defaults and the allowed values of the
// report options
type DashboardConfig struct {
	DefaultProduct    types.Product  `yaml:"default_product"`
	OSNames           []types.OSName `yaml:"os_names"`
	TopCrasherOSNames []types.OSName `yaml:"topcrasher_os_names"`
	ProductsDurations []int          `yaml:"products_durations"`
	TopCrasherDays    []int          `yaml:"topcrasher_days"`
	ReportDurations   []int          `yaml:"report_durations"`
	TCBSLimit         int            `yaml:"tcbs_limit"`
	HangListSize      int            `yaml:"hang_list_size"`
	ReportListSize    int            `yaml:"report_list_size"`
	SearchLimit       int            `yaml:"search_limit"`
}

// DefaultDashboardConfig returns the built-in dashboard configuration
func DefaultDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		DefaultProduct:    "Firefox",
		OSNames:           []types.OSName{"Windows", "Mac", "Linux"},
		TopCrasherOSNames: []types.OSName{"Windows", "Linux", "Mac OS X"},
		ProductsDurations: []int{3, 7, 14},
		TopCrasherDays:    []int{1, 3, 7, 14, 28},
		ReportDurations:   []int{3, 7, 14, 28},
		TCBSLimit:         300,
		HangListSize:      5,
		ReportListSize:    250,
		SearchLimit:       100,
	}
}

// ApplyDefaults fills every unset field from DefaultDashboardConfig
func (c *DashboardConfig) ApplyDefaults() {
	d := DefaultDashboardConfig()
	if c.DefaultProduct == "" {
		c.DefaultProduct = d.DefaultProduct
	}
	if len(c.OSNames) == 0 {
		c.OSNames = d.OSNames
	}
	if len(c.TopCrasherOSNames) == 0 {
		c.TopCrasherOSNames = d.TopCrasherOSNames
	}
	if len(c.ProductsDurations) == 0 {
		c.ProductsDurations = d.ProductsDurations
	}
	if len(c.TopCrasherDays) == 0 {
		c.TopCrasherDays = d.TopCrasherDays
	}
	if len(c.ReportDurations) == 0 {
		c.ReportDurations = d.ReportDurations
	}
	if c.TCBSLimit == 0 {
		c.TCBSLimit = d.TCBSLimit
	}
	if c.HangListSize == 0 {
		c.HangListSize = d.HangListSize
	}
	if c.ReportListSize == 0 {
		c.ReportListSize = d.ReportListSize
	}
	if c.SearchLimit == 0 {
		c.SearchLimit = d.SearchLimit
	}
}

// Validate validates the dashboard configuration
func (c *DashboardConfig) Validate() error {
	if c.DefaultProduct == "" {
		return goerr.New("default product is required")
	}
	if len(c.OSNames) == 0 {
		return goerr.New("at least one OS name is required")
	}

	for name, values := range map[string][]int{
		"products_durations": c.ProductsDurations,
		"topcrasher_days":    c.TopCrasherDays,
		"report_durations":   c.ReportDurations,
	} {
		if len(values) == 0 {
			return goerr.New("duration list is empty", goerr.V("field", name))
		}
		for _, v := range values {
			if v <= 0 {
				return goerr.New("duration must be positive",
					goerr.V("field", name),
					goerr.V("value", v))
			}
		}
	}

	for name, v := range map[string]int{
		"tcbs_limit":       c.TCBSLimit,
		"hang_list_size":   c.HangListSize,
		"report_list_size": c.ReportListSize,
		"search_limit":     c.SearchLimit,
	} {
		if v <= 0 {
			return goerr.New("limit must be positive",
				goerr.V("field", name),
				goerr.V("value", v))
		}
	}

	return nil
}

// DefaultDuration is the fallback period, in days, for the products and top crasher pages
const DefaultDuration = 7

// ContainsInt reports whether v is one of values
func ContainsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// IsTopCrasherOS reports whether os is a selectable top crasher OS filter
func (c *DashboardConfig) IsTopCrasherOS(os types.OSName) bool {
	for _, x := range c.TopCrasherOSNames {
		if x == os {
			return true
		}
	}
	return false
}
