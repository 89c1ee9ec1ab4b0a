package types

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// DateLayout is the date format used in URLs, query strings and middleware calls
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date in UTC
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, goerr.New("date is empty")
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "invalid date", goerr.V("date", s))
	}
	return t, nil
}

// FormatDate formats t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

var timestampLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
}

// ParseTimestamp parses the date and date-time forms the middleware emits.
// Values without a zone are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, goerr.New("invalid timestamp", goerr.V("timestamp", s))
}
