package dates

import "time"

// Day truncates t to midnight UTC
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Range returns each UTC day from start's day up to, but not including, end's day
func Range(start, end time.Time) []time.Time {
	var days []time.Time
	last := Day(end)
	for d := Day(start); d.Before(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// UnixMillis returns milliseconds since the epoch, the time unit graphs are plotted in
func UnixMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// Hours returns the length of the span in hours, including fractions
func Hours(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}
