package order

import "time"

// DateOnly truncates a timestamp to calendar-date precision in UTC.
// All interval and bucket comparisons in the engines operate on dates,
// never on times of day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameOrAfter reports whether a is on the same calendar date as b or later.
func SameOrAfter(a, b time.Time) bool {
	return !DateOnly(a).Before(DateOnly(b))
}

// SameOrBefore reports whether a is on the same calendar date as b or earlier.
func SameOrBefore(a, b time.Time) bool {
	return !DateOnly(a).After(DateOnly(b))
}
