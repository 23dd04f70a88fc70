package rate

import (
	"strings"
	"time"
)

// DateFormat is the strict layout for dates on the surcharge page,
// e.g. "1 January 2024". Go's time package matches the full English month
// names regardless of system locale.
const DateFormat = "2 January 2006"

// ParseDate parses a "D Month YYYY" date string.
// Returns time.Time{} (zero value) if parsing fails.
func ParseDate(text string) time.Time {
	t, err := time.Parse(DateFormat, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}
	}
	return t
}

// DateOf truncates t to its calendar date: midnight UTC on the same
// year/month/day. Periods carry dates without a time component, so
// interval checks compare dates to dates.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
