package rate

import (
	"fmt"
	"time"
)

// RawPeriod is one surcharge line as it appears on the page, with the
// date range still in text form, e.g.
// "From 1 January 2024 to 31 March 2024: 17.3%".
type RawPeriod struct {
	From    string
	To      string
	Percent float64
}

// Period is a RawPeriod whose date range has been parsed.
// FromDate <= ToDate is assumed from the source page, not enforced.
type Period struct {
	RawPeriod
	FromDate time.Time
	ToDate   time.Time
}

// Contains reports whether day falls within the period, inclusive on
// both ends. day must be a calendar date (see DateOf).
func (p Period) Contains(day time.Time) bool {
	return !day.Before(p.FromDate) && !day.After(p.ToDate)
}

// Selection holds the resolved current period and, when one exists, the
// next upcoming period.
type Selection struct {
	Current Period
	Next    *Period
}

// FetchError reports a failed page retrieval: network error, timeout, or
// a non-OK HTTP status.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports that the fetched page yielded no usable surcharge
// periods, either because nothing matched the expected pattern or because
// every matched row had unparseable dates.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return e.Reason
}
