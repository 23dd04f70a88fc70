package rate

import (
	"sort"
	"time"
)

// Resolve turns raw surcharge lines into dated periods and selects the
// period that applies on now's calendar date plus the nearest upcoming one.
//
// Rows whose dates fail to parse are dropped silently; as long as one row
// survives, Resolve succeeds. If no period contains today, the most
// recently started period is returned as current so consumers always have
// a rate to display. Next is the future period with the earliest start,
// absent when nothing starts after today.
func Resolve(raw []RawPeriod, now time.Time) (*Selection, error) {
	periods := make([]Period, 0, len(raw))
	for _, r := range raw {
		from := ParseDate(r.From)
		to := ParseDate(r.To)
		if from.IsZero() || to.IsZero() {
			continue
		}
		periods = append(periods, Period{RawPeriod: r, FromDate: from, ToDate: to})
	}
	if len(periods) == 0 {
		return nil, &ParseError{Reason: "no surcharge periods with parseable dates"}
	}

	// Most recent start first. Stable, so periods sharing a start date
	// keep their page order.
	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].FromDate.After(periods[j].FromDate)
	})

	today := DateOf(now)

	current := 0
	for i, p := range periods {
		if p.Contains(today) {
			current = i
			break
		}
	}

	sel := &Selection{Current: periods[current]}

	// Walk the sorted list backwards so the first future period found is
	// the one with the earliest start. The current entry is excluded by
	// position, not by date equality.
	for i := len(periods) - 1; i >= 0; i-- {
		if i == current {
			continue
		}
		if periods[i].FromDate.After(today) {
			next := periods[i]
			sel.Next = &next
			break
		}
	}

	return sel, nil
}
