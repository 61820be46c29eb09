package datemath

import "time"

// maxFridayThe13thSteps bounds the day-by-day search. Consecutive
// Friday-the-13ths are at most fourteen months apart, so 450 days always
// suffices.
const maxFridayThe13thSteps = 450

// NextFriday returns the next Friday strictly after t, keeping t's
// time-of-day. The step table is part of the contract:
//
//	Friday    -> +7 days (a full week, never the same day)
//	Saturday  -> +6 days (its own weekday index, landing on Friday)
//	otherwise -> +(5 - weekday index)
func NextFriday(t time.Time) time.Time {
	d := t.UTC()
	wd := int(d.Weekday())
	switch {
	case wd > 5:
		return d.AddDate(0, 0, wd)
	case wd == 5:
		return d.AddDate(0, 0, 7)
	default:
		return d.AddDate(0, 0, 5-wd)
	}
}

// NextFridayThe13th returns the first date strictly after t whose UTC
// weekday is Friday and whose day-of-month is 13. The returned date is
// re-normalized to day 13.
func NextFridayThe13th(t time.Time) time.Time {
	d := t.UTC().AddDate(0, 0, 1)
	for i := 0; i < maxFridayThe13thSteps; i++ {
		if d.Weekday() == time.Friday && d.Day() == 13 {
			return time.Date(d.Year(), d.Month(), 13,
				d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), time.UTC)
		}
		d = d.AddDate(0, 0, 1)
	}
	// Unreachable within the cap; return the cursor rather than spin.
	return d
}
