package datemath

import "time"

// WeekNumber returns the ISO-8601 week number of t's UTC calendar day:
// week 1 is the week containing the year's first Thursday, and weeks start
// on Monday.
//
// Year-boundary policy: a date before its own year's week-1 Monday belongs
// to the closing week of the previous year, and a late-December date on or
// after the following year's week-1 Monday returns 1.
func WeekNumber(t time.Time) int {
	u := t.UTC()
	d := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)

	monday := week1Monday(d.Year())
	if d.Before(monday) {
		return weeksSince(week1Monday(d.Year()-1), d)
	}
	if d.Month() == time.December && !d.Before(week1Monday(d.Year()+1)) {
		return 1
	}
	return weeksSince(monday, d)
}

// week1Monday locates the Monday of the year's first ISO week via the
// first-Thursday rule: advance Jan 1 to the first Thursday, then back up
// three days.
func week1Monday(year int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	wd := int(jan1.Weekday()) // Sunday-indexed

	var firstThursday time.Time
	if wd <= 4 {
		firstThursday = jan1.AddDate(0, 0, 4-wd)
	} else {
		firstThursday = jan1.AddDate(0, 0, 7-wd+4)
	}
	return firstThursday.AddDate(0, 0, -3)
}

func weeksSince(monday, d time.Time) int {
	return int(d.Sub(monday)/(7*24*time.Hour)) + 1
}
