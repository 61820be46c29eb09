package model

import "time"

// Period is an ordered pair of date strings. The encoding depends on the
// operation consuming it: ISO-8601 for the datemath helpers, DD-MM-YYYY for
// schedule generation. start <= end is assumed by callers, not enforced.
type Period struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// Pattern is a repeating work/off-day cycle anchored at a period's start
// date: WorkDays consecutive working days followed by OffDays rest days.
type Pattern struct {
	WorkDays int `json:"work_days" yaml:"work_days"`
	OffDays  int `json:"off_days" yaml:"off_days"`
}

// DayFacts bundles the calendar facts computed for a single date. It is the
// payload of the /api/facts and /api/today endpoints and of the -once CLI
// mode.
type DayFacts struct {
	Date              string    `json:"date"`
	DayName           string    `json:"day_name"`
	Quarter           int       `json:"quarter"`
	WeekNumber        int       `json:"week_number"`
	LeapYear          bool      `json:"leap_year"`
	DaysInMonth       int       `json:"days_in_month"`
	WeekendDays       int       `json:"weekend_days_in_month"`
	NextFriday        time.Time `json:"next_friday"`
	NextFridayThe13th time.Time `json:"next_friday_the_13th"`
}
