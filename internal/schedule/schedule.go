// Package schedule expands work/off-day patterns over date periods and
// exposes the results as plain day lists, RRULE-style occurrence sets or
// iCalendar feeds.
//
// Period boundaries and generated entries use the DD-MM-YYYY encoding.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"datecal/internal/model"
)

// Layout is the day-month-year encoding for schedule boundaries and
// generated entries.
const Layout = "02-01-2006"

// ErrBadPattern rejects patterns whose cursor walk would stall or reverse.
var ErrBadPattern = errors.New("schedule: work days must be >= 1 and off days >= 0")

// ParseDay parses a DD-MM-YYYY day string as midnight UTC.
func ParseDay(value string) (time.Time, error) {
	t, err := time.Parse(Layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("schedule: invalid day %q: %w", value, err)
	}
	return t, nil
}

// Bounds parses a period's DD-MM-YYYY boundaries.
func Bounds(p model.Period) (start, end time.Time, err error) {
	start, err = ParseDay(p.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = ParseDay(p.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// Generate expands the work/off-day cycle over the period, both boundaries
// inclusive. The cursor starts the day before the period, emits
// pat.WorkDays dates one day at a time (dropping any that land past the
// period end), skips pat.OffDays, and repeats until it reaches or passes
// the day after the end.
func Generate(p model.Period, pat model.Pattern) ([]string, error) {
	if pat.WorkDays < 1 || pat.OffDays < 0 {
		return nil, ErrBadPattern
	}

	start, end, err := Bounds(p)
	if err != nil {
		return nil, err
	}

	limit := end.AddDate(0, 0, 1)
	cursor := start.AddDate(0, 0, -1)

	out := []string{}
	for cursor.Before(limit) {
		for i := 0; i < pat.WorkDays; i++ {
			cursor = cursor.AddDate(0, 0, 1)
			if cursor.Before(limit) {
				out = append(out, cursor.Format(Layout))
			}
		}
		cursor = cursor.AddDate(0, 0, pat.OffDays)
	}
	return out, nil
}
