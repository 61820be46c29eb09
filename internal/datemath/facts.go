package datemath

import (
	"time"

	"datecal/internal/model"
)

// dayNames is the fixed English weekday table, Sunday-indexed to match
// time.Weekday.
var dayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// DayNameOf returns the English name of t's UTC weekday.
func DayNameOf(t time.Time) string {
	return dayNames[int(t.UTC().Weekday())]
}

// DayName parses an ISO-8601 date string and returns its UTC weekday name.
func DayName(value string) (string, error) {
	t, err := ParseISO(value)
	if err != nil {
		return "", err
	}
	return DayNameOf(t), nil
}

// DaysInMonth returns the number of days in the given month (1-12) of the
// given year. Day 0 of the following month normalizes to the last day of
// this one, which keeps the count leap-year aware without a leap table.
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapYear reports whether t's year is a leap year. The probe constructs
// a fresh February 29 for the year and checks that it does not normalize
// to March 1. The input is never modified.
func IsLeapYear(t time.Time) bool {
	probe := time.Date(t.UTC().Year(), time.February, 29, 0, 0, 0, 0, time.UTC)
	return probe.Day() == 29
}

// Quarter maps t's UTC month onto the fixed buckets 1-3, 4-6, 7-9, 10-12.
func Quarter(t time.Time) int {
	return (int(t.UTC().Month())-1)/3 + 1
}

// WeekendDaysInMonth counts the Saturdays and Sundays in the given month
// (1-12) of the given year.
func WeekendDaysInMonth(month, year int) int {
	count := 0
	for day := 1; day <= DaysInMonth(month, year); day++ {
		switch time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday() {
		case time.Saturday, time.Sunday:
			count++
		}
	}
	return count
}

// Facts computes the full fact sheet for t's UTC calendar day.
func Facts(t time.Time) model.DayFacts {
	d := t.UTC()
	return model.DayFacts{
		Date:              d.Format("2006-01-02"),
		DayName:           DayNameOf(d),
		Quarter:           Quarter(d),
		WeekNumber:        WeekNumber(d),
		LeapYear:          IsLeapYear(d),
		DaysInMonth:       DaysInMonth(int(d.Month()), d.Year()),
		WeekendDays:       WeekendDaysInMonth(int(d.Month()), d.Year()),
		NextFriday:        NextFriday(d),
		NextFridayThe13th: NextFridayThe13th(d),
	}
}
