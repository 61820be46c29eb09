package datemath

import "datecal/internal/model"

// dayMillis is one calendar day in epoch milliseconds.
const dayMillis = 24 * 60 * 60 * 1000

// DaysInPeriod returns the inclusive whole-day count between two ISO-8601
// date strings: (end - start) in days, plus one. The period is not
// validated; an inverted period yields its negative count plus one.
func DaysInPeriod(start, end string) (int, error) {
	startMs, err := Timestamp(start)
	if err != nil {
		return 0, err
	}
	endMs, err := Timestamp(end)
	if err != nil {
		return 0, err
	}
	return int((endMs-startMs)/dayMillis) + 1, nil
}

// InPeriod reports whether the date lies within p's bounds. Both boundaries
// are inclusive.
func InPeriod(value string, p model.Period) (bool, error) {
	ts, err := Timestamp(value)
	if err != nil {
		return false, err
	}
	startMs, err := Timestamp(p.Start)
	if err != nil {
		return false, err
	}
	endMs, err := Timestamp(p.End)
	if err != nil {
		return false, err
	}
	return ts >= startMs && ts <= endMs, nil
}
