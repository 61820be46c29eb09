// Package datemath implements the pure calendar calculations behind the
// datecal API: ISO-8601 parsing, timestamp conversion, calendar facts
// (day names, leap years, quarters, weekend counts), weekday search,
// inclusive period arithmetic and ISO week numbering.
//
// Every function is stateless and side-effect free. Operations that accept
// strings return an explicit error for unparseable input; operations on
// time.Time values are total.
package datemath

import (
	"fmt"
	"time"
)

// isoLayouts are the accepted ISO-8601 encodings, probed in order. Layouts
// without an offset parse as UTC; a bare date parses as midnight UTC.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseISO parses an ISO-8601 date string into a time.Time.
func ParseISO(value string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("datemath: invalid date %q", value)
}

// Timestamp returns the epoch timestamp in milliseconds for an ISO-8601
// date string.
func Timestamp(value string) (int64, error) {
	t, err := ParseISO(value)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}
