package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"datecal/internal/model"
)

// maxOccurrences caps rule expansion so a pathological rule over a huge
// period cannot produce an unbounded slice.
const maxOccurrences = 5000

// Fridays returns every Friday within the period, both boundaries
// inclusive.
func Fridays(p model.Period) ([]time.Time, error) {
	return expand(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rrule.FR},
	}, p)
}

// FridayThe13ths returns every Friday the 13th within the period, both
// boundaries inclusive.
func FridayThe13ths(p model.Period) ([]time.Time, error) {
	return expand(rrule.ROption{
		Freq:       rrule.MONTHLY,
		Byweekday:  []rrule.Weekday{rrule.FR},
		Bymonthday: []int{13},
	}, p)
}

// Occurrences expands a raw RRULE string (e.g. "FREQ=WEEKLY;BYDAY=FR")
// over the period, both boundaries inclusive. The rule's DTSTART is pinned
// to the period start.
func Occurrences(rule string, p model.Period) ([]time.Time, error) {
	start, end, err := Bounds(p)
	if err != nil {
		return nil, err
	}

	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, fmt.Errorf("schedule: invalid rule %q: %w", rule, err)
	}
	r.DTStart(start)

	var set rrule.Set
	set.RRule(r)

	return capOccurrences(set.Between(start, end, true)), nil
}

func expand(opt rrule.ROption, p model.Period) ([]time.Time, error) {
	start, end, err := Bounds(p)
	if err != nil {
		return nil, err
	}

	opt.Dtstart = start
	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, err
	}

	return capOccurrences(r.Between(start, end, true)), nil
}

func capOccurrences(occ []time.Time) []time.Time {
	if len(occ) > maxOccurrences {
		return occ[:maxOccurrences]
	}
	return occ
}
