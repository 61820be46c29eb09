package schedule

import (
	"fmt"

	ics "github.com/arran4/golang-ical"
)

// ToICS renders a list of DD-MM-YYYY schedule entries as an iCalendar feed
// of all-day events, one VEVENT per working day.
func ToICS(dates []string, calName string) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//datecal//schedule//EN")
	cal.SetXWRCalName(calName)

	for i, day := range dates {
		t, err := ParseDay(day)
		if err != nil {
			return "", err
		}

		ev := cal.AddEvent(fmt.Sprintf("%s-%d@datecal", t.Format("20060102"), i))
		ev.SetSummary(calName)
		ev.SetDtStampTime(t)
		ev.SetAllDayStartAt(t)
		ev.SetAllDayEndAt(t.AddDate(0, 0, 1))
	}

	return cal.Serialize(), nil
}
