package schedule

import (
	"testing"
	"time"

	"datecal/internal/model"
)

func sameDays(t *testing.T, got []time.Time, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d occurrences %v, want %d", len(got), got, len(want))
	}
	for i, w := range want {
		if got[i].Format(Layout) != w {
			t.Errorf("occurrence %d = %s, want %s", i, got[i].Format(Layout), w)
		}
	}
}

func TestFridays(t *testing.T) {
	got, err := Fridays(model.Period{Start: "01-01-2024", End: "15-01-2024"})
	if err != nil {
		t.Fatalf("Fridays returned error: %v", err)
	}
	sameDays(t, got, "05-01-2024", "12-01-2024")
}

func TestFridayThe13ths(t *testing.T) {
	got, err := FridayThe13ths(model.Period{Start: "01-01-2024", End: "31-12-2024"})
	if err != nil {
		t.Fatalf("FridayThe13ths returned error: %v", err)
	}
	sameDays(t, got, "13-09-2024", "13-12-2024")
}

func TestOccurrences(t *testing.T) {
	got, err := Occurrences("FREQ=WEEKLY;BYDAY=FR", model.Period{Start: "01-01-2024", End: "15-01-2024"})
	if err != nil {
		t.Fatalf("Occurrences returned error: %v", err)
	}
	sameDays(t, got, "05-01-2024", "12-01-2024")
}

func TestOccurrencesInvalidRule(t *testing.T) {
	if _, err := Occurrences("FREQ=SOMETIMES", model.Period{Start: "01-01-2024", End: "15-01-2024"}); err == nil {
		t.Error("Occurrences should reject an unparseable rule")
	}
}

func TestOccurrencesBadPeriod(t *testing.T) {
	if _, err := Occurrences("FREQ=DAILY", model.Period{Start: "garbage", End: "15-01-2024"}); err == nil {
		t.Error("Occurrences should reject an unparseable period")
	}
}
