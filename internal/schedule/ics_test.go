package schedule

import (
	"strings"
	"testing"
)

func TestToICS(t *testing.T) {
	feed, err := ToICS([]string{"01-01-2024", "05-01-2024"}, "Work schedule")
	if err != nil {
		t.Fatalf("ToICS returned error: %v", err)
	}

	if !strings.Contains(feed, "BEGIN:VCALENDAR") || !strings.Contains(feed, "END:VCALENDAR") {
		t.Error("feed is missing the VCALENDAR envelope")
	}
	if got := strings.Count(feed, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("feed has %d VEVENTs, want 2", got)
	}
	if !strings.Contains(feed, "20240101") {
		t.Error("feed is missing the first schedule day")
	}
	if !strings.Contains(feed, "SUMMARY:Work schedule") {
		t.Error("feed is missing the event summary")
	}
}

func TestToICSEmpty(t *testing.T) {
	feed, err := ToICS(nil, "empty")
	if err != nil {
		t.Fatalf("ToICS returned error: %v", err)
	}
	if strings.Contains(feed, "BEGIN:VEVENT") {
		t.Error("empty schedule must not produce events")
	}
}

func TestToICSBadDay(t *testing.T) {
	if _, err := ToICS([]string{"2024-01-01"}, "bad"); err == nil {
		t.Error("ToICS should reject ISO-encoded entries")
	}
}
