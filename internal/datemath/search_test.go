package datemath

import (
	"testing"
	"time"
)

func TestNextFriday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"from Sunday advances 5", d(2024, time.January, 7), d(2024, time.January, 12)},
		{"from Monday advances 4", d(2024, time.January, 1), d(2024, time.January, 5)},
		{"from Tuesday advances 3", d(2024, time.January, 2), d(2024, time.January, 5)},
		{"from Wednesday advances 2", d(2024, time.January, 3), d(2024, time.January, 5)},
		{"from Thursday advances 1", d(2024, time.January, 4), d(2024, time.January, 5)},
		{"from Friday advances a full week", d(2024, time.January, 5), d(2024, time.January, 12)},
		{"from Saturday advances 6", d(2024, time.January, 6), d(2024, time.January, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextFriday(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("NextFriday(%s) = %s, want %s",
					tt.in.Format("2006-01-02"), got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
			if got.Weekday() != time.Friday {
				t.Errorf("NextFriday(%s) landed on %s", tt.in.Format("2006-01-02"), got.Weekday())
			}
		})
	}
}

func TestNextFridayThe13th(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"eleven-month gap", d(2024, time.January, 1), d(2024, time.September, 13)},
		{"same quarter", d(2024, time.December, 1), d(2024, time.December, 13)},
		{"input is itself a Friday the 13th", d(2024, time.September, 13), d(2024, time.December, 13)},
		{"across a year boundary", d(2024, time.December, 13), d(2025, time.June, 13)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextFridayThe13th(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("NextFridayThe13th(%s) = %s, want %s",
					tt.in.Format("2006-01-02"), got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
			if got.Day() != 13 || got.Weekday() != time.Friday {
				t.Errorf("result %s is not a Friday the 13th", got.Format("2006-01-02"))
			}
		})
	}
}

func TestNextFridayThe13thKeepsClock(t *testing.T) {
	in := time.Date(2024, time.September, 12, 10, 30, 0, 0, time.UTC)
	got := NextFridayThe13th(in)
	want := time.Date(2024, time.September, 13, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextFridayThe13th(%v) = %v, want %v", in, got, want)
	}
}
