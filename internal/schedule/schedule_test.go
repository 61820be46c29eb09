package schedule

import (
	"errors"
	"reflect"
	"testing"

	"datecal/internal/model"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		p    model.Period
		pat  model.Pattern
		want []string
	}{
		{
			name: "one on three off",
			p:    model.Period{Start: "01-01-2024", End: "15-01-2024"},
			pat:  model.Pattern{WorkDays: 1, OffDays: 3},
			want: []string{"01-01-2024", "05-01-2024", "09-01-2024", "13-01-2024"},
		},
		{
			name: "five on two off over two weeks",
			p:    model.Period{Start: "01-01-2024", End: "14-01-2024"},
			pat:  model.Pattern{WorkDays: 5, OffDays: 2},
			want: []string{
				"01-01-2024", "02-01-2024", "03-01-2024", "04-01-2024", "05-01-2024",
				"08-01-2024", "09-01-2024", "10-01-2024", "11-01-2024", "12-01-2024",
			},
		},
		{
			name: "no off days fills the period",
			p:    model.Period{Start: "28-02-2024", End: "02-03-2024"},
			pat:  model.Pattern{WorkDays: 2, OffDays: 0},
			want: []string{"28-02-2024", "29-02-2024", "01-03-2024", "02-03-2024"},
		},
		{
			name: "single day period",
			p:    model.Period{Start: "01-01-2024", End: "01-01-2024"},
			pat:  model.Pattern{WorkDays: 3, OffDays: 1},
			want: []string{"01-01-2024"},
		},
		{
			name: "inverted period yields nothing",
			p:    model.Period{Start: "15-01-2024", End: "01-01-2024"},
			pat:  model.Pattern{WorkDays: 1, OffDays: 1},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.p, tt.pat)
			if err != nil {
				t.Fatalf("Generate returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Generate(%v, %v) = %v, want %v", tt.p, tt.pat, got, tt.want)
			}
		})
	}
}

func TestGenerateBadPattern(t *testing.T) {
	p := model.Period{Start: "01-01-2024", End: "15-01-2024"}
	for _, pat := range []model.Pattern{
		{WorkDays: 0, OffDays: 3},
		{WorkDays: -1, OffDays: 3},
		{WorkDays: 1, OffDays: -1},
	} {
		if _, err := Generate(p, pat); !errors.Is(err, ErrBadPattern) {
			t.Errorf("Generate with pattern %v: got %v, want ErrBadPattern", pat, err)
		}
	}
}

func TestGenerateBadPeriod(t *testing.T) {
	p := model.Period{Start: "2024-01-01", End: "15-01-2024"}
	if _, err := Generate(p, model.Pattern{WorkDays: 1, OffDays: 1}); err == nil {
		t.Error("Generate should reject ISO-encoded boundaries")
	}
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("29-02-2024")
	if err != nil {
		t.Fatalf("ParseDay returned error: %v", err)
	}
	if got.Year() != 2024 || got.Month() != 2 || got.Day() != 29 {
		t.Errorf("ParseDay(29-02-2024) = %v", got)
	}

	if _, err := ParseDay("2024-02-29"); err == nil {
		t.Error("ParseDay should reject ISO encoding")
	}
}
