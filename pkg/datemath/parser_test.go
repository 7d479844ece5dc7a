package datemath_test

import (
	"testing"
	"time"

	"room-booking/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/Los_Angeles")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestDayBounds(t *testing.T) {
	parser, _ := datemath.NewParser("America/Los_Angeles")
	loc := parser.Location()

	t.Run("regular day", func(t *testing.T) {
		start, end := parser.DayBounds(time.Date(2024, 5, 1, 15, 30, 0, 0, loc))
		if !start.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, loc)) {
			t.Errorf("unexpected start %v", start)
		}
		if !end.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, loc)) {
			t.Errorf("unexpected end %v", end)
		}
	})

	t.Run("input in another zone", func(t *testing.T) {
		// 2024-05-02 03:00 UTC is still May 1st in Los Angeles.
		start, _ := parser.DayBounds(time.Date(2024, 5, 2, 3, 0, 0, 0, time.UTC))
		if start.Day() != 1 {
			t.Errorf("expected civil day 1, got %v", start)
		}
	})

	t.Run("dst day is 23 hours", func(t *testing.T) {
		start, end := parser.DayBounds(time.Date(2024, 3, 10, 12, 0, 0, 0, loc))
		if got := end.Sub(start); got != 23*time.Hour {
			t.Errorf("expected 23h, got %v", got)
		}
	})
}

func TestParseDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "today", value: "today", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "empty is today", value: "", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "tomorrow", value: "Tomorrow", want: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
		{name: "yesterday", value: "yesterday", want: time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)},
		{name: "iso date", value: "2024-03-20", want: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", value: "next blue moon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseDate(tt.value, base)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAt(t *testing.T) {
	parser, _ := datemath.NewParser("America/Los_Angeles")
	day, _ := parser.ParseDate("2024-03-20", time.Now())

	got, err := parser.At(day, "14:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 3, 20, 14, 5, 0, 0, parser.Location())
	if !got.Equal(want) {
		t.Errorf("At() = %v, want %v", got, want)
	}

	if _, err := parser.At(day, "25:99"); err == nil {
		t.Errorf("expected error for invalid clock")
	}
}
