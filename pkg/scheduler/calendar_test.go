package scheduler

import (
	"testing"
	"time"

	"github.com/lsandini/OnCall/pkg/models"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestWeekNumber(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		{date(2026, 1, 1), 1},   // Thursday, first ISO week of 2026
		{date(2026, 6, 15), 25}, // mid-year Monday
		{date(2021, 1, 1), 53},  // Friday, still week 53 of 2020
		{date(2024, 12, 30), 1}, // Monday, already week 1 of 2025
	}

	for _, tc := range cases {
		if got := WeekNumber(tc.date); got != tc.want {
			t.Errorf("WeekNumber(%s) = %d, want %d", FormatDate(tc.date), got, tc.want)
		}
	}
}

func TestDatesInMonth(t *testing.T) {
	june := DatesInMonth(2026, 6)
	if len(june) != 30 {
		t.Fatalf("Expected 30 days in June 2026, got %d", len(june))
	}
	if FormatDate(june[0]) != "2026-06-01" {
		t.Errorf("Expected first day 2026-06-01, got %s", FormatDate(june[0]))
	}
	if FormatDate(june[29]) != "2026-06-30" {
		t.Errorf("Expected last day 2026-06-30, got %s", FormatDate(june[29]))
	}

	// Leap year February
	feb := DatesInMonth(2024, 2)
	if len(feb) != 29 {
		t.Errorf("Expected 29 days in February 2024, got %d", len(feb))
	}
}

func TestFormatDateZeroPadding(t *testing.T) {
	if got := FormatDate(date(2026, 3, 5)); got != "2026-03-05" {
		t.Errorf("Expected 2026-03-05, got %s", got)
	}
}

func TestEffectiveDayOfWeek(t *testing.T) {
	holidays := HolidaySet([]models.Holiday{
		{Date: "2026-06-02", Name: "Local Holiday", Type: "custom"},
	})

	// 2026-06-02 is a Tuesday, but holidays are staffed like a Sunday
	if got := EffectiveDayOfWeek(date(2026, 6, 2), holidays); got != 0 {
		t.Errorf("Expected holiday to map to Sunday (0), got %d", got)
	}
	if got := EffectiveDayOfWeek(date(2026, 6, 9), holidays); got != 2 {
		t.Errorf("Expected plain Tuesday (2), got %d", got)
	}
}
