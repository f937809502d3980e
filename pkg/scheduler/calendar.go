package scheduler

import (
	"fmt"
	"time"

	"github.com/lsandini/OnCall/pkg/models"
)

// WeekNumber returns the ISO-8601 week number for a date. ISO weeks are
// Thursday-anchored, so the first days of January can belong to the last
// week of the previous year and late December to week 1 of the next.
func WeekNumber(date time.Time) int {
	_, week := date.ISOWeek()
	return week
}

// DatesInMonth returns every calendar day of the month in ascending order
func DatesInMonth(year, month int) []time.Time {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	dates := make([]time.Time, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// FormatDate renders a date as YYYY-MM-DD from its own calendar fields,
// never converting between locations, so the day can't drift across
// timezone boundaries.
func FormatDate(date time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", date.Year(), int(date.Month()), date.Day())
}

// EffectiveDayOfWeek returns the weekday used for requirement lookup:
// the date's real weekday, except public holidays are staffed like a
// Sunday regardless of where they fall in the week.
func EffectiveDayOfWeek(date time.Time, holidays map[string]bool) int {
	if holidays[FormatDate(date)] {
		return int(time.Sunday)
	}
	return int(date.Weekday())
}

// HolidaySet indexes holidays by date for effective-weekday lookups
func HolidaySet(holidays []models.Holiday) map[string]bool {
	set := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		set[h.Date] = true
	}
	return set
}
