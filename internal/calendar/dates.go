package calendar

import (
	"time"

	"github.com/2beens/fitcal/internal/workouts"
)

// DaysInMonth uses day 0 of the next month, which normalizes to the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOfMonth returns the weekday of the 1st, Sunday = 0.
func FirstWeekdayOfMonth(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

func FormatDate(t time.Time) string {
	return t.Format(workouts.DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(workouts.DateLayout, s)
}

func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// MonthRange returns the first and the last day of the month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, month, DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	return from, to
}
