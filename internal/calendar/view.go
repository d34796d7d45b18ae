package calendar

import (
	"time"

	"github.com/2beens/fitcal/internal/workouts"
)

type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type MonthView struct {
	Year         int      `json:"year"`
	Month        int      `json:"month"`
	MonthName    string   `json:"monthName"`
	DaysInMonth  int      `json:"daysInMonth"`
	FirstWeekday int      `json:"firstWeekday"`
	Cells        []Cell   `json:"cells"`
	Summary      Summary  `json:"summary"`
	Prev         MonthRef `json:"prev"`
	Next         MonthRef `json:"next"`
}

func NewMonthView(year int, month time.Month, logs []workouts.WorkoutLog) MonthView {
	cells := BuildGrid(year, month, logs)
	prevYear, prevMonth := PrevMonth(year, month)
	nextYear, nextMonth := NextMonth(year, month)

	return MonthView{
		Year:         year,
		Month:        int(month),
		MonthName:    month.String(),
		DaysInMonth:  DaysInMonth(year, month),
		FirstWeekday: FirstWeekdayOfMonth(year, month),
		Cells:        cells,
		Summary:      Summarize(cells),
		Prev:         MonthRef{Year: prevYear, Month: int(prevMonth)},
		Next:         MonthRef{Year: nextYear, Month: int(nextMonth)},
	}
}
