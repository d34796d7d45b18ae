package calendar

import (
	"time"

	"github.com/2beens/fitcal/internal/workouts"
)

type Cell struct {
	Blank bool                 `json:"blank"`
	Day   int                  `json:"day,omitempty"`
	Date  string               `json:"date,omitempty"`
	Log   *workouts.WorkoutLog `json:"log,omitempty"`
}

// BuildGrid lays out a month: one blank cell for every weekday before the 1st,
// followed by a cell per day carrying the log of that date, if any.
func BuildGrid(year int, month time.Month, logs []workouts.WorkoutLog) []Cell {
	byDate := make(map[string]*workouts.WorkoutLog, len(logs))
	for i := range logs {
		byDate[logs[i].Date] = &logs[i]
	}

	leading := FirstWeekdayOfMonth(year, month)
	days := DaysInMonth(year, month)

	cells := make([]Cell, 0, leading+days)
	for i := 0; i < leading; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for day := 1; day <= days; day++ {
		date := FormatDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		cells = append(cells, Cell{
			Day:  day,
			Date: date,
			Log:  byDate[date],
		})
	}

	return cells
}

type Summary struct {
	LoggedDays    int `json:"loggedDays"`
	CompletedDays int `json:"completedDays"`
	TotalMinutes  int `json:"totalMinutes"`
}

func Summarize(cells []Cell) Summary {
	var s Summary
	for _, c := range cells {
		if c.Log == nil {
			continue
		}
		s.LoggedDays++
		if c.Log.Completed {
			s.CompletedDays++
		}
		if c.Log.DurationMinutes != nil {
			s.TotalMinutes += *c.Log.DurationMinutes
		}
	}
	return s
}
