package workouts

import (
	"errors"
	"time"
)

// DateLayout is the calendar day format used by logs (ISO, YYYY-MM-DD).
const DateLayout = "2006-01-02"

var (
	ErrExerciseTypeNotFound = errors.New("exercise type not found")
	ErrExerciseTypeInUse    = errors.New("exercise type is used by workout sets")
	ErrWorkoutLogNotFound   = errors.New("workout log not found")
	ErrWorkoutSetNotFound   = errors.New("workout set not found")
)

type ExerciseType struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type WorkoutLog struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Date            string    `json:"date"`
	Completed       bool      `json:"completed"`
	DurationMinutes *int      `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type WorkoutSet struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	WorkoutLogID     string    `json:"workoutLogId"`
	ExerciseTypeID   string    `json:"exerciseTypeId"`
	ExerciseTypeName string    `json:"exerciseTypeName,omitempty"`
	ExerciseCategory Category  `json:"exerciseCategory,omitempty"`
	Reps             int       `json:"reps"`
	Weight           float64   `json:"weight"`
	SetNumber        int       `json:"setNumber"`
	WorkoutDate      string    `json:"workoutDate,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type ListWorkoutLogsParams struct {
	From *time.Time
	To   *time.Time
}

// StatsParams filters the sets used for statistics. An empty ExerciseTypeID means all types.
type StatsParams struct {
	ExerciseTypeID string
	From           *time.Time
	To             *time.Time
}
