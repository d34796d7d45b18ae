package workouts

import (
	"context"
	"fmt"

	"github.com/2beens/fitcal/internal/telemetry/tracing"
)

const listWorkoutSetsInRangeSQL = `
	SELECT
	    s.id, s.user_id, s.workout_log_id, s.exercise_type_id,
	    COALESCE(t.name, ''), COALESCE(t.category, 'OTHER'),
	    s.reps, s.weight, s.set_number, to_char(l.workout_date, 'YYYY-MM-DD'),
	    s.created_at, s.updated_at
	FROM workout_set s
	JOIN workout_log l ON l.id = s.workout_log_id
	LEFT JOIN exercise_type t ON t.id = s.exercise_type_id
	WHERE s.user_id = $1
	  AND ($2::text = '' OR s.exercise_type_id::text = $2::text)
	  AND ($3::date IS NULL OR l.workout_date >= $3::date)
	  AND ($4::date IS NULL OR l.workout_date <= $4::date)
	ORDER BY l.workout_date, s.exercise_type_id, s.set_number
`

// ListWorkoutSetsInRange returns the user's sets with their workout date, oldest first.
func (r *Repo) ListWorkoutSetsInRange(ctx context.Context, userID string, params StatsParams) (_ []WorkoutSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.list_in_range")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		listWorkoutSetsInRangeSQL,
		userID, params.ExerciseTypeID, params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("workout sets in range [query]: %w", err)
	}
	defer rows.Close()

	sets := []WorkoutSet{}
	for rows.Next() {
		var set WorkoutSet
		if err := rows.Scan(
			&set.ID,
			&set.UserID,
			&set.WorkoutLogID,
			&set.ExerciseTypeID,
			&set.ExerciseTypeName,
			&set.ExerciseCategory,
			&set.Reps,
			&set.Weight,
			&set.SetNumber,
			&set.WorkoutDate,
			&set.CreatedAt,
			&set.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("workout sets in range [rows scan]: %w", err)
		}
		sets = append(sets, set)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout sets in range [rows error]: %w", err)
	}

	return sets, nil
}
