package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitcal/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// A set number <= 0 is resolved to max+1 within the (log, exercise type) pair.
// The log must belong to the user, otherwise no row is inserted.
const createWorkoutSetSQL = `
	INSERT INTO workout_set
	    (user_id, workout_log_id, exercise_type_id, reps, weight, set_number)
	SELECT l.user_id, l.id, $3::uuid, $4::int, $5::numeric,
	       CASE
	           WHEN $6::int > 0 THEN $6::int
	           ELSE COALESCE((
	               SELECT MAX(s.set_number)
	               FROM workout_set s
	               WHERE s.workout_log_id = l.id AND s.exercise_type_id = $3::uuid
	           ), 0) + 1
	       END
	FROM workout_log l
	WHERE l.id = $2::uuid AND l.user_id = $1::uuid
	RETURNING id, set_number, created_at, updated_at
`

// ensureWorkoutLogSQL returns the id of the user's log for the day and whether
// it was created by this statement. An existing log is left untouched.
const ensureWorkoutLogSQL = `
	WITH inserted AS (
	    INSERT INTO workout_log (user_id, workout_date, completed)
	    VALUES ($1::uuid, $2::date, TRUE)
	    ON CONFLICT (user_id, workout_date) DO NOTHING
	    RETURNING id
	)
	SELECT id, TRUE FROM inserted
	UNION ALL
	SELECT id, FALSE FROM workout_log WHERE user_id = $1::uuid AND workout_date = $2::date
	LIMIT 1
`

const renumberWorkoutSetsSQL = `
	UPDATE workout_set s
	SET set_number = n.rn, updated_at = now()
	FROM (
	    SELECT id, ROW_NUMBER() OVER (ORDER BY set_number, created_at) AS rn
	    FROM workout_set
	    WHERE workout_log_id = $1 AND exercise_type_id = $2
	) n
	WHERE s.id = n.id AND s.set_number <> n.rn
`

// ListWorkoutSets returns the sets of a log joined with their exercise type,
// ordered by exercise type and set number. Sets of deleted types keep an empty name.
func (r *Repo) ListWorkoutSets(ctx context.Context, userID, workoutLogID string) (_ []WorkoutSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout_log.id", workoutLogID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    s.id, s.user_id, s.workout_log_id, s.exercise_type_id,
			    COALESCE(t.name, ''), COALESCE(t.category, 'OTHER'),
			    s.reps, s.weight, s.set_number, s.created_at, s.updated_at
			FROM workout_set s
			LEFT JOIN exercise_type t ON t.id = s.exercise_type_id
			WHERE s.user_id = $1 AND s.workout_log_id = $2
			ORDER BY t.name, s.exercise_type_id, s.set_number
		`,
		userID, workoutLogID,
	)
	if err != nil {
		return nil, fmt.Errorf("workout sets [query]: %w", err)
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
			&set.CreatedAt,
			&set.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("workout sets [rows scan]: %w", err)
		}
		sets = append(sets, set)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout sets [rows error]: %w", err)
	}

	return sets, nil
}

// SaveWorkoutSets stores the sets in one transaction, creating the day's log
// (as completed) when missing. Either all sets are stored or none.
// A set number <= 0 falls back to max+1 within the (log, exercise type) pair.
func (r *Repo) SaveWorkoutSets(
	ctx context.Context,
	userID string,
	date time.Time,
	exerciseTypeID string,
	pending []PendingSet,
) (_ []WorkoutSet, logCreated bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("exercise_type.id", exerciseTypeID),
		attribute.Int("pending.count", len(pending)),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Errorf("save workout sets, rollback: %s", rbErr)
		}
	}()

	var workoutLogID string
	if err := tx.QueryRow(ctx, ensureWorkoutLogSQL, userID, date).Scan(&workoutLogID, &logCreated); err != nil {
		return nil, false, fmt.Errorf("workout log [ensure]: %w", err)
	}

	saved := make([]WorkoutSet, 0, len(pending))
	for _, p := range pending {
		set := WorkoutSet{
			UserID:         userID,
			WorkoutLogID:   workoutLogID,
			ExerciseTypeID: exerciseTypeID,
			Reps:           p.Reps,
			Weight:         p.Weight,
		}
		err := tx.QueryRow(
			ctx,
			createWorkoutSetSQL,
			userID, workoutLogID, exerciseTypeID, p.Reps, p.Weight, p.SetNumber,
		).Scan(
			&set.ID,
			&set.SetNumber,
			&set.CreatedAt,
			&set.UpdatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, ErrWorkoutLogNotFound
		}
		if err != nil {
			return nil, false, fmt.Errorf("workout set [insert]: %w", err)
		}
		saved = append(saved, set)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("commit tx: %w", err)
	}

	return saved, logCreated, nil
}

func (r *Repo) UpdateWorkoutSet(ctx context.Context, userID, id string, reps int, weight float64) (_ *WorkoutSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout_set.id", id))

	set := WorkoutSet{
		ID:     id,
		UserID: userID,
	}
	err = r.db.QueryRow(
		ctx,
		`
			UPDATE workout_set
			SET reps = $3, weight = $4, updated_at = now()
			WHERE id = $1 AND user_id = $2
			RETURNING workout_log_id, exercise_type_id, reps, weight, set_number, created_at, updated_at
		`,
		id, userID, reps, weight,
	).Scan(
		&set.WorkoutLogID,
		&set.ExerciseTypeID,
		&set.Reps,
		&set.Weight,
		&set.SetNumber,
		&set.CreatedAt,
		&set.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutSetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("workout set [update]: %w", err)
	}

	return &set, nil
}

// DeleteWorkoutSet removes the set and renumbers the remaining sets of the
// same (log, exercise type) pair to 1..N, in one transaction.
func (r *Repo) DeleteWorkoutSet(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout_set.id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Errorf("delete workout set, rollback: %s", rbErr)
		}
	}()

	var workoutLogID, exerciseTypeID string
	err = tx.QueryRow(
		ctx,
		`
			DELETE FROM workout_set
			WHERE id = $1 AND user_id = $2
			RETURNING workout_log_id, exercise_type_id
		`,
		id, userID,
	).Scan(&workoutLogID, &exerciseTypeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrWorkoutSetNotFound
	}
	if err != nil {
		return fmt.Errorf("workout set [delete]: %w", err)
	}

	tag, err := tx.Exec(ctx, renumberWorkoutSetsSQL, workoutLogID, exerciseTypeID)
	if err != nil {
		return fmt.Errorf("workout sets [renumber]: %w", err)
	}
	log.Tracef("renumbered %d sets of log %s, exercise type %s", tag.RowsAffected(), workoutLogID, exerciseTypeID)

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}
