package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitcal/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const workoutLogColumns = `id, user_id, to_char(workout_date, 'YYYY-MM-DD'), completed, duration_minutes, created_at, updated_at`

// upsertWorkoutLogSQL relies on the (user_id, workout_date) unique constraint,
// so at most one log exists per user and day.
const upsertWorkoutLogSQL = `
	INSERT INTO workout_log
	    (user_id, workout_date, completed, duration_minutes)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id, workout_date) DO UPDATE
	SET completed = EXCLUDED.completed,
	    duration_minutes = EXCLUDED.duration_minutes,
	    updated_at = now()
	RETURNING ` + workoutLogColumns

func scanWorkoutLog(row pgx.Row) (*WorkoutLog, error) {
	var log WorkoutLog
	if err := row.Scan(
		&log.ID,
		&log.UserID,
		&log.Date,
		&log.Completed,
		&log.DurationMinutes,
		&log.CreatedAt,
		&log.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &log, nil
}

// ListWorkoutLogs returns logs in the optional [from, to] range, newest first.
func (r *Repo) ListWorkoutLogs(ctx context.Context, userID string, params ListWorkoutLogsParams) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.From != nil {
		span.SetAttributes(attribute.String("params.from", params.From.Format(DateLayout)))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("params.to", params.To.Format(DateLayout)))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+workoutLogColumns+`
			FROM workout_log
			WHERE user_id = $1
			  AND ($2::date IS NULL OR workout_date >= $2::date)
			  AND ($3::date IS NULL OR workout_date <= $3::date)
			ORDER BY workout_date DESC
		`,
		userID, params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("workout logs [query]: %w", err)
	}
	defer rows.Close()

	logs := []WorkoutLog{}
	for rows.Next() {
		log, err := scanWorkoutLog(rows)
		if err != nil {
			return nil, fmt.Errorf("workout logs [rows scan]: %w", err)
		}
		logs = append(logs, *log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout logs [rows error]: %w", err)
	}

	return logs, nil
}

// GetWorkoutLogByDate returns nil, nil when there is no log for the given day.
func (r *Repo) GetWorkoutLogByDate(ctx context.Context, userID string, date time.Time) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logs.get_by_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.Format(DateLayout)))

	log, err := scanWorkoutLog(r.db.QueryRow(
		ctx,
		`
			SELECT `+workoutLogColumns+`
			FROM workout_log
			WHERE user_id = $1 AND workout_date = $2
		`,
		userID, date,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("workout log by date [query row]: %w", err)
	}

	return log, nil
}

func (r *Repo) UpsertWorkoutLog(ctx context.Context, userID string, date time.Time, completed bool, durationMinutes *int) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logs.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("date", date.Format(DateLayout)),
		attribute.Bool("completed", completed),
	)

	log, err := scanWorkoutLog(r.db.QueryRow(
		ctx,
		upsertWorkoutLogSQL,
		userID, date, completed, durationMinutes,
	))
	if err != nil {
		return nil, fmt.Errorf("workout log [upsert]: %w", err)
	}

	return log, nil
}

// DeleteWorkoutLog removes the log together with its sets.
func (r *Repo) DeleteWorkoutLog(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`
			DELETE FROM workout_log
			WHERE id = $1 AND user_id = $2
		`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("workout log [delete]: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrWorkoutLogNotFound
	}

	return nil
}
