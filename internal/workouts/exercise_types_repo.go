package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitcal/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

func (r *Repo) ListExerciseTypes(ctx context.Context, userID string) (_ []ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise_types.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id, user_id, name, category, created_at, updated_at
			FROM exercise_type
			WHERE user_id = $1
			ORDER BY name, created_at
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise types [query]: %w", err)
	}
	defer rows.Close()

	exerciseTypes := []ExerciseType{}
	for rows.Next() {
		var exerciseType ExerciseType
		if err := rows.Scan(
			&exerciseType.ID,
			&exerciseType.UserID,
			&exerciseType.Name,
			&exerciseType.Category,
			&exerciseType.CreatedAt,
			&exerciseType.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("exercise types [rows scan]: %w", err)
		}
		exerciseTypes = append(exerciseTypes, exerciseType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise types [rows error]: %w", err)
	}

	span.SetAttributes(attribute.Int("exercise_types.count", len(exerciseTypes)))

	return exerciseTypes, nil
}

func (r *Repo) CreateExerciseType(ctx context.Context, userID, name string, category Category) (_ *ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise_types.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exerciseType := ExerciseType{
		UserID:   userID,
		Name:     name,
		Category: category,
	}
	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO exercise_type
			    (user_id, name, category)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at
		`,
		userID, name, category,
	).Scan(
		&exerciseType.ID,
		&exerciseType.CreatedAt,
		&exerciseType.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise type [insert]: %w", err)
	}

	return &exerciseType, nil
}

func (r *Repo) UpdateExerciseType(ctx context.Context, userID, id, name string, category Category) (_ *ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise_types.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_type.id", id))

	exerciseType := ExerciseType{
		ID:       id,
		UserID:   userID,
		Name:     name,
		Category: category,
	}
	err = r.db.QueryRow(
		ctx,
		`
			UPDATE exercise_type
			SET name = $3, category = $4, updated_at = now()
			WHERE id = $1 AND user_id = $2
			RETURNING created_at, updated_at
		`,
		id, userID, name, category,
	).Scan(
		&exerciseType.CreatedAt,
		&exerciseType.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExerciseTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("exercise type [update]: %w", err)
	}

	return &exerciseType, nil
}

// DeleteExerciseType does not check whether sets still reference the type.
func (r *Repo) DeleteExerciseType(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise_types.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_type.id", id))

	tag, err := r.db.Exec(
		ctx,
		`
			DELETE FROM exercise_type
			WHERE id = $1 AND user_id = $2
		`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("exercise type [delete]: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrExerciseTypeNotFound
	}

	return nil
}

func (r *Repo) CountSetsForExerciseType(ctx context.Context, userID, exerciseTypeID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise_types.count_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(
		ctx,
		`
			SELECT COUNT(*)
			FROM workout_set
			WHERE user_id = $1 AND exercise_type_id = $2
		`,
		userID, exerciseTypeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sets for exercise type [query row]: %w", err)
	}

	return count, nil
}
