package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitcal/internal/cache"
	"github.com/2beens/fitcal/internal/telemetry/metrics"
	"github.com/2beens/fitcal/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const exerciseTypesCacheExpireSeconds = 10 * 60

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	ListExerciseTypes(ctx context.Context, userID string) ([]ExerciseType, error)
	CreateExerciseType(ctx context.Context, userID, name string, category Category) (*ExerciseType, error)
	UpdateExerciseType(ctx context.Context, userID, id, name string, category Category) (*ExerciseType, error)
	DeleteExerciseType(ctx context.Context, userID, id string) error
	CountSetsForExerciseType(ctx context.Context, userID, exerciseTypeID string) (int, error)

	ListWorkoutLogs(ctx context.Context, userID string, params ListWorkoutLogsParams) ([]WorkoutLog, error)
	GetWorkoutLogByDate(ctx context.Context, userID string, date time.Time) (*WorkoutLog, error)
	UpsertWorkoutLog(ctx context.Context, userID string, date time.Time, completed bool, durationMinutes *int) (*WorkoutLog, error)
	DeleteWorkoutLog(ctx context.Context, userID, id string) error

	ListWorkoutSets(ctx context.Context, userID, workoutLogID string) ([]WorkoutSet, error)
	SaveWorkoutSets(ctx context.Context, userID string, date time.Time, exerciseTypeID string, pending []PendingSet) ([]WorkoutSet, bool, error)
	UpdateWorkoutSet(ctx context.Context, userID, id string, reps int, weight float64) (*WorkoutSet, error)
	DeleteWorkoutSet(ctx context.Context, userID, id string) error
}

type Service struct {
	repo           workoutsRepo
	cache          cache.Cache
	metricsManager *metrics.Manager
}

func NewService(repo workoutsRepo, cache cache.Cache, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		cache:          cache,
		metricsManager: metricsManager,
	}
}

func exerciseTypesCacheKey(userID string) string {
	return "exercise-types::" + userID
}

func (s *Service) ListExerciseTypes(ctx context.Context, userID string) (_ []ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.exercise_types.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := exerciseTypesCacheKey(userID)
	if cached, err := s.cache.Get(cacheKey); err == nil {
		var exerciseTypes []ExerciseType
		if err := json.Unmarshal(cached, &exerciseTypes); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return exerciseTypes, nil
		} else {
			log.Errorf("unmarshal cached exercise types for user %s: %s", userID, err)
		}
	} else if !errors.Is(err, cache.ErrNotFound) {
		log.Warnf("get exercise types from cache: %s", err)
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	exerciseTypes, err := s.repo.ListExerciseTypes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list exercise types: %w", err)
	}

	if typesJson, err := json.Marshal(exerciseTypes); err != nil {
		log.Errorf("marshal exercise types for cache: %s", err)
	} else if err := s.cache.Set(cacheKey, typesJson, exerciseTypesCacheExpireSeconds); err != nil {
		log.Warnf("set exercise types cache for user %s: %s", userID, err)
	}

	return exerciseTypes, nil
}

func (s *Service) ListExerciseTypesGrouped(ctx context.Context, userID string) ([]CategoryGroup, error) {
	exerciseTypes, err := s.ListExerciseTypes(ctx, userID)
	if err != nil {
		return nil, err
	}
	return GroupByCategory(exerciseTypes), nil
}

func (s *Service) CreateExerciseType(ctx context.Context, userID, name, category string) (_ *ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.exercise_types.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exerciseType, err := s.repo.CreateExerciseType(ctx, userID, normalizeName(name), NormalizeCategory(category))
	if err != nil {
		return nil, fmt.Errorf("create exercise type: %w", err)
	}
	s.invalidateExerciseTypes(userID)
	s.metricsManager.CounterExerciseTypesCreated.Inc()

	return exerciseType, nil
}

func (s *Service) UpdateExerciseType(ctx context.Context, userID, id, name, category string) (_ *ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.exercise_types.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exerciseType, err := s.repo.UpdateExerciseType(ctx, userID, id, normalizeName(name), NormalizeCategory(category))
	if err != nil {
		return nil, fmt.Errorf("update exercise type: %w", err)
	}
	s.invalidateExerciseTypes(userID)

	return exerciseType, nil
}

// DeleteExerciseType refuses to delete a type still referenced by workout sets.
func (s *Service) DeleteExerciseType(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.exercise_types.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	usedBy, err := s.repo.CountSetsForExerciseType(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("check exercise type usage: %w", err)
	}
	if usedBy > 0 {
		return fmt.Errorf("exercise type %s used by %d sets: %w", id, usedBy, ErrExerciseTypeInUse)
	}

	if err := s.repo.DeleteExerciseType(ctx, userID, id); err != nil {
		return fmt.Errorf("delete exercise type: %w", err)
	}
	s.invalidateExerciseTypes(userID)

	return nil
}

// SeedDefaultExerciseTypes adds the default catalog to a freshly created account.
func (s *Service) SeedDefaultExerciseTypes(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.exercise_types.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	defaults, err := DefaultExerciseTypes()
	if err != nil {
		return fmt.Errorf("default exercise types: %w", err)
	}

	for _, d := range defaults {
		if _, err := s.repo.CreateExerciseType(ctx, userID, d.Name, Category(d.Category)); err != nil {
			return fmt.Errorf("seed exercise type %s: %w", d.Name, err)
		}
	}
	s.invalidateExerciseTypes(userID)

	log.Debugf("seeded %d exercise types for user %s", len(defaults), userID)
	return nil
}

func (s *Service) ListWorkoutLogs(ctx context.Context, userID string, params ListWorkoutLogsParams) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.logs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := s.repo.ListWorkoutLogs(ctx, userID, params)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}
	return logs, nil
}

func (s *Service) GetWorkoutLogByDate(ctx context.Context, userID string, date time.Time) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.logs.get_by_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workoutLog, err := s.repo.GetWorkoutLogByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("get workout log by date: %w", err)
	}
	return workoutLog, nil
}

func (s *Service) UpsertWorkoutLog(ctx context.Context, userID string, date time.Time, completed bool, durationMinutes *int) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.logs.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workoutLog, err := s.repo.UpsertWorkoutLog(ctx, userID, date, completed, durationMinutes)
	if err != nil {
		return nil, fmt.Errorf("upsert workout log: %w", err)
	}
	s.metricsManager.CounterWorkoutLogsUpserted.Inc()

	return workoutLog, nil
}

func (s *Service) DeleteWorkoutLog(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.logs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.DeleteWorkoutLog(ctx, userID, id); err != nil {
		return fmt.Errorf("delete workout log: %w", err)
	}
	return nil
}

// ListWorkoutSetsByDate returns an empty list when there is no log for the day.
func (s *Service) ListWorkoutSetsByDate(ctx context.Context, userID string, date time.Time) (_ []WorkoutSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.sets.list_by_date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workoutLog, err := s.repo.GetWorkoutLogByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("get workout log by date: %w", err)
	}
	if workoutLog == nil {
		return []WorkoutSet{}, nil
	}

	sets, err := s.repo.ListWorkoutSets(ctx, userID, workoutLog.ID)
	if err != nil {
		return nil, fmt.Errorf("list workout sets: %w", err)
	}
	return sets, nil
}

// SaveSetDraft stores pending sets of one exercise type for the given day.
// The day's log is created (as completed) when missing. Set numbers sent by
// the client are ignored, pending sets continue after the highest persisted one.
func (s *Service) SaveSetDraft(
	ctx context.Context,
	userID string,
	date time.Time,
	exerciseTypeID string,
	pending []PendingSet,
) (_ []WorkoutSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.sets.save_draft")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("exercise_type.id", exerciseTypeID),
		attribute.Int("pending.count", len(pending)),
	)

	if len(pending) == 0 {
		return []WorkoutSet{}, nil
	}

	if err := s.ensureExerciseTypeExists(ctx, userID, exerciseTypeID); err != nil {
		return nil, err
	}

	workoutLog, err := s.repo.GetWorkoutLogByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("get workout log by date: %w", err)
	}

	var persisted []WorkoutSet
	if workoutLog != nil {
		logSets, err := s.repo.ListWorkoutSets(ctx, userID, workoutLog.ID)
		if err != nil {
			return nil, fmt.Errorf("list workout sets: %w", err)
		}
		for _, set := range logSets {
			if set.ExerciseTypeID == exerciseTypeID {
				persisted = append(persisted, set)
			}
		}
	}

	draft := NewSetDraft(persisted)
	for _, p := range pending {
		draft.Add(p.Reps, p.Weight)
	}

	saved, logCreated, err := s.repo.SaveWorkoutSets(ctx, userID, date, exerciseTypeID, draft.Pending())
	if err != nil {
		return nil, fmt.Errorf("save workout sets: %w", err)
	}

	if logCreated {
		s.metricsManager.CounterWorkoutLogsUpserted.Inc()
	}
	s.metricsManager.CounterWorkoutSetsAdded.Add(float64(len(saved)))

	return saved, nil
}

func (s *Service) UpdateWorkoutSet(ctx context.Context, userID, id string, reps int, weight float64) (_ *WorkoutSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.sets.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	set, err := s.repo.UpdateWorkoutSet(ctx, userID, id, reps, weight)
	if err != nil {
		return nil, fmt.Errorf("update workout set: %w", err)
	}
	return set, nil
}

func (s *Service) DeleteWorkoutSet(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.sets.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.DeleteWorkoutSet(ctx, userID, id); err != nil {
		return fmt.Errorf("delete workout set: %w", err)
	}
	return nil
}

func (s *Service) ensureExerciseTypeExists(ctx context.Context, userID, exerciseTypeID string) error {
	exerciseTypes, err := s.ListExerciseTypes(ctx, userID)
	if err != nil {
		return err
	}
	for _, t := range exerciseTypes {
		if t.ID == exerciseTypeID {
			return nil
		}
	}
	return ErrExerciseTypeNotFound
}

func (s *Service) invalidateExerciseTypes(userID string) {
	s.cache.Del(exerciseTypesCacheKey(userID))
}

func normalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
