package workouts

import (
	"context"
	"math"
	"sort"

	"github.com/2beens/fitcal/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=workouts_test

type setsInRangeLister interface {
	ListWorkoutSetsInRange(ctx context.Context, userID string, params StatsParams) ([]WorkoutSet, error)
}

// ExerciseHistory holds, for each workout day, the aggregated sets of one exercise type.
type ExerciseHistory struct {
	ExerciseTypeID string     `json:"exerciseTypeId"`
	Days           []DayStats `json:"days"`
}

type DayStats struct {
	Date      string  `json:"date"`
	Sets      int     `json:"sets"`
	AvgReps   float64 `json:"avgReps"`
	AvgWeight float64 `json:"avgWeight"`
	MaxWeight float64 `json:"maxWeight"`
	// Volume is the sum of reps * weight
	Volume float64 `json:"volume"`
}

type CategoryShare struct {
	Category   Category `json:"category"`
	Sets       int      `json:"sets"`
	Percentage float64  `json:"percentage"`
}

type Analyzer struct {
	repo setsInRangeLister
}

func NewAnalyzer(repo setsInRangeLister) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

func (a *Analyzer) ExerciseHistory(ctx context.Context, userID string, params StatsParams) (_ *ExerciseHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.exercise_history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_type.id", params.ExerciseTypeID))

	sets, err := a.repo.ListWorkoutSetsInRange(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	day2sets := make(map[string][]WorkoutSet)
	for _, set := range sets {
		day2sets[set.WorkoutDate] = append(day2sets[set.WorkoutDate], set)
	}

	history := &ExerciseHistory{
		ExerciseTypeID: params.ExerciseTypeID,
		Days:           make([]DayStats, 0, len(day2sets)),
	}
	for day, daySets := range day2sets {
		stats := DayStats{
			Date: day,
			Sets: len(daySets),
		}
		var totalReps int
		var totalWeight float64
		for _, set := range daySets {
			totalReps += set.Reps
			totalWeight += set.Weight
			stats.Volume += float64(set.Reps) * set.Weight
			if set.Weight > stats.MaxWeight {
				stats.MaxWeight = set.Weight
			}
		}
		stats.AvgReps = roundCents(float64(totalReps) / float64(len(daySets)))
		stats.AvgWeight = roundCents(totalWeight / float64(len(daySets)))
		stats.Volume = roundCents(stats.Volume)
		history.Days = append(history.Days, stats)
	}

	sort.Slice(history.Days, func(i, j int) bool {
		return history.Days[i].Date < history.Days[j].Date
	})

	return history, nil
}

// CategoryShares returns the share of sets done per category, for every known category.
func (a *Analyzer) CategoryShares(ctx context.Context, userID string, params StatsParams) (_ []CategoryShare, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.category_shares")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sets, err := a.repo.ListWorkoutSetsInRange(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	category2count := make(map[Category]int)
	for _, set := range sets {
		category := set.ExerciseCategory
		if !category.IsValid() {
			category = CategoryName.Other
		}
		category2count[category]++
	}

	shares := make([]CategoryShare, 0, len(Categories))
	for _, category := range Categories {
		share := CategoryShare{
			Category: category,
			Sets:     category2count[category],
		}
		if len(sets) > 0 {
			// basis points, truncated, so shares never add up above 100
			share.Percentage = float64(share.Sets*10000/len(sets)) / 100
		}
		shares = append(shares, share)
	}

	return shares, nil
}

func roundCents(f float64) float64 {
	return math.Round(f*100) / 100
}
