package workouts

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fitcal/internal/telemetry/tracing"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=stats_handler_mocks_test.go -package=workouts_test

type workoutsAnalyzer interface {
	ExerciseHistory(ctx context.Context, userID string, params StatsParams) (*ExerciseHistory, error)
	CategoryShares(ctx context.Context, userID string, params StatsParams) ([]CategoryShare, error)
}

type StatsHandler struct {
	analyzer workoutsAnalyzer
	validate *validator.Validate
}

func NewStatsHandler(analyzer workoutsAnalyzer) *StatsHandler {
	return &StatsHandler{
		analyzer: analyzer,
		validate: validator.New(),
	}
}

func (handler *StatsHandler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/stats/exercise-types/{id}/history", handler.HandleExerciseHistory).Methods("GET", "OPTIONS").Name("stats-exercise-history")
	r.HandleFunc("/stats/categories", handler.HandleCategoryShares).Methods("GET", "OPTIONS").Name("stats-categories")
}

func (handler *StatsHandler) HandleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.stats.history")
	defer span.End()

	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}

	exerciseTypeID := mux.Vars(r)["id"]
	if err := handler.validate.Var(exerciseTypeID, "required,uuid"); err != nil {
		http.Error(w, "error, invalid id", http.StatusBadRequest)
		return
	}

	from, to, ok := dateRangeFromQuery(w, r)
	if !ok {
		return
	}

	history, err := handler.analyzer.ExerciseHistory(ctx, userID, StatsParams{
		ExerciseTypeID: exerciseTypeID,
		From:           from,
		To:             to,
	})
	if err != nil {
		log.Errorf("exercise history [%s]: %s", exerciseTypeID, err)
		http.Error(w, "get exercise history failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, history, http.StatusOK)
}

func (handler *StatsHandler) HandleCategoryShares(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.stats.categories")
	defer span.End()

	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}

	from, to, ok := dateRangeFromQuery(w, r)
	if !ok {
		return
	}

	shares, err := handler.analyzer.CategoryShares(ctx, userID, StatsParams{From: from, To: to})
	if err != nil {
		log.Errorf("category shares: %s", err)
		http.Error(w, "get category shares failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, shares, http.StatusOK)
}

func dateRangeFromQuery(w http.ResponseWriter, r *http.Request) (*time.Time, *time.Time, bool) {
	from, err := parseOptionalDate(r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "error, invalid from date", http.StatusBadRequest)
		return nil, nil, false
	}
	to, err := parseOptionalDate(r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "error, invalid to date", http.StatusBadRequest)
		return nil, nil, false
	}
	if from != nil && to != nil && to.Before(*from) {
		http.Error(w, "error, to date before from date", http.StatusBadRequest)
		return nil, nil, false
	}
	return from, to, true
}
