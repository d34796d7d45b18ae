package workouts

import (
	"errors"
	"net/http"

	"github.com/2beens/fitcal/internal/telemetry/tracing"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type saveSetsRequest struct {
	ExerciseTypeID string       `json:"exerciseTypeId" validate:"required,uuid"`
	Sets           []PendingSet `json:"sets" validate:"required,min=1,max=100,dive"`
}

type updateSetRequest struct {
	Reps   int     `json:"reps" validate:"gte=0"`
	Weight float64 `json:"weight" validate:"gte=0"`
}

func (handler *Handler) HandleListWorkoutSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sets.list")
	defer span.End()

	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}

	date, ok := dateFromVars(w, r)
	if !ok {
		return
	}

	sets, err := handler.service.ListWorkoutSetsByDate(ctx, userID, date)
	if err != nil {
		log.Errorf("list workout sets: %s", err)
		http.Error(w, "list workout sets failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, sets, http.StatusOK)
}

func (handler *Handler) HandleSaveWorkoutSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sets.save")
	defer span.End()

	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}

	date, ok := dateFromVars(w, r)
	if !ok {
		return
	}

	var req saveSetsRequest
	if !handler.decodeAndValidate(w, r, &req) {
		return
	}

	saved, err := handler.service.SaveSetDraft(ctx, userID, date, req.ExerciseTypeID, req.Sets)
	if err != nil {
		if errors.Is(err, ErrExerciseTypeNotFound) {
			http.Error(w, "exercise type not found", http.StatusNotFound)
			return
		}
		log.Errorf("save workout sets: %s", err)
		http.Error(w, "save workout sets failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, saved, http.StatusCreated)
}

func (handler *Handler) HandleUpdateWorkoutSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sets.update")
	defer span.End()

	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if !handler.validID(w, id) {
		return
	}

	var req updateSetRequest
	if !handler.decodeAndValidate(w, r, &req) {
		return
	}

	set, err := handler.service.UpdateWorkoutSet(ctx, userID, id, req.Reps, req.Weight)
	if err != nil {
		if errors.Is(err, ErrWorkoutSetNotFound) {
			http.Error(w, "workout set not found", http.StatusNotFound)
			return
		}
		log.Errorf("update workout set %s: %s", id, err)
		http.Error(w, "update workout set failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, set, http.StatusOK)
}

func (handler *Handler) HandleDeleteWorkoutSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sets.delete")
	defer span.End()

	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if !handler.validID(w, id) {
		return
	}

	if err := handler.service.DeleteWorkoutSet(ctx, userID, id); err != nil {
		if errors.Is(err, ErrWorkoutSetNotFound) {
			http.Error(w, "workout set not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout set %s: %s", id, err)
		http.Error(w, "delete workout set failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
