package workouts

import (
	"errors"
	"net/http"

	"github.com/2beens/fitcal/internal/telemetry/tracing"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type exerciseTypeRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Category string `json:"category" validate:"required,max=32"`
}

func (handler *Handler) HandleListExerciseTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercise_types.list")
	defer span.End()

	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("grouped") == "true" {
		groups, err := handler.service.ListExerciseTypesGrouped(ctx, userID)
		if err != nil {
			log.Errorf("list grouped exercise types: %s", err)
			http.Error(w, "list exercise types failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, groups, http.StatusOK)
		return
	}

	exerciseTypes, err := handler.service.ListExerciseTypes(ctx, userID)
	if err != nil {
		log.Errorf("list exercise types: %s", err)
		http.Error(w, "list exercise types failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, exerciseTypes, http.StatusOK)
}

func (handler *Handler) HandleCreateExerciseType(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercise_types.create")
	defer span.End()

	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req exerciseTypeRequest
	if !handler.decodeAndValidate(w, r, &req) {
		return
	}

	exerciseType, err := handler.service.CreateExerciseType(ctx, userID, req.Name, req.Category)
	if err != nil {
		log.Errorf("create exercise type: %s", err)
		http.Error(w, "create exercise type failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise type added: %s [%s]", exerciseType.Name, exerciseType.Category)
	writeJSON(w, exerciseType, http.StatusCreated)
}

func (handler *Handler) HandleUpdateExerciseType(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercise_types.update")
	defer span.End()

	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if !handler.validID(w, id) {
		return
	}

	var req exerciseTypeRequest
	if !handler.decodeAndValidate(w, r, &req) {
		return
	}

	exerciseType, err := handler.service.UpdateExerciseType(ctx, userID, id, req.Name, req.Category)
	if err != nil {
		if errors.Is(err, ErrExerciseTypeNotFound) {
			http.Error(w, "exercise type not found", http.StatusNotFound)
			return
		}
		log.Errorf("update exercise type %s: %s", id, err)
		http.Error(w, "update exercise type failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, exerciseType, http.StatusOK)
}

func (handler *Handler) HandleDeleteExerciseType(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercise_types.delete")
	defer span.End()

	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if !handler.validID(w, id) {
		return
	}

	if err := handler.service.DeleteExerciseType(ctx, userID, id); err != nil {
		switch {
		case errors.Is(err, ErrExerciseTypeNotFound):
			http.Error(w, "exercise type not found", http.StatusNotFound)
		case errors.Is(err, ErrExerciseTypeInUse):
			http.Error(w, "exercise type is used by existing workouts", http.StatusConflict)
		default:
			log.Errorf("delete exercise type %s: %s", id, err)
			http.Error(w, "delete exercise type failed", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
