package workouts

import (
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fitcal/internal/telemetry/tracing"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type workoutLogRequest struct {
	Completed       bool `json:"completed"`
	DurationMinutes *int `json:"durationMinutes" validate:"omitempty,gte=0,lte=1440"`
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (handler *Handler) HandleListWorkoutLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.logs.list")
	defer span.End()

	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}

	from, to, ok := dateRangeFromQuery(w, r)
	if !ok {
		return
	}

	logs, err := handler.service.ListWorkoutLogs(ctx, userID, ListWorkoutLogsParams{From: from, To: to})
	if err != nil {
		log.Errorf("list workout logs: %s", err)
		http.Error(w, "list workout logs failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logs, http.StatusOK)
}

// HandleGetWorkoutLog responds with null when there is no log for the day.
func (handler *Handler) HandleGetWorkoutLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.logs.get")
	defer span.End()

	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}

	date, ok := dateFromVars(w, r)
	if !ok {
		return
	}

	workoutLog, err := handler.service.GetWorkoutLogByDate(ctx, userID, date)
	if err != nil {
		log.Errorf("get workout log: %s", err)
		http.Error(w, "get workout log failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, workoutLog, http.StatusOK)
}

func (handler *Handler) HandleUpsertWorkoutLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.logs.upsert")
	defer span.End()

	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}

	date, ok := dateFromVars(w, r)
	if !ok {
		return
	}

	var req workoutLogRequest
	if !handler.decodeAndValidate(w, r, &req) {
		return
	}

	workoutLog, err := handler.service.UpsertWorkoutLog(ctx, userID, date, req.Completed, req.DurationMinutes)
	if err != nil {
		log.Errorf("upsert workout log: %s", err)
		http.Error(w, "save workout log failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, workoutLog, http.StatusOK)
}

func (handler *Handler) HandleDeleteWorkoutLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.logs.delete")
	defer span.End()

	userID, ok := userIDOrUnauthorized(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if !handler.validID(w, id) {
		return
	}

	if err := handler.service.DeleteWorkoutLog(ctx, userID, id); err != nil {
		if errors.Is(err, ErrWorkoutLogNotFound) {
			http.Error(w, "workout log not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout log %s: %s", id, err)
		http.Error(w, "delete workout log failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
