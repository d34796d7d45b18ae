package workouts

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/fitcal/internal/auth"
	"github.com/2beens/fitcal/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	ListExerciseTypes(ctx context.Context, userID string) ([]ExerciseType, error)
	ListExerciseTypesGrouped(ctx context.Context, userID string) ([]CategoryGroup, error)
	CreateExerciseType(ctx context.Context, userID, name, category string) (*ExerciseType, error)
	UpdateExerciseType(ctx context.Context, userID, id, name, category string) (*ExerciseType, error)
	DeleteExerciseType(ctx context.Context, userID, id string) error

	ListWorkoutLogs(ctx context.Context, userID string, params ListWorkoutLogsParams) ([]WorkoutLog, error)
	GetWorkoutLogByDate(ctx context.Context, userID string, date time.Time) (*WorkoutLog, error)
	UpsertWorkoutLog(ctx context.Context, userID string, date time.Time, completed bool, durationMinutes *int) (*WorkoutLog, error)
	DeleteWorkoutLog(ctx context.Context, userID, id string) error

	ListWorkoutSetsByDate(ctx context.Context, userID string, date time.Time) ([]WorkoutSet, error)
	SaveSetDraft(ctx context.Context, userID string, date time.Time, exerciseTypeID string, pending []PendingSet) ([]WorkoutSet, error)
	UpdateWorkoutSet(ctx context.Context, userID, id string, reps int, weight float64) (*WorkoutSet, error)
	DeleteWorkoutSet(ctx context.Context, userID, id string) error
}

type Handler struct {
	service  workoutsService
	validate *validator.Validate
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercise-types", handler.HandleListExerciseTypes).Methods("GET", "OPTIONS").Name("list-exercise-types")
	r.HandleFunc("/exercise-types", handler.HandleCreateExerciseType).Methods("POST", "OPTIONS").Name("new-exercise-type")
	r.HandleFunc("/exercise-types/{id}", handler.HandleUpdateExerciseType).Methods("PUT", "OPTIONS").Name("update-exercise-type")
	r.HandleFunc("/exercise-types/{id}", handler.HandleDeleteExerciseType).Methods("DELETE", "OPTIONS").Name("delete-exercise-type")

	r.HandleFunc("/logs", handler.HandleListWorkoutLogs).Methods("GET", "OPTIONS").Name("list-workout-logs")
	r.HandleFunc("/logs/{date}", handler.HandleGetWorkoutLog).Methods("GET", "OPTIONS").Name("get-workout-log")
	r.HandleFunc("/logs/{date}", handler.HandleUpsertWorkoutLog).Methods("PUT", "OPTIONS").Name("upsert-workout-log")
	r.HandleFunc("/logs/{id}", handler.HandleDeleteWorkoutLog).Methods("DELETE", "OPTIONS").Name("delete-workout-log")

	r.HandleFunc("/logs/{date}/sets", handler.HandleListWorkoutSets).Methods("GET", "OPTIONS").Name("list-workout-sets")
	r.HandleFunc("/logs/{date}/sets", handler.HandleSaveWorkoutSets).Methods("POST", "OPTIONS").Name("save-workout-sets")
	r.HandleFunc("/sets/{id}", handler.HandleUpdateWorkoutSet).Methods("PUT", "OPTIONS").Name("update-workout-set")
	r.HandleFunc("/sets/{id}", handler.HandleDeleteWorkoutSet).Methods("DELETE", "OPTIONS").Name("delete-workout-set")
}

// userIDOrUnauthorized writes a 401 response when the request carries no authenticated user.
func userIDOrUnauthorized(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, auth.ErrAuthRequired.Error(), http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

func (handler *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Debugf("unmarshal json request [%s]: %s", r.URL.Path, err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}

	if err := handler.validate.Struct(dst); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}

	return true
}

func (handler *Handler) validID(w http.ResponseWriter, id string) bool {
	if err := handler.validate.Var(id, "required,uuid"); err != nil {
		http.Error(w, "error, invalid id", http.StatusBadRequest)
		return false
	}
	return true
}

func dateFromVars(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	date, err := time.Parse(DateLayout, mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, "error, invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return time.Time{}, false
	}
	return date, true
}

func writeJSON(w http.ResponseWriter, v any, statusCode int) {
	resJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resJson, statusCode)
}
