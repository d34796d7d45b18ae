package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitcal/internal/auth"
	"github.com/2beens/fitcal/internal/telemetry/metrics"
	"github.com/2beens/fitcal/internal/telemetry/tracing"
	"github.com/2beens/fitcal/internal/workouts"
	"github.com/2beens/fitcal/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=calendar_test

type logsLister interface {
	ListWorkoutLogs(ctx context.Context, userID string, params workouts.ListWorkoutLogsParams) ([]workouts.WorkoutLog, error)
}

type Handler struct {
	logs           logsLister
	metricsManager *metrics.Manager
}

func NewHandler(logs logsLister, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		logs:           logs,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/calendar/{year}/{month}", handler.HandleMonth).Methods("GET", "OPTIONS").Name("calendar-month")
	r.HandleFunc("/calendar/{year}/{month}/report", handler.HandleMonthReport).Methods("GET", "OPTIONS").Name("calendar-month-report")
}

func (handler *Handler) HandleMonth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.month")
	defer span.End()

	view, ok := handler.monthView(ctx, w, r)
	if !ok {
		return
	}

	viewJson, err := json.Marshal(view)
	if err != nil {
		log.Errorf("marshal month view: %s", err)
		http.Error(w, "get calendar failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, viewJson, http.StatusOK)
}

func (handler *Handler) HandleMonthReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.month_report")
	defer span.End()

	view, ok := handler.monthView(ctx, w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := WriteMonthReport(&buf, view); err != nil {
		log.Errorf("month report %d-%02d: %s", view.Year, view.Month, err)
		http.Error(w, "generate report failed", http.StatusInternalServerError)
		return
	}
	handler.metricsManager.CounterReportsGenerated.Inc()

	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="workouts-%d-%02d.pdf"`, view.Year, view.Month))
	pkg.WriteResponseBytes(w, pkg.ContentType.PDF, buf.Bytes(), http.StatusOK)
}

func (handler *Handler) monthView(ctx context.Context, w http.ResponseWriter, r *http.Request) (MonthView, bool) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, auth.ErrAuthRequired.Error(), http.StatusUnauthorized)
		return MonthView{}, false
	}

	year, month, err := parseYearMonth(mux.Vars(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return MonthView{}, false
	}

	from, to := MonthRange(year, month)
	logs, err := handler.logs.ListWorkoutLogs(ctx, userID, workouts.ListWorkoutLogsParams{
		From: &from,
		To:   &to,
	})
	if err != nil {
		log.Errorf("list workout logs for %d-%02d: %s", year, month, err)
		http.Error(w, "get calendar failed", http.StatusInternalServerError)
		return MonthView{}, false
	}

	return NewMonthView(year, month, logs), true
}

func parseYearMonth(vars map[string]string) (int, time.Month, error) {
	year, err := strconv.Atoi(vars["year"])
	if err != nil || year < 1 || year > 9999 {
		return 0, 0, fmt.Errorf("error, invalid year")
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("error, invalid month")
	}
	return year, time.Month(month), nil
}
