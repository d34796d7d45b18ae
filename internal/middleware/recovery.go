package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/fitcal/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

const panicResponseMessage = "something went wrong, please retry"

// PanicRecovery turns a handler panic into a 500 and counts it.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				log.WithFields(log.Fields{
					"route":  routeName(r),
					"method": r.Method,
					"path":   r.URL.Path,
				}).Errorf("fitcal handler panic: %v\n%s", recovered, debug.Stack())

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(w, panicResponseMessage, http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
