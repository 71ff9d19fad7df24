package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/fitaipro/internal/telemetry/metrics"
	"github.com/2beens/fitaipro/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a 500, unless the handler already
// started the response, in which case the response is left as it is.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			resp := &responseWriter{ResponseWriter: respWriter, statusCode: http.StatusOK}
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				log.WithFields(log.Fields{
					"method": req.Method,
					"route":  routeTemplate(req),
					"user":   pkg.UserKey(mux.Vars(req)["user"]),
				}).Errorf("panic serving request: %v\n%s", r, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}

				if !resp.wroteHeader {
					http.Error(resp, "error, request failed, internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(resp, req)
		})
	}
}
