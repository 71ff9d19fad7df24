package middleware

import (
	"net/http"

	"github.com/2beens/fitaipro/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// LogRequest traces every routed request with its route template and user.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if log.IsLevelEnabled(log.TraceLevel) {
				log.WithFields(log.Fields{
					"method": r.Method,
					"route":  routeTemplate(r),
					"user":   pkg.UserKey(mux.Vars(r)["user"]),
					"ua":     r.UserAgent(),
				}).Trace("request")
			}
			next.ServeHTTP(w, r)
		})
	}
}
