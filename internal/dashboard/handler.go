package dashboard

import (
	"net/http"
	"time"

	"github.com/2beens/fitaipro/internal/telemetry/tracing"
	"github.com/2beens/fitaipro/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
	now     func() time.Time
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.today")
	defer span.End()

	user := pkg.UserKey(mux.Vars(r)["user"])
	if user == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	d, err := h.service.Today(ctx, user, h.now())
	if err != nil {
		log.Errorf("dashboard for [%s]: %s", user, err)
		http.Error(w, "failed to get dashboard", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, d, http.StatusOK)
}

// SetClock replaces the time source that decides "today".
func (h *Handler) SetClock(now func() time.Time) {
	h.now = now
}
