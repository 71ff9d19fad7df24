package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitaipro/internal/calculator"
	"github.com/2beens/fitaipro/internal/telemetry/tracing"
	"github.com/2beens/fitaipro/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type StartRequest struct {
	User string `json:"user"`
}

type AnswerRequest struct {
	Step  Step   `json:"step"`
	Value string `json:"value"`
}

type SessionResponse struct {
	*Session
	Progress int `json:"progress"`
}

func NewSessionResponse(s *Session) SessionResponse {
	return SessionResponse{
		Session:  s,
		Progress: s.Progress(),
	}
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.quiz.start")
	defer span.End()

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("start quiz, unmarshal json params: %s", err)
		http.Error(w, "start quiz failed, invalid body", http.StatusBadRequest)
		return
	}
	user := pkg.UserKey(req.User)
	if user == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	session, err := h.service.Start(ctx, user)
	if err != nil {
		log.Errorf("start quiz for [%s]: %s", user, err)
		http.Error(w, "start quiz failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, NewSessionResponse(session), http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.quiz.get")
	defer span.End()

	session, err := h.service.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, "get quiz session", err)
		return
	}

	pkg.WriteJSONResponse(w, NewSessionResponse(session), http.StatusOK)
}

func (h *Handler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.quiz.answer")
	defer span.End()

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("quiz answer, unmarshal json params: %s", err)
		http.Error(w, "quiz answer failed, invalid body", http.StatusBadRequest)
		return
	}

	session, err := h.service.Answer(ctx, mux.Vars(r)["id"], req.Step, req.Value)
	if err != nil {
		h.writeError(w, "quiz answer", err)
		return
	}

	pkg.WriteJSONResponse(w, NewSessionResponse(session), http.StatusOK)
}

// HandleUnlock redirects to the checkout page of the plan.
func (h *Handler) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.quiz.unlock")
	defer span.End()

	checkoutURL, err := h.service.Unlock(ctx, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, "unlock plan", err)
		return
	}

	http.Redirect(w, r, checkoutURL, http.StatusSeeOther)
}

func (h *Handler) writeError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "error, quiz session not found", http.StatusNotFound)
	case errors.Is(err, calculator.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrWrongStep), errors.Is(err, ErrQuizNotFinished):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Errorf("%s: %s", action, err)
		http.Error(w, action+" failed", http.StatusInternalServerError)
	}
}
