package meals

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/2beens/fitaipro/internal/telemetry/tracing"
	"github.com/2beens/fitaipro/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type MealResponse struct {
	Meal
	TypeLabel string `json:"typeLabel"`
}

type ListResponse struct {
	Meals []MealResponse `json:"meals"`
	Total int            `json:"total"`
}

type DeleteMealResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func NewMealResponse(m Meal) MealResponse {
	return MealResponse{
		Meal:      m,
		TypeLabel: m.Type.Label(),
	}
}

func (h *Handler) HandleCapture(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.capture")
	defer span.End()

	vars := mux.Vars(r)
	user := pkg.UserKey(vars["user"])
	if user == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}
	method := CaptureMethod(vars["method"])
	if !method.IsValid() {
		http.Error(w, "error, unknown capture method", http.StatusBadRequest)
		return
	}

	var req CaptureRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			log.Tracef("capture meal, unmarshal json params: %s", err)
			http.Error(w, "capture meal failed, invalid body", http.StatusBadRequest)
			return
		}
	}

	meal, err := h.service.Capture(ctx, user, method, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidMeal), errors.Is(err, ErrUnknownCaptureMethod):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Errorf("capture meal [%s] for [%s]: %s", method, user, err)
			http.Error(w, "capture meal failed", http.StatusInternalServerError)
		}
		return
	}

	log.Debugf("meal captured for [%s]: [%s] %d kcal via %s", user, meal.Name, meal.Calories, method)
	pkg.WriteJSONResponse(w, NewMealResponse(*meal), http.StatusCreated)
}

func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.today")
	defer span.End()

	user := pkg.UserKey(mux.Vars(r)["user"])
	if user == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	meals, err := h.service.Today(ctx, user)
	if err != nil {
		log.Errorf("list today meals for [%s]: %s", user, err)
		http.Error(w, "failed to get meals", http.StatusInternalServerError)
		return
	}

	resp := ListResponse{
		Meals: make([]MealResponse, 0, len(meals)),
		Total: len(meals),
	}
	for _, m := range meals {
		resp.Meals = append(resp.Meals, NewMealResponse(m))
	}
	pkg.WriteJSONResponse(w, resp, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.delete")
	defer span.End()

	vars := mux.Vars(r)
	user := pkg.UserKey(vars["user"])
	id := vars["id"]
	if user == "" || id == "" {
		http.Error(w, "error, user or id empty", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, user, id); err != nil {
		if errors.Is(err, ErrMealNotFound) {
			http.Error(w, "error, meal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete meal %s for [%s]: %s", id, user, err)
		http.Error(w, "error, meal not deleted, internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, DeleteMealResponse{DeletedID: id}, http.StatusOK)
}
