package profile

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitaipro/internal/calculator"
	"github.com/2beens/fitaipro/internal/telemetry/tracing"
	"github.com/2beens/fitaipro/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type EstimateResponse struct {
	EstimatedCalories int                  `json:"estimatedCalories"`
	WeightDifference  float64              `json:"weightDifference"`
	GoalType          calculator.GoalType  `json:"goalType"`
	Intensity         calculator.Intensity `json:"intensity"`
	Goals             Goals                `json:"goals"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleEstimate previews the estimate for answers passed as query params,
// without storing anything.
func (h *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.calculator.estimate")
	defer span.End()

	answers, err := quizAnswersFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	estimated, err := calculator.EstimateDailyCalories(answers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pkg.WriteJSONResponse(w, EstimateResponse{
		EstimatedCalories: estimated,
		WeightDifference:  answers.WeightDifference(),
		GoalType:          calculator.DetermineGoalType(answers.Weight, answers.TargetWeight),
		Intensity:         calculator.CalculateIntensity(answers.Weight, answers.TargetWeight),
		Goals:             GoalsFor(estimated),
	}, http.StatusOK)
}

func quizAnswersFromQuery(r *http.Request) (calculator.QuizAnswers, error) {
	q := r.URL.Query()
	answers := calculator.QuizAnswers{
		Gender:   calculator.Gender(q.Get("gender")),
		MainGoal: calculator.MainGoal(q.Get("mainGoal")),
	}

	age, err := strconv.Atoi(q.Get("age"))
	if err != nil {
		return answers, &calculator.InvalidInputError{Field: "age", Reason: "not a number"}
	}
	answers.Age = age

	floats := []struct {
		name string
		dst  *float64
	}{
		{"weight", &answers.Weight},
		{"targetWeight", &answers.TargetWeight},
		{"height", &answers.Height},
	}
	for _, f := range floats {
		v, err := strconv.ParseFloat(q.Get(f.name), 64)
		if err != nil {
			return answers, &calculator.InvalidInputError{Field: f.name, Reason: "not a number"}
		}
		*f.dst = v
	}

	return answers, nil
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	user := pkg.UserKey(mux.Vars(r)["user"])
	if user == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	p, err := h.service.Profile(ctx, user)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "error, profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile for [%s]: %s", user, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, p, http.StatusOK)
}

func (h *Handler) HandleGetGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.get")
	defer span.End()

	user := pkg.UserKey(mux.Vars(r)["user"])
	if user == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	goals, err := h.service.Goals(ctx, user)
	if err != nil {
		log.Errorf("get goals for [%s]: %s", user, err)
		http.Error(w, "failed to get goals", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, goals, http.StatusOK)
}

func (h *Handler) HandleUpdateGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.update")
	defer span.End()

	user := pkg.UserKey(mux.Vars(r)["user"])
	if user == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}

	var goals Goals
	if err := json.NewDecoder(r.Body).Decode(&goals); err != nil {
		log.Tracef("update goals, unmarshal json params: %s", err)
		http.Error(w, "update goals failed, invalid body", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateGoals(ctx, user, goals); err != nil {
		if errors.Is(err, calculator.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("update goals for [%s]: %s", user, err)
		http.Error(w, "failed to update goals", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, goals, http.StatusOK)
}
