package internal

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/fitaipro/internal/config"
	"github.com/2beens/fitaipro/internal/dashboard"
	"github.com/2beens/fitaipro/internal/meals"
	"github.com/2beens/fitaipro/internal/profile"
	"github.com/2beens/fitaipro/internal/quiz"
	"github.com/2beens/fitaipro/internal/storage"
	"github.com/2beens/fitaipro/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigToml = `
[development]
host = "localhost"
port = 9000
storage_backend = "memory"
voice_listening_delay = "1ms"
checkout_url = "https://checkout.test/plan"
allowed_origins = ["*"]
`

func newTestServer(t *testing.T) (*Server, *mux.Router) {
	t.Helper()

	cfg, err := config.LoadFromString("development", testConfigToml)
	require.NoError(t, err)
	tips, err := dashboard.NewDefaultTipsManager()
	require.NoError(t, err)

	s := &Server{
		versionInfo:    "test-version",
		config:         cfg,
		store:          storage.NewMemoryStore(),
		tips:           tips,
		metricsManager: metrics.NewTestManager(),
		otelShutdown:   func() {},
	}
	r, err := s.routerSetup()
	require.NoError(t, err)
	return s, r
}

func doRequest(t *testing.T, r *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}
	req, err := http.NewRequest(method, path, &reqBody)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestServer_MiscRoutes(t *testing.T) {
	_, r := newTestServer(t)

	rr := doRequest(t, r, "GET", "/", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "I'm OK, thanks ;)", rr.Body.String())

	rr = doRequest(t, r, "GET", "/version", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "test-version", rr.Body.String())

	rr = doRequest(t, r, "GET", "/not-there", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestServer_Estimate(t *testing.T) {
	_, r := newTestServer(t)

	rr := doRequest(t, r, "GET", "/calculator/estimate?age=25&gender=male&weight=80&targetWeight=70&height=180&mainGoal=lose_weight", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp profile.EstimateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2100, resp.EstimatedCalories)

	rr = doRequest(t, r, "GET", "/calculator/estimate?age=0&gender=male&weight=80&targetWeight=70&height=180&mainGoal=lose_weight", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestServer_QuizMealsDashboard(t *testing.T) {
	s, r := newTestServer(t)

	// before the quiz the dashboard uses the default goals
	rr := doRequest(t, r, "GET", "/users/ana/dashboard", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var d dashboard.Dashboard
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &d))
	assert.False(t, d.CompletedQuiz)
	assert.Equal(t, profile.DefaultGoals(), d.Goals)
	assert.Equal(t, "Seu controle alimentar inteligente", d.Greeting)
	assert.Len(t, d.Tips, 3)

	rr = doRequest(t, r, "POST", "/quiz/sessions", quiz.StartRequest{User: "Ana"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var session quiz.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &session))

	answers := []quiz.AnswerRequest{
		{Step: quiz.StepWelcome},
		{Step: quiz.StepName, Value: "Ana"},
		{Step: quiz.StepAge, Value: "30"},
		{Step: quiz.StepGender, Value: "female"},
		{Step: quiz.StepWeight, Value: "60"},
		{Step: quiz.StepTargetWeight, Value: "60"},
		{Step: quiz.StepHeight, Value: "165"},
		{Step: quiz.StepDietRoutine, Value: "somewhat"},
		{Step: quiz.StepMealsPerDay, Value: "4-5"},
		{Step: quiz.StepMainDifficulty, Value: "no_results"},
		{Step: quiz.StepMainGoal, Value: "maintain"},
		{Step: quiz.StepAIInterest, Value: "maybe"},
	}
	for _, a := range answers {
		rr = doRequest(t, r, "POST", "/quiz/sessions/"+session.ID+"/answer", a)
		require.Equal(t, http.StatusOK, rr.Code, a.Step)
	}

	rr = doRequest(t, r, "GET", "/users/ana/profile", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var p profile.UserProfile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, 1950, p.EstimatedCalories)
	assert.True(t, p.CompletedQuiz)

	rr = doRequest(t, r, "POST", "/users/ana/meals/capture/manual", meals.CaptureRequest{
		Name:     "Omelete",
		Type:     meals.MealTypeBreakfast,
		Calories: 350,
		Protein:  24,
		Carbs:    4,
		Fat:      26,
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	var captured meals.MealResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &captured))

	rr = doRequest(t, r, "GET", "/users/ana/dashboard", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	d = dashboard.Dashboard{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &d))
	assert.True(t, d.CompletedQuiz)
	assert.Equal(t, "Olá, Ana!", d.Greeting)
	assert.Equal(t, 1950, d.Goals.CaloriesGoal)
	assert.Equal(t, 350, d.Stats.Consumed.Calories)
	assert.Equal(t, 1600, d.Stats.CaloriesRemaining)
	assert.Equal(t, 1, d.Stats.MealsCount)

	rr = doRequest(t, r, "DELETE", "/users/ana/meals/"+captured.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, r, "GET", "/users/ana/meals/today", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list meals.ListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Zero(t, list.Total)

	assert.Equal(t, float64(1), testutil.ToFloat64(s.metricsManager.CounterQuizzesStarted))
	assert.Equal(t, float64(1), testutil.ToFloat64(s.metricsManager.CounterMealsLogged.WithLabelValues("manual")))
	assert.Equal(t, float64(1), testutil.ToFloat64(s.metricsManager.CounterMealsDeleted))
}

func TestServer_ConnStateMetrics(t *testing.T) {
	s, _ := newTestServer(t)

	s.connStateMetrics(nil, http.StateNew)
	s.connStateMetrics(nil, http.StateNew)
	s.connStateMetrics(nil, http.StateActive)
	s.connStateMetrics(nil, http.StateClosed)

	assert.Equal(t, float64(1), testutil.ToFloat64(s.metricsManager.GaugeOpenConnections))
}
