package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitaipro/internal/calculator"
	"github.com/2beens/fitaipro/internal/telemetry/metrics"
	"github.com/2beens/fitaipro/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=profile_test

type profileRepo interface {
	GetProfile(ctx context.Context, user string) (*UserProfile, error)
	SaveProfile(ctx context.Context, user string, p UserProfile) error
	GetGoals(ctx context.Context, user string) (Goals, error)
	SaveGoals(ctx context.Context, user string, g Goals) error
	HasCompletedQuiz(ctx context.Context, user string) (bool, error)
}

type Service struct {
	repo    profileRepo
	metrics *metrics.Manager
	now     func() time.Time
}

func NewService(repo profileRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:    repo,
		metrics: metricsManager,
		now:     time.Now,
	}
}

// CompleteQuiz estimates the daily calories for the answers and stores the
// resulting profile along with the derived goals.
// An estimate that is not positive cannot be used as a goal and is rejected as invalid input.
func (s *Service) CompleteQuiz(ctx context.Context, user string, answers Answers) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.completequiz")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := answers.Validate(); err != nil {
		return nil, err
	}

	estimated, err := calculator.EstimateDailyCalories(answers.QuizAnswers)
	if err != nil {
		return nil, err
	}
	if estimated <= 0 {
		return nil, &calculator.InvalidInputError{
			Field:  "answers",
			Reason: fmt.Sprintf("estimated calories not positive: %d", estimated),
		}
	}

	p := NewUserProfile(answers, estimated, s.now())
	span.SetAttributes(
		attribute.Int("estimated_calories", estimated),
		attribute.String("goal_type", string(p.GoalType)),
	)

	if err := s.repo.SaveProfile(ctx, user, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	if s.metrics != nil {
		s.metrics.CounterQuizzesCompleted.WithLabelValues(string(p.GoalType)).Inc()
		s.metrics.HistEstimatedCalories.Observe(float64(estimated))
	}
	log.Debugf("quiz completed for [%s]: %d kcal, %s, %s intensity", user, estimated, p.GoalType, p.Intensity)

	return &p, nil
}

func (s *Service) Profile(ctx context.Context, user string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.get")
	defer func() {
		tracing.EndSpan(span, err)
	}()
	return s.repo.GetProfile(ctx, user)
}

func (s *Service) HasCompletedQuiz(ctx context.Context, user string) (bool, error) {
	return s.repo.HasCompletedQuiz(ctx, user)
}

func (s *Service) Goals(ctx context.Context, user string) (_ Goals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.goals")
	defer func() {
		tracing.EndSpan(span, err)
	}()
	return s.repo.GetGoals(ctx, user)
}

func (s *Service) UpdateGoals(ctx context.Context, user string, goals Goals) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.goals.update")
	defer func() {
		tracing.EndSpan(span, err)
	}()

	if err := goals.Validate(); err != nil {
		return err
	}
	if err := s.repo.SaveGoals(ctx, user, goals); err != nil {
		return fmt.Errorf("update goals: %w", err)
	}
	return nil
}

// SetClock replaces the time source used for the quiz completion time.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}
