package meals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitaipro/internal/telemetry/metrics"
	"github.com/2beens/fitaipro/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=meals_test

var ErrUnknownCaptureMethod = errors.New("unknown capture method")

type mealsRepo interface {
	List(ctx context.Context, user string) ([]Meal, error)
	Save(ctx context.Context, user string, meal Meal) error
	Delete(ctx context.Context, user, id string) error
	ListForDay(ctx context.Context, user string, day time.Time) ([]Meal, error)
}

type Service struct {
	repo    mealsRepo
	sources map[CaptureMethod]CaptureSource
	metrics *metrics.Manager
	now     func() time.Time
}

func NewService(repo mealsRepo, metricsManager *metrics.Manager, sources ...CaptureSource) *Service {
	s := &Service{
		repo:    repo,
		sources: make(map[CaptureMethod]CaptureSource, len(sources)),
		metrics: metricsManager,
		now:     time.Now,
	}
	for _, source := range sources {
		s.sources[source.Method()] = source
	}
	return s
}

// Capture runs the source of the given method and logs the resulting meal.
func (s *Service) Capture(ctx context.Context, user string, method CaptureMethod, req CaptureRequest) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.meals.capture")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("method", method.String()))

	source, ok := s.sources[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCaptureMethod, method)
	}

	meal, err := source.Capture(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("capture %s: %w", method, err)
	}
	meal.ID = uuid.NewString()
	meal.Timestamp = s.now()
	meal.Method = method

	if err := s.repo.Save(ctx, user, *meal); err != nil {
		return nil, fmt.Errorf("save meal: %w", err)
	}

	if s.metrics != nil {
		s.metrics.CounterMealsLogged.WithLabelValues(method.String()).Inc()
	}
	return meal, nil
}

func (s *Service) Delete(ctx context.Context, user, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.meals.delete")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := s.repo.Delete(ctx, user, id); err != nil {
		return fmt.Errorf("delete meal %s: %w", id, err)
	}
	if s.metrics != nil {
		s.metrics.CounterMealsDeleted.Inc()
	}
	return nil
}

// Today lists the meals logged on the current calendar day of now's location.
func (s *Service) Today(ctx context.Context, user string) (_ []Meal, err error) {
	return s.ForDay(ctx, user, s.now())
}

func (s *Service) ForDay(ctx context.Context, user string, day time.Time) (_ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.meals.forday")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	meals, err := s.repo.ListForDay(ctx, user, day)
	if err != nil {
		return nil, fmt.Errorf("list meals for day: %w", err)
	}
	return meals, nil
}

// SetClock replaces the time source used for meal timestamps and "today".
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}
