package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitaipro/internal/meals"
	"github.com/2beens/fitaipro/internal/profile"
	"github.com/2beens/fitaipro/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=dashboard_test

const defaultGreeting = "Seu controle alimentar inteligente"

type profileProvider interface {
	Profile(ctx context.Context, user string) (*profile.UserProfile, error)
	Goals(ctx context.Context, user string) (profile.Goals, error)
}

type mealsProvider interface {
	ForDay(ctx context.Context, user string, day time.Time) ([]meals.Meal, error)
}

type Dashboard struct {
	Date          string        `json:"date"`
	UserName      string        `json:"userName,omitempty"`
	Greeting      string        `json:"greeting"`
	CompletedQuiz bool          `json:"completedQuiz"`
	Goals         profile.Goals `json:"goals"`
	Stats         Stats         `json:"stats"`
	Meals         []meals.Meal  `json:"meals"`
	Tips          []string      `json:"tips"`
}

type Service struct {
	profiles profileProvider
	meals    mealsProvider
	tips     *TipsManager
}

func NewService(profiles profileProvider, mealsProvider mealsProvider, tips *TipsManager) *Service {
	return &Service{
		profiles: profiles,
		meals:    mealsProvider,
		tips:     tips,
	}
}

// Today assembles the dashboard of the calendar day of now, in now's location.
// Users without a profile get the default goals and no name.
func (s *Service) Today(ctx context.Context, user string, now time.Time) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.today")
	defer func() {
		tracing.EndSpan(span, err)
	}()

	d := &Dashboard{
		Date:     now.Format(time.DateOnly),
		Greeting: defaultGreeting,
		Tips:     s.tips.TipsFor(now),
	}

	p, err := s.profiles.Profile(ctx, user)
	switch {
	case err == nil:
		d.UserName = p.Name
		d.CompletedQuiz = p.CompletedQuiz
		if p.Name != "" {
			d.Greeting = fmt.Sprintf("Olá, %s!", p.Name)
		}
	case errors.Is(err, profile.ErrProfileNotFound):
	default:
		return nil, fmt.Errorf("get profile: %w", err)
	}

	d.Goals, err = s.profiles.Goals(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("get goals: %w", err)
	}

	d.Meals, err = s.meals.ForDay(ctx, user, now)
	if err != nil {
		return nil, fmt.Errorf("get meals: %w", err)
	}

	d.Stats = ComputeStats(d.Meals, d.Goals)
	return d, nil
}
