package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitaipro/internal/storage"
	"github.com/2beens/fitaipro/internal/telemetry/tracing"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo struct {
	store storage.Store
}

func NewRepo(store storage.Store) *Repo {
	return &Repo{
		store: store,
	}
}

func (r *Repo) GetProfile(ctx context.Context, user string) (*UserProfile, error) {
	var p UserProfile
	if err := storage.GetJSON(ctx, r.store, storage.KindProfile, user, &p); err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// SaveProfile stores the profile and replaces the user's goals with the ones
// derived from its estimated calories.
func (r *Repo) SaveProfile(ctx context.Context, user string, p UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.save")
	defer func() {
		tracing.EndSpan(span, err)
	}()

	if err := storage.SetJSON(ctx, r.store, storage.KindProfile, user, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return r.SaveGoals(ctx, user, GoalsFor(p.EstimatedCalories))
}

func (r *Repo) GetGoals(ctx context.Context, user string) (Goals, error) {
	var g Goals
	if err := storage.GetJSON(ctx, r.store, storage.KindGoals, user, &g); err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			return DefaultGoals(), nil
		}
		return Goals{}, fmt.Errorf("get goals: %w", err)
	}
	return g, nil
}

func (r *Repo) SaveGoals(ctx context.Context, user string, g Goals) error {
	if err := storage.SetJSON(ctx, r.store, storage.KindGoals, user, g); err != nil {
		return fmt.Errorf("save goals: %w", err)
	}
	return nil
}

func (r *Repo) HasCompletedQuiz(ctx context.Context, user string) (bool, error) {
	p, err := r.GetProfile(ctx, user)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return false, nil
		}
		return false, err
	}
	return p.CompletedQuiz, nil
}
