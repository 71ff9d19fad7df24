package meals

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/fitaipro/internal/storage"
)

var (
	ErrMealNotFound = errors.New("meal not found")
	ErrInvalidMeal  = errors.New("invalid meal")
)

// Repo keeps a user's meal log as a single record, newest meal first.
// Reads may be served from a cache; Save and Delete rebuild the log from the
// backing store so a stale cached log is never written back.
type Repo struct {
	store  storage.Store
	direct storage.Store
	// serializes read-modify-write of the meal log records
	mutex sync.Mutex
}

func NewRepo(store storage.Store) *Repo {
	return &Repo{
		store:  store,
		direct: storage.Uncached(store),
	}
}

func (r *Repo) List(ctx context.Context, user string) ([]Meal, error) {
	return r.list(ctx, r.store, user)
}

func (r *Repo) list(ctx context.Context, store storage.Store, user string) ([]Meal, error) {
	var meals []Meal
	if err := storage.GetJSON(ctx, store, storage.KindMeals, user, &meals); err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			return []Meal{}, nil
		}
		return nil, fmt.Errorf("get meals: %w", err)
	}
	return meals, nil
}

func (r *Repo) Save(ctx context.Context, user string, meal Meal) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	meals, err := r.list(ctx, r.direct, user)
	if err != nil {
		return err
	}

	meals = append([]Meal{meal}, meals...)
	if err := storage.SetJSON(ctx, r.store, storage.KindMeals, user, meals); err != nil {
		return fmt.Errorf("save meals: %w", err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, user, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	meals, err := r.list(ctx, r.direct, user)
	if err != nil {
		return err
	}

	kept := make([]Meal, 0, len(meals))
	for _, m := range meals {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(meals) {
		return ErrMealNotFound
	}

	if err := storage.SetJSON(ctx, r.store, storage.KindMeals, user, kept); err != nil {
		return fmt.Errorf("save meals: %w", err)
	}
	return nil
}

func (r *Repo) ListForDay(ctx context.Context, user string, day time.Time) ([]Meal, error) {
	meals, err := r.List(ctx, user)
	if err != nil {
		return nil, err
	}

	dayMeals := make([]Meal, 0)
	for _, m := range meals {
		if m.SameDay(day) {
			dayMeals = append(dayMeals, m)
		}
	}
	return dayMeals, nil
}
