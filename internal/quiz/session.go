package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitaipro/internal/profile"
	"github.com/2beens/fitaipro/internal/storage"
)

var ErrSessionNotFound = errors.New("quiz session not found")

type Session struct {
	ID   string `json:"id"`
	User string `json:"user"`
	Flow
	Profile   *profile.UserProfile `json:"profile,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

type SessionsRepo struct {
	store storage.Store
}

// NewSessionsRepo bypasses any record cache: every answer is a
// read-modify-write of the session.
func NewSessionsRepo(store storage.Store) *SessionsRepo {
	return &SessionsRepo{
		store: storage.Uncached(store),
	}
}

func (r *SessionsRepo) Get(ctx context.Context, id string) (*Session, error) {
	var s Session
	if err := storage.GetJSON(ctx, r.store, storage.KindQuizSession, id, &s); err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get quiz session: %w", err)
	}
	return &s, nil
}

func (r *SessionsRepo) Save(ctx context.Context, s *Session) error {
	if err := storage.SetJSON(ctx, r.store, storage.KindQuizSession, s.ID, s); err != nil {
		return fmt.Errorf("save quiz session: %w", err)
	}
	return nil
}
