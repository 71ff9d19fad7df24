package quiz

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/fitaipro/internal/profile"
	"github.com/2beens/fitaipro/internal/telemetry/metrics"
	"github.com/2beens/fitaipro/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=quiz_test

type sessionsRepo interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
}

type quizCompleter interface {
	CompleteQuiz(ctx context.Context, user string, answers profile.Answers) (*profile.UserProfile, error)
}

type Service struct {
	sessions    sessionsRepo
	completer   quizCompleter
	checkoutURL string
	metrics     *metrics.Manager
	now         func() time.Time
	// serializes read-modify-write of sessions
	mutex sync.Mutex
}

func NewService(
	sessions sessionsRepo,
	completer quizCompleter,
	checkoutURL string,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		sessions:    sessions,
		completer:   completer,
		checkoutURL: checkoutURL,
		metrics:     metricsManager,
		now:         time.Now,
	}
}

func (s *Service) Start(ctx context.Context, user string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.quiz.start")
	defer func() {
		tracing.EndSpan(span, err)
	}()

	now := s.now()
	session := &Session{
		ID:        uuid.NewString(),
		User:      user,
		Flow:      NewFlow(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.CounterQuizzesStarted.Inc()
	}
	return session, nil
}

func (s *Service) Get(ctx context.Context, id string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.quiz.get")
	defer func() {
		tracing.EndSpan(span, err)
	}()
	return s.sessions.Get(ctx, id)
}

// Answer records the answer to the session's current step. Answering the last
// question completes the quiz: the profile is computed and stored, and the
// session moves to the result step. If completing fails the session is left
// unchanged, so the last answer can be sent again.
func (s *Service) Answer(ctx context.Context, id string, step Step, raw string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.quiz.answer")
	defer func() {
		tracing.EndSpan(span, err)
	}()
	span.SetAttributes(attribute.String("step", string(step)))

	s.mutex.Lock()
	defer s.mutex.Unlock()

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := session.Answer(step, raw); err != nil {
		return nil, err
	}

	if session.Answered() {
		p, err := s.completer.CompleteQuiz(ctx, session.User, session.Answers)
		if err != nil {
			return nil, fmt.Errorf("complete quiz: %w", err)
		}
		if err := session.Finish(); err != nil {
			return nil, err
		}
		session.Profile = p
		log.Debugf("quiz session %s finished for [%s]", session.ID, session.User)
	}

	session.UpdatedAt = s.now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Unlock moves a finished session to the unlock step and returns the checkout URL
// the user is sent to.
func (s *Service) Unlock(ctx context.Context, id string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.quiz.unlock")
	defer func() {
		tracing.EndSpan(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return "", err
	}

	if err := session.Unlock(); err != nil {
		return "", err
	}
	session.UpdatedAt = s.now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return "", err
	}

	if s.metrics != nil {
		s.metrics.CounterPlanUnlocks.Inc()
	}
	return s.checkoutURL, nil
}

// SetClock replaces the time source used for session timestamps.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}
