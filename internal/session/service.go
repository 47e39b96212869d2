package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skydish-core/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service enforces the at-most-one-open-checkout-session rule.
type Service interface {
	// EnsureOpen returns the customer's open session, creating one only when
	// none exists. Idempotent: two calls in a row return the same session.
	EnsureOpen(ctx context.Context, customerID string) (*Session, error)

	// Close transitions open → closed. Closing an already-closed session is
	// a no-op returning the existing record, not an error.
	Close(ctx context.Context, sessionID string) (*Session, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) EnsureOpen(ctx context.Context, customerID string) (*Session, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "EnsureOpen"),
		zap.String("customer_id", customerID),
	)

	// 1. Reuse the open session if there is one.
	existing, err := s.repo.GetLatestOpen(ctx, customerID)
	if err == nil {
		log.Debug("reusing open session", zap.String("session_id", existing.ID))
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		// Checkout must abort here: an order may never be created without a
		// resolvable session reference.
		log.Error("failed to look up open session", zap.Error(err))
		return nil, fmt.Errorf("ensure open session: %w", err)
	}

	// 2. None open: create one. This read-then-create is best effort; two
	// racing checkouts can both create a session. The remote service offers
	// no conditional write, so the rule holds per caller, not globally.
	sess := &Session{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Status:     StatusOpen,
		OpenedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		log.Error("failed to create session", zap.Error(err))
		return nil, fmt.Errorf("create session: %w", err)
	}

	log.Info("checkout session opened", zap.String("session_id", sess.ID))
	return sess, nil
}

func (s *service) Close(ctx context.Context, sessionID string) (*Session, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Close"),
		zap.String("session_id", sessionID),
	)

	sess, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Terminal state: closing twice returns the record unchanged.
	if sess.Status == StatusClosed {
		log.Debug("session already closed")
		return sess, nil
	}

	closed, err := s.repo.Close(ctx, sessionID, s.now())
	if err != nil {
		log.Error("failed to close session", zap.Error(err))
		return nil, fmt.Errorf("close session: %w", err)
	}

	log.Info("checkout session closed")
	return closed, nil
}
