package session

import (
	"context"
	"time"
)

// Repository is the narrow read/write contract against the remote data
// service. The remote client is the one concrete implementation; tests swap
// in mocks.
type Repository interface {
	// GetByID returns ErrNotFound when the session does not exist.
	GetByID(ctx context.Context, id string) (*Session, error)

	// GetLatestOpen returns the customer's open session, or ErrNotFound when
	// there is none.
	GetLatestOpen(ctx context.Context, customerID string) (*Session, error)

	Create(ctx context.Context, s *Session) error

	// Close patches the session status to closed, stamping closedAt.
	Close(ctx context.Context, id string, closedAt time.Time) (*Session, error)
}
