package session

import "time"

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Session is a checkout-scoped marker, not an authorization token: it only
// lets the system detect an in-flight, un-acknowledged order and prompt the
// customer to close it explicitly. Lifecycle is open → closed, never back.
type Session struct {
	ID         string
	CustomerID string
	Status     Status
	OpenedAt   time.Time
	ClosedAt   *time.Time
}

func (s *Session) IsOpen() bool {
	return s.Status == StatusOpen
}
