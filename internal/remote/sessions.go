package remote

import (
	"context"
	"time"

	"skydish-core/internal/session"

	"github.com/go-resty/resty/v2"
)

// SessionsClient reads and writes checkout sessions.
type SessionsClient struct {
	rest *resty.Client
}

var _ session.Repository = (*SessionsClient)(nil)

type sessionDTO struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customerId"`
	Status     string     `json:"status"`
	OpenedAt   time.Time  `json:"openedAt"`
	ClosedAt   *time.Time `json:"closedAt,omitempty"`
}

func (d *sessionDTO) toModel() *session.Session {
	return &session.Session{
		ID:         d.ID,
		CustomerID: d.CustomerID,
		Status:     session.Status(d.Status),
		OpenedAt:   d.OpenedAt,
		ClosedAt:   d.ClosedAt,
	}
}

func sessionToDTO(s *session.Session) *sessionDTO {
	return &sessionDTO{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		Status:     string(s.Status),
		OpenedAt:   s.OpenedAt,
		ClosedAt:   s.ClosedAt,
	}
}

func (c *SessionsClient) GetByID(ctx context.Context, id string) (*session.Session, error) {
	var dto sessionDTO
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&dto).
		Get("/sessions/" + id)

	if err := checkResponse(resp, err, session.ErrNotFound); err != nil {
		return nil, err
	}
	return dto.toModel(), nil
}

func (c *SessionsClient) GetLatestOpen(ctx context.Context, customerID string) (*session.Session, error) {
	var dtos []sessionDTO
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"customerId": customerID,
			"status":     string(session.StatusOpen),
			"sortBy":     "openedAt",
			"order":      "desc",
			"limit":      "1",
		}).
		SetResult(&dtos).
		Get("/sessions")

	if err := checkResponse(resp, err, session.ErrNotFound); err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, session.ErrNotFound
	}
	return dtos[0].toModel(), nil
}

func (c *SessionsClient) Create(ctx context.Context, s *session.Session) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(sessionToDTO(s)).
		Post("/sessions")

	return checkResponse(resp, err, session.ErrNotFound)
}

func (c *SessionsClient) Close(ctx context.Context, id string, closedAt time.Time) (*session.Session, error) {
	var dto sessionDTO
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"status":   string(session.StatusClosed),
			"closedAt": closedAt,
		}).
		SetResult(&dto).
		Put("/sessions/" + id)

	if err := checkResponse(resp, err, session.ErrNotFound); err != nil {
		return nil, err
	}
	return dto.toModel(), nil
}
