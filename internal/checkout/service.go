// Package checkout drives the submission flow: ensure an open session, place
// the order against it, and close the session once the customer acknowledges
// the completed order.
package checkout

import (
	"context"
	"fmt"

	"skydish-core/internal/logger"
	"skydish-core/internal/order"
	"skydish-core/internal/session"

	"go.uber.org/zap"
)

type SubmitParams struct {
	CustomerID    string
	Items         []order.LineItem
	Recipient     order.Recipient
	CouponCode    *string
	PaymentMethod order.PaymentMethod
}

type Service interface {
	// Submit runs the checkout: session first, order second. If the session
	// cannot be resolved the order is never created.
	Submit(ctx context.Context, params SubmitParams) (*order.Order, *session.Session, error)

	// Acknowledge closes the checkout session after the customer confirms
	// the completed order.
	Acknowledge(ctx context.Context, sessionID string) (*session.Session, error)
}

type service struct {
	sessions session.Service
	orders   order.Service
}

func NewService(sessions session.Service, orders order.Service) Service {
	return &service{sessions: sessions, orders: orders}
}

func (s *service) Submit(ctx context.Context, params SubmitParams) (*order.Order, *session.Session, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Submit"),
		zap.String("customer_id", params.CustomerID),
	)

	sess, err := s.sessions.EnsureOpen(ctx, params.CustomerID)
	if err != nil {
		return nil, nil, fmt.Errorf("checkout: %w", err)
	}

	placed, err := s.orders.Place(ctx, order.PlaceParams{
		CustomerID:    params.CustomerID,
		SessionID:     sess.ID,
		Items:         params.Items,
		Recipient:     params.Recipient,
		CouponCode:    params.CouponCode,
		PaymentMethod: params.PaymentMethod,
	})
	if err != nil {
		return nil, sess, err
	}

	log.Info("checkout submitted",
		zap.String("session_id", sess.ID),
		zap.String("order_id", placed.ID),
	)

	return placed, sess, nil
}

func (s *service) Acknowledge(ctx context.Context, sessionID string) (*session.Session, error) {
	return s.sessions.Close(ctx, sessionID)
}
