package order

import (
	"errors"
	"fmt"

	"skydish-core/internal/status"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidContact    = errors.New("invalid recipient contact")
	ErrInvalidPayment    = errors.New("invalid payment method")
	ErrInvalidPayStatus  = errors.New("invalid payment status")
	ErrIllegalTransition = errors.New("illegal status transition")
)

// IllegalTransitionError carries both states so the caller can explain the
// decline precisely.
type IllegalTransitionError struct {
	From status.Canonical
	To   status.Canonical
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition %s -> %s", e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error { return ErrIllegalTransition }
