package coupon

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat = errors.New("coupon code has invalid format")
	ErrNotFound      = errors.New("coupon not found")
	ErrBelowMinimum  = errors.New("subtotal below coupon minimum")
)

// BelowMinimumError is a business decline, not a validation failure: the code
// exists but the cart does not qualify yet. It carries the threshold so the
// caller can render a precise message.
type BelowMinimumError struct {
	Code        string
	MinSubtotal int
	Subtotal    int
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("coupon %s requires minimum subtotal %d, got %d",
		e.Code, e.MinSubtotal, e.Subtotal)
}

func (e *BelowMinimumError) Unwrap() error { return ErrBelowMinimum }
