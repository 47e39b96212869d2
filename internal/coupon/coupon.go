package coupon

import (
	"math"
	"regexp"
	"strings"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// Canonicalize trims and uppercases a user-typed code. It does not validate.
func Canonicalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup returns the catalog entry for a canonical code.
func Lookup(code string) (Coupon, bool) {
	c, ok := catalog[Canonicalize(code)]
	return c, ok
}

// Apply resolves a code against the catalog and computes the discount for the
// given subtotal. Pure and idempotent: same inputs, same discount. The caller
// persists the result alongside the order; Apply never mutates anything.
//
//  1. canonicalize, reject anything outside [A-Z0-9]
//  2. catalog lookup
//  3. minimum-subtotal gate (a decline, not an exception)
//  4. compute by kind
//  5. clamp into [0, subtotal]
func Apply(code string, subtotal int) (Result, error) {
	canon := Canonicalize(code)
	if !codePattern.MatchString(canon) {
		return Result{}, ErrInvalidFormat
	}

	c, ok := catalog[canon]
	if !ok {
		return Result{}, ErrNotFound
	}

	if subtotal < c.MinSubtotal {
		return Result{Coupon: c}, &BelowMinimumError{
			Code:        c.Code,
			MinSubtotal: c.MinSubtotal,
			Subtotal:    subtotal,
		}
	}

	var discount int
	switch c.Kind {
	case KindPercent:
		discount = int(math.Round(float64(subtotal) * float64(c.Value) / 100))
	case KindFixedAmount:
		discount = c.Value
	case KindFreeShipping:
		// Shipping is not priced separately here; the code is still a
		// distinct applied state for display.
		discount = 0
	}

	if discount < 0 {
		discount = 0
	}
	if discount > subtotal {
		discount = subtotal
	}

	return Result{Coupon: c, Discount: discount}, nil
}
