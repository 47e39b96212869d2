// Package cart prices the in-progress cart before checkout submission. It is
// the only place a coupon gets applied or re-applied; a placed order's charge
// is immutable history.
package cart

import (
	"skydish-core/internal/coupon"
)

type Item struct {
	ProductID string
	Name      string
	Price     int
	Quantity  int
}

// Quote is the current cart pricing. AppliedCode is nil when no code is
// applied or when a previously applied code became ineligible.
type Quote struct {
	Subtotal    int
	Discount    int
	AppliedCode *string
	Coupon      *coupon.Coupon

	// Declined explains why a previously applied code was cleared during
	// re-evaluation; nil otherwise.
	Declined error
}

func (q Quote) Total() int {
	total := q.Subtotal - q.Discount
	if total < 0 {
		return 0
	}
	return total
}

func Subtotal(items []Item) int {
	sum := 0
	for _, item := range items {
		sum += item.Price * item.Quantity
	}
	return sum
}

// ApplyCoupon applies a user-typed code to the cart. All coupon errors
// surface to the caller so the input can be corrected or the decline shown.
func ApplyCoupon(items []Item, code string) (Quote, error) {
	subtotal := Subtotal(items)

	res, err := coupon.Apply(code, subtotal)
	if err != nil {
		return Quote{Subtotal: subtotal}, err
	}

	canon := res.Coupon.Code
	return Quote{
		Subtotal:    subtotal,
		Discount:    res.Discount,
		AppliedCode: &canon,
		Coupon:      &res.Coupon,
	}, nil
}

// Reprice re-evaluates the cart after its contents changed. A code that is
// no longer eligible is cleared, never silently kept with a stale discount.
func Reprice(items []Item, appliedCode *string) Quote {
	subtotal := Subtotal(items)
	if appliedCode == nil {
		return Quote{Subtotal: subtotal}
	}

	res, err := coupon.Apply(*appliedCode, subtotal)
	if err != nil {
		// The code was valid when first applied; any failure now, usually
		// the subtotal dropping below the minimum, clears it.
		return Quote{Subtotal: subtotal, Declined: err}
	}

	canon := res.Coupon.Code
	return Quote{
		Subtotal:    subtotal,
		Discount:    res.Discount,
		AppliedCode: &canon,
		Coupon:      &res.Coupon,
	}
}
