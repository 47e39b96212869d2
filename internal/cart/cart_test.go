package cart

import (
	"testing"

	"skydish-core/internal/coupon"

	"github.com/stretchr/testify/assert"
)

func items(prices ...int) []Item {
	out := make([]Item, 0, len(prices))
	for i, p := range prices {
		out = append(out, Item{ProductID: string(rune('a' + i)), Price: p, Quantity: 1})
	}
	return out
}

func TestApplyCoupon(t *testing.T) {
	q, err := ApplyCoupon(items(200000, 200000), "save50k")
	assert.NoError(t, err)
	assert.Equal(t, 400000, q.Subtotal)
	assert.Equal(t, 50000, q.Discount)
	assert.Equal(t, 350000, q.Total())
	assert.Equal(t, "SAVE50K", *q.AppliedCode)
}

func TestApplyCoupon_SurfacesErrors(t *testing.T) {
	_, err := ApplyCoupon(items(100000), "FREE SHIP")
	assert.ErrorIs(t, err, coupon.ErrInvalidFormat)

	_, err = ApplyCoupon(items(100000), "SAVE50K")
	assert.ErrorIs(t, err, coupon.ErrBelowMinimum)
}

func TestReprice_KeepsEligibleCode(t *testing.T) {
	code := "SAVE50K"
	q := Reprice(items(200000, 200000), &code)
	assert.Equal(t, 50000, q.Discount)
	assert.NotNil(t, q.AppliedCode)
	assert.Nil(t, q.Declined)
}

func TestReprice_ClearsIneligibleCode(t *testing.T) {
	code := "SAVE50K"

	// Cart shrank below the coupon minimum: code must be cleared, not kept
	// with a stale discount.
	q := Reprice(items(200000), &code)
	assert.Nil(t, q.AppliedCode)
	assert.Equal(t, 0, q.Discount)
	assert.Equal(t, 200000, q.Total())
	assert.ErrorIs(t, q.Declined, coupon.ErrBelowMinimum)
}

func TestReprice_NoCode(t *testing.T) {
	q := Reprice(items(75000), nil)
	assert.Equal(t, 75000, q.Subtotal)
	assert.Nil(t, q.AppliedCode)
	assert.Nil(t, q.Declined)
}
