package order

import (
	"time"

	"skydish-core/internal/status"
)

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash-on-delivery"
	PaymentOnline         PaymentMethod = "online"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type LineItem struct {
	ProductID string
	Name      string
	Price     int
	Quantity  int
}

type Recipient struct {
	Name    string
	Phone   string
	Address string
}

// Order is the persisted record. RawStatus keeps the producer vocabulary
// exactly as stored remotely; all gating and filtering goes through
// Canonical().
type Order struct {
	ID            string
	CustomerID    string
	SessionID     string
	Items         []LineItem
	Recipient     Recipient
	Subtotal      int
	CouponCode    *string
	Discount      int
	RawStatus     string
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
	MissionID     *string
}

// FinalCharge is always recomputed from subtotal and discount, floored at
// zero. It is intentionally not a stored field.
func (o *Order) FinalCharge() int {
	charge := o.Subtotal - o.Discount
	if charge < 0 {
		return 0
	}
	return charge
}

func (o *Order) Canonical() status.Canonical {
	return status.Normalize(o.RawStatus)
}

// rawStatusFor is the write-back value for each canonical target state.
var rawStatusFor = map[status.Canonical]string{
	status.CanonicalOrder:      "new",
	status.CanonicalProcessing: "preparing",
	status.CanonicalDelivery:   "delivering",
	status.CanonicalDone:       "delivered",
	status.CanonicalCancelled:  "cancelled",
}

// legalNext holds the forward transitions, one step at a time. Cancellation
// is only reachable before dispatch.
var legalNext = map[status.Canonical][]status.Canonical{
	status.CanonicalOrder:      {status.CanonicalProcessing, status.CanonicalCancelled},
	status.CanonicalProcessing: {status.CanonicalDelivery, status.CanonicalCancelled},
	status.CanonicalDelivery:   {status.CanonicalDone},
	status.CanonicalDone:       {},
	status.CanonicalCancelled:  {},
}

func transitionAllowed(from, to status.Canonical) bool {
	for _, next := range legalNext[from] {
		if next == to {
			return true
		}
	}
	return false
}
