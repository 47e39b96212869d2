package status

import "strings"

// Canonical is the normalized fulfillment state every filter, sort and
// transition check runs on. Raw producer strings never leave this package.
type Canonical string

const (
	CanonicalOrder      Canonical = "order"
	CanonicalProcessing Canonical = "processing"
	CanonicalDelivery   Canonical = "delivery"
	CanonicalDone       Canonical = "done"
	CanonicalCancelled  Canonical = "cancelled"
)

// orderVocabulary maps every raw order-status value the upstream producers
// emit onto the canonical set. Lookup table, not a conditional chain, so the
// mapping stays exhaustively testable.
var orderVocabulary = map[string]Canonical{
	"new":       CanonicalOrder,
	"pending":   CanonicalOrder,
	"confirmed": CanonicalOrder,

	"accepted":  CanonicalProcessing,
	"preparing": CanonicalProcessing,
	"ready":     CanonicalProcessing,

	"delivering": CanonicalDelivery,

	"delivered": CanonicalDone,
	"completed": CanonicalDone,
	"done":      CanonicalDone,

	"cancelled": CanonicalCancelled,
	"canceled":  CanonicalCancelled,
}

// missionVocabulary covers the richer fleet-side mission states.
var missionVocabulary = map[string]Canonical{
	"queued":    CanonicalProcessing,
	"preflight": CanonicalProcessing,

	"takeoff":    CanonicalDelivery,
	"enroute":    CanonicalDelivery,
	"descending": CanonicalDelivery,
	"dropoff":    CanonicalDelivery,
	"returning":  CanonicalDelivery,

	"landed": CanonicalDone,

	"failed":    CanonicalCancelled,
	"cancelled": CanonicalCancelled,
}

// Normalize maps a raw order-status string onto the canonical set. Total:
// unrecognized or empty input falls back to CanonicalOrder, the safe
// "just placed" state.
func Normalize(raw string) Canonical {
	if c, ok := orderVocabulary[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c
	}
	return CanonicalOrder
}

// NormalizeMission maps a raw mission-status string onto the canonical set,
// with the same total fallback as Normalize.
func NormalizeMission(raw string) Canonical {
	if c, ok := missionVocabulary[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c
	}
	return CanonicalOrder
}

// All lists the canonical states in lifecycle order.
func All() []Canonical {
	return []Canonical{
		CanonicalOrder,
		CanonicalProcessing,
		CanonicalDelivery,
		CanonicalDone,
		CanonicalCancelled,
	}
}
