package tracking

import (
	"time"

	"skydish-core/internal/order"
	"skydish-core/internal/status"
)

// Mission is the fleet-side record of one delivery run. Created and advanced
// by the fulfillment side; read-only here.
type Mission struct {
	ID         string
	OrderID    string
	DroneID    string
	Status     string
	EtaMinutes int
	StartedAt  time.Time
}

func (m *Mission) Canonical() status.Canonical {
	return status.NormalizeMission(m.Status)
}

// TelemetrySample is one reading of the append-only telemetry stream. Only
// the most recent sample per mission is ever consumed. Older records predate
// mission ids and are keyed by drone id only.
type TelemetrySample struct {
	MissionID  string
	DroneID    string
	Latitude   float64
	Longitude  float64
	Speed      float64
	Battery    int
	CapturedAt time.Time
}

// View is the reconciled read model joining an order to its mission and the
// latest telemetry sample. Absent mission or telemetry are valid degraded
// states, not errors.
type View struct {
	Order         *order.Order
	Mission       *Mission
	Telemetry     *TelemetrySample
	OrderStatus   status.Canonical
	MissionStatus status.Canonical
	HasMission    bool
}

// Trackable gates the live-tracking action. Both conditions are required: a
// mission may exist before the order is out for delivery, and the status may
// say delivery before the mission record has propagated.
func (v *View) Trackable() bool {
	return v.OrderStatus == status.CanonicalDelivery && v.HasMission
}

// TelemetryStale reports whether the latest sample is older than the given
// silence interval. The cutoff itself is a presentation tunable; the
// aggregator only surfaces the capture timestamp.
func (v *View) TelemetryStale(silence time.Duration, now time.Time) bool {
	if v.Telemetry == nil {
		return false
	}
	return now.Sub(v.Telemetry.CapturedAt) > silence
}
