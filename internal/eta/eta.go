package eta

import (
	"fmt"
	"math/rand"
	"time"

	"skydish-core/internal/logger"

	"go.uber.org/zap"
)

// Mode is the delivery vehicle the estimate is for.
type Mode string

const (
	ModeDrone  Mode = "drone"
	ModeGround Mode = "ground"
)

// Estimate is a synthetic arrival estimate. It is a display placeholder, not
// a routing model: the non-jittered inputs are deterministic and the clamps
// are monotonic, which is the whole testable contract.
type Estimate struct {
	Minutes   int
	WindowMin int
	WindowMax int
	ArrivalAt time.Time
}

type modeProfile struct {
	base     int
	peak     int
	jitter   int
	floorMin int
	ceilMin  int
}

var profiles = map[Mode]modeProfile{
	ModeDrone:  {base: 24, peak: 5, jitter: 2, floorMin: 18, ceilMin: 90},
	ModeGround: {base: 45, peak: 10, jitter: 4, floorMin: 30, ceilMin: 90},
}

// localZone is the storefront's operating timezone for peak-hour windows.
var localZone = loadLocalZone()

func loadLocalZone() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		logger.L().Warn("failed to load local zone, peak windows use UTC", zap.Error(err))
		return time.UTC
	}
	return loc
}

// Compute produces the synthetic ETA for an order created at createdAt.
// Unknown modes fall back to the ground profile, the slower of the two.
func Compute(mode Mode, itemCount int, createdAt time.Time) Estimate {
	p, ok := profiles[mode]
	if !ok {
		p = profiles[ModeGround]
	}

	minutes := base(mode, itemCount, createdAt)

	// Bounded jitter for display realism, then clamp. Clamping after jitter
	// keeps the floor/ceiling a hard guarantee.
	minutes += rand.Intn(2*p.jitter+1) - p.jitter
	minutes = clamp(minutes, p.floorMin, p.ceilMin)

	return Estimate{
		Minutes:   minutes,
		WindowMin: clamp(minutes-5, p.floorMin, p.ceilMin),
		WindowMax: clamp(minutes+5, p.floorMin, p.ceilMin),
		ArrivalAt: createdAt.Add(time.Duration(minutes) * time.Minute),
	}
}

// base is the deterministic part: mode baseline, +1 minute per 2 items beyond
// the first, + peak surcharge inside the local lunch and dinner windows.
func base(mode Mode, itemCount int, createdAt time.Time) int {
	p, ok := profiles[mode]
	if !ok {
		p = profiles[ModeGround]
	}

	minutes := p.base
	if itemCount > 1 {
		minutes += (itemCount - 1) / 2
	}
	if inPeakWindow(createdAt.In(localZone)) {
		minutes += p.peak
	}
	return minutes
}

// Peak windows: 11:00-13:00 and 17:00-20:00 local time.
func inPeakWindow(t time.Time) bool {
	h := t.Hour()
	return (h >= 11 && h < 13) || (h >= 17 && h < 20)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FormatCountdown renders the remaining time as MM:SS. Negative remainders
// clamp to "00:00" so a passed ETA never counts up.
func FormatCountdown(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	total := int(remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
