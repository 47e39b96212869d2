package eta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Off-peak in Asia/Jakarta (10:00 WIB).
var offPeak = time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)

// Lunch peak in Asia/Jakarta (12:00 WIB).
var lunchPeak = time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC)

func TestBase_Deterministic(t *testing.T) {
	assert.Equal(t, 24, base(ModeDrone, 1, offPeak))
	assert.Equal(t, 45, base(ModeGround, 1, offPeak))

	// +1 minute per 2 items beyond the first.
	assert.Equal(t, 24, base(ModeDrone, 2, offPeak))
	assert.Equal(t, 25, base(ModeDrone, 3, offPeak))
	assert.Equal(t, 26, base(ModeDrone, 5, offPeak))

	// Peak surcharge.
	assert.Equal(t, 29, base(ModeDrone, 1, lunchPeak))
	assert.Equal(t, 55, base(ModeGround, 1, lunchPeak))
}

func TestCompute_DroneStaysInBounds(t *testing.T) {
	for i := 0; i < 500; i++ {
		est := Compute(ModeDrone, 1, offPeak)
		assert.GreaterOrEqual(t, est.Minutes, 18)
		assert.LessOrEqual(t, est.Minutes, 90)
		assert.False(t, est.ArrivalAt.Before(offPeak))
	}
}

func TestCompute_GroundStaysInBounds(t *testing.T) {
	for i := 0; i < 500; i++ {
		est := Compute(ModeGround, 12, lunchPeak)
		assert.GreaterOrEqual(t, est.Minutes, 30)
		assert.LessOrEqual(t, est.Minutes, 90)
	}
}

func TestCompute_WindowAroundEstimate(t *testing.T) {
	est := Compute(ModeDrone, 2, offPeak)
	assert.LessOrEqual(t, est.WindowMin, est.Minutes)
	assert.GreaterOrEqual(t, est.WindowMax, est.Minutes)
	assert.GreaterOrEqual(t, est.WindowMin, 18)
	assert.LessOrEqual(t, est.WindowMax, 90)
}

func TestCompute_ArrivalOffsetMatchesMinutes(t *testing.T) {
	est := Compute(ModeDrone, 1, offPeak)
	assert.Equal(t, offPeak.Add(time.Duration(est.Minutes)*time.Minute), est.ArrivalAt)
}

func TestCompute_UnknownModeUsesGroundProfile(t *testing.T) {
	est := Compute(Mode("bicycle"), 1, offPeak)
	assert.GreaterOrEqual(t, est.Minutes, 30)
	assert.LessOrEqual(t, est.Minutes, 90)
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "00:00", FormatCountdown(-500*time.Millisecond))
	assert.Equal(t, "00:00", FormatCountdown(0))
	assert.Equal(t, "01:05", FormatCountdown(65000*time.Millisecond))
	assert.Equal(t, "00:59", FormatCountdown(59*time.Second))
	assert.Equal(t, "25:00", FormatCountdown(25*time.Minute))
}
