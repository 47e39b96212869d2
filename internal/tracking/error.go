package tracking

import "errors"

var (
	ErrMissionNotFound   = errors.New("mission not found")
	ErrTelemetryNotFound = errors.New("telemetry not found")
)
