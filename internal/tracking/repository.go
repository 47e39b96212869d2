package tracking

import "context"

// Repository reads the fleet side of the remote data service.
type Repository interface {
	// GetMission returns ErrMissionNotFound when the id does not resolve.
	GetMission(ctx context.Context, id string) (*Mission, error)

	// ListMissionsByOrder returns the missions for an order, newest first.
	ListMissionsByOrder(ctx context.Context, orderID string) ([]*Mission, error)

	// LatestTelemetry returns the most recent sample for a mission, or
	// ErrTelemetryNotFound when the stream is empty.
	LatestTelemetry(ctx context.Context, missionID string) (*TelemetrySample, error)

	// LatestTelemetryByDrone is the legacy-key fallback for samples recorded
	// before mission ids existed.
	LatestTelemetryByDrone(ctx context.Context, droneID string) (*TelemetrySample, error)
}
