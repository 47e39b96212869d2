package remote

import (
	"context"
	"time"

	"skydish-core/internal/tracking"
)

type telemetryDTO struct {
	MissionID  string    `json:"missionId,omitempty"`
	DroneID    string    `json:"droneId,omitempty"`
	Latitude   float64   `json:"lat"`
	Longitude  float64   `json:"lng"`
	Speed      float64   `json:"speed"`
	Battery    int       `json:"battery"`
	CapturedAt time.Time `json:"capturedAt"`
}

func (d *telemetryDTO) toModel() *tracking.TelemetrySample {
	return &tracking.TelemetrySample{
		MissionID:  d.MissionID,
		DroneID:    d.DroneID,
		Latitude:   d.Latitude,
		Longitude:  d.Longitude,
		Speed:      d.Speed,
		Battery:    d.Battery,
		CapturedAt: d.CapturedAt,
	}
}

func (c *FleetClient) LatestTelemetry(ctx context.Context, missionID string) (*tracking.TelemetrySample, error) {
	return c.latestTelemetryBy(ctx, "missionId", missionID)
}

func (c *FleetClient) LatestTelemetryByDrone(ctx context.Context, droneID string) (*tracking.TelemetrySample, error) {
	return c.latestTelemetryBy(ctx, "droneId", droneID)
}

func (c *FleetClient) latestTelemetryBy(ctx context.Context, key, value string) (*tracking.TelemetrySample, error) {
	var dtos []telemetryDTO
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			key:      value,
			"sortBy": "capturedAt",
			"order":  "desc",
			"limit":  "1",
		}).
		SetResult(&dtos).
		Get("/telemetry")

	if err := checkResponse(resp, err, tracking.ErrTelemetryNotFound); err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, tracking.ErrTelemetryNotFound
	}
	return dtos[0].toModel(), nil
}
