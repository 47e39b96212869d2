package remote

import (
	"context"
	"net/http"
	"time"

	"skydish-core/internal/tracking"

	"github.com/go-resty/resty/v2"
)

// FleetClient reads missions and drone telemetry. It never writes; the fleet
// service owns that data.
type FleetClient struct {
	rest *resty.Client
}

var _ tracking.Repository = (*FleetClient)(nil)

type missionDTO struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"orderId"`
	DroneID    string    `json:"droneId,omitempty"`
	Status     string    `json:"status"`
	EtaMinutes int       `json:"etaMinutes"`
	StartedAt  time.Time `json:"startedAt"`
}

func (d *missionDTO) toModel() *tracking.Mission {
	return &tracking.Mission{
		ID:         d.ID,
		OrderID:    d.OrderID,
		DroneID:    d.DroneID,
		Status:     d.Status,
		EtaMinutes: d.EtaMinutes,
		StartedAt:  d.StartedAt,
	}
}

func (c *FleetClient) GetMission(ctx context.Context, id string) (*tracking.Mission, error) {
	var dto missionDTO
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&dto).
		Get("/missions/" + id)

	if err := checkResponse(resp, err, tracking.ErrMissionNotFound); err != nil {
		return nil, err
	}
	return dto.toModel(), nil
}

func (c *FleetClient) ListMissionsByOrder(ctx context.Context, orderID string) ([]*tracking.Mission, error) {
	var dtos []missionDTO
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"orderId": orderID,
			"sortBy":  "startedAt",
			"order":   "desc",
			"limit":   "1",
		}).
		SetResult(&dtos).
		Get("/missions")

	if err == nil && resp.StatusCode() == http.StatusNotFound {
		return []*tracking.Mission{}, nil
	}
	if err := checkResponse(resp, err, tracking.ErrMissionNotFound); err != nil {
		return nil, err
	}

	missions := make([]*tracking.Mission, 0, len(dtos))
	for i := range dtos {
		missions = append(missions, dtos[i].toModel())
	}
	return missions, nil
}
