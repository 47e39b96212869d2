package tracking

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"skydish-core/internal/logger"
	"skydish-core/internal/order"

	"go.uber.org/zap"
)

// Service reconciles the three independently-updated sources — order,
// mission, telemetry — into one consistent view.
type Service interface {
	Resolve(ctx context.Context, o *order.Order) (*View, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Resolve(ctx context.Context, o *order.Order) (*View, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Resolve"),
		zap.String("order_id", o.ID),
	)

	view := &View{
		Order:       o,
		OrderStatus: o.Canonical(),
	}

	// 1. Resolve the mission: direct reference first, order lookup second.
	mission, err := s.resolveMission(ctx, o)
	if err != nil {
		log.Error("mission lookup failed", zap.Error(err))
		return nil, fmt.Errorf("resolve mission: %w", err)
	}

	// 2. No mission is a valid degraded state; telemetry is never queried
	// without one.
	if mission == nil {
		log.Debug("no mission resolved")
		return view, nil
	}

	view.Mission = mission
	view.HasMission = true
	view.MissionStatus = mission.Canonical()

	// 3. Latest telemetry, mission id first, legacy drone key as fallback.
	sample, err := s.latestTelemetry(ctx, mission)
	if err != nil {
		log.Error("telemetry lookup failed", zap.Error(err))
		return nil, fmt.Errorf("resolve telemetry: %w", err)
	}
	view.Telemetry = sample

	log.Debug("tracking resolved",
		zap.String("mission_id", mission.ID),
		zap.Bool("trackable", view.Trackable()),
		zap.Bool("has_telemetry", sample != nil),
	)

	return view, nil
}

func (s *service) resolveMission(ctx context.Context, o *order.Order) (*Mission, error) {
	if o.MissionID != nil && *o.MissionID != "" {
		mission, err := s.repo.GetMission(ctx, *o.MissionID)
		if err == nil {
			return mission, nil
		}
		if !errors.Is(err, ErrMissionNotFound) {
			return nil, err
		}
		// Dangling reference: fall through to the order lookup.
	}

	missions, err := s.repo.ListMissionsByOrder(ctx, o.ID)
	if err != nil {
		if errors.Is(err, ErrMissionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if len(missions) == 0 {
		return nil, nil
	}

	// Most recently started wins; ties break on highest id so the pick is
	// stable across refreshes.
	sort.Slice(missions, func(i, j int) bool {
		if !missions[i].StartedAt.Equal(missions[j].StartedAt) {
			return missions[i].StartedAt.After(missions[j].StartedAt)
		}
		return missions[i].ID > missions[j].ID
	})

	return missions[0], nil
}

func (s *service) latestTelemetry(ctx context.Context, mission *Mission) (*TelemetrySample, error) {
	sample, err := s.repo.LatestTelemetry(ctx, mission.ID)
	if err == nil {
		return sample, nil
	}
	if !errors.Is(err, ErrTelemetryNotFound) {
		return nil, err
	}

	if mission.DroneID == "" {
		return nil, nil
	}

	sample, err = s.repo.LatestTelemetryByDrone(ctx, mission.DroneID)
	if err != nil {
		if errors.Is(err, ErrTelemetryNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sample, nil
}
