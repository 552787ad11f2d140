package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/YerlanK/brigade/internal/adapter/logger"
	"github.com/YerlanK/brigade/internal/app/admission"
	"github.com/YerlanK/brigade/internal/domain"
	"github.com/YerlanK/brigade/internal/interfaces"
)

// Broadcaster pushes a state snapshot to connected dashboard clients.
type Broadcaster interface {
	BroadcastState(state interface{})
}

// Service aggregates the kitchen-load view for the dashboard: active orders,
// staffing, per-station workload, and the current admission verdict.
type Service struct {
	orderRepo     interfaces.OrderRepository
	stationRepo   interfaces.StationRepository
	staffRepo     interfaces.StaffRepository
	logger        logger.Logger
	maxConcurrent int
	rules         *admission.RuleSet
}

func NewService(
	orderRepo interfaces.OrderRepository,
	stationRepo interfaces.StationRepository,
	staffRepo interfaces.StaffRepository,
	logger logger.Logger,
	maxConcurrent int,
	rules *admission.RuleSet,
) *Service {
	return &Service{
		orderRepo:     orderRepo,
		stationRepo:   stationRepo,
		staffRepo:     staffRepo,
		logger:        logger,
		maxConcurrent: maxConcurrent,
		rules:         rules,
	}
}

func (s *Service) KitchenLoad(ctx context.Context) (*interfaces.KitchenLoadResponse, error) {
	orders, err := s.orderRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active orders: %w", err)
	}

	staff, err := s.staffRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}

	stations, err := s.stationRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stations: %w", err)
	}

	snap := domain.SnapshotCapacity(orders, staff, s.maxConcurrent)

	admit := domain.EvaluateCapacity(orders, staff, s.maxConcurrent)
	if admit.Accepted {
		admit = s.rules.Evaluate(snap)
	}

	resp := &interfaces.KitchenLoadResponse{
		ActiveOrders:   snap.ActiveOrders,
		ComplexOrders:  snap.ComplexOrders,
		AvailableStaff: snap.AvailableStaff,
		SeniorStaff:    snap.SeniorStaff,
		MaxConcurrent:  snap.MaxConcurrent,
		Admission:      admit,
	}

	for _, station := range stations {
		current, err := s.orderRepo.ListByStation(ctx, station.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load orders for station %s: %w", station.ID, err)
		}

		resp.Stations = append(resp.Stations, interfaces.StationLoad{
			StationID:       station.ID,
			Name:            station.Name,
			Type:            station.Type,
			Status:          station.Status,
			AssignedOrders:  len(current),
			WorkloadMinutes: domain.StationWorkload(current),
			MaxWorkload:     station.Type.MaxWorkloadMinutes(),
			Capacity:        station.Capacity,
		})
	}

	return resp, nil
}

// Run periodically pushes the kitchen-load snapshot to dashboard clients
// until the context is cancelled.
func (s *Service) Run(ctx context.Context, interval time.Duration, hub Broadcaster) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			load, err := s.KitchenLoad(ctx)
			if err != nil {
				s.logger.Error("load_snapshot_failed", "Failed to build kitchen load snapshot", "", nil, err)
				continue
			}
			hub.BroadcastState(load)
		}
	}
}
