package assignment

import (
	"context"
	"fmt"
	"time"

	"github.com/YerlanK/brigade/internal/adapter/logger"
	"github.com/YerlanK/brigade/internal/domain"
	"github.com/YerlanK/brigade/internal/interfaces"
	"github.com/YerlanK/brigade/internal/metrics"
)

// Service evaluates station and staff assignments over repository snapshots.
// Snapshot consistency and write serialization are the storage layer's
// responsibility; this service only decides accept or reject.
type Service struct {
	orderRepo   interfaces.OrderRepository
	stationRepo interfaces.StationRepository
	staffRepo   interfaces.StaffRepository
	publisher   interfaces.MessagePublisher
	logger      logger.Logger
}

func NewService(
	orderRepo interfaces.OrderRepository,
	stationRepo interfaces.StationRepository,
	staffRepo interfaces.StaffRepository,
	publisher interfaces.MessagePublisher,
	logger logger.Logger,
) *Service {
	return &Service{
		orderRepo:   orderRepo,
		stationRepo: stationRepo,
		staffRepo:   staffRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *Service) EvaluateAssignment(ctx context.Context, cmd interfaces.AssignmentCommand) (domain.Decision, error) {
	order, err := s.orderRepo.FindByNumber(ctx, cmd.OrderNumber)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("failed to load order: %w", err)
	}

	station, err := s.stationRepo.FindByID(ctx, cmd.StationID)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("failed to load station: %w", err)
	}

	current, err := s.orderRepo.ListByStation(ctx, station.ID)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("failed to load station orders: %w", err)
	}

	decision := domain.EvaluateAssignment(*order, *station, current)
	s.recordDecision(ctx, "assignment", order.Number, "", decision)
	return decision, nil
}

func (s *Service) EvaluateStaffAssignment(ctx context.Context, cmd interfaces.StaffAssignmentCommand) (domain.Decision, error) {
	staff, err := s.staffRepo.FindByID(ctx, cmd.StaffID)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("failed to load staff member: %w", err)
	}

	station, err := s.stationRepo.FindByID(ctx, cmd.StationID)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("failed to load station: %w", err)
	}

	order, err := s.orderRepo.FindByNumber(ctx, cmd.OrderNumber)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("failed to load order: %w", err)
	}

	decision := domain.EvaluateStaffAssignment(*staff, *station, *order, nil)
	s.recordDecision(ctx, "staff_assignment", order.Number, staff.Name, decision)
	return decision, nil
}

// FindBestStation returns the highest-scoring eligible station for the
// order, or nil when no station qualifies. No station is not an error:
// the caller decides whether to queue or reject.
func (s *Service) FindBestStation(ctx context.Context, orderNumber string) (*interfaces.BestStationResponse, error) {
	order, err := s.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	stations, ordersByStation, err := s.stationSnapshots(ctx)
	if err != nil {
		return nil, err
	}

	best := domain.FindOptimalStation(*order, stations, ordersByStation)
	if best == nil {
		s.logger.Debug("no_eligible_station", fmt.Sprintf("No station can take order %s", order.Number), "",
			map[string]interface{}{"order_number": order.Number})
		return nil, nil
	}

	score := domain.ScoreStation(*order, *best, ordersByStation[best.ID])
	metrics.StationScore.Observe(score)

	return &interfaces.BestStationResponse{
		StationID:   best.ID,
		StationName: best.Name,
		StationType: best.Type,
		Score:       score,
	}, nil
}

// ProcessAssignmentRequest is the worker path: pick the best station for an
// inbound order and publish the outcome.
func (s *Service) ProcessAssignmentRequest(ctx context.Context, msg interfaces.AssignmentRequestMessage) error {
	order, err := s.orderRepo.FindByNumber(ctx, msg.OrderNumber)
	if err != nil {
		return fmt.Errorf("failed to load order: %w", err)
	}

	stations, ordersByStation, err := s.stationSnapshots(ctx)
	if err != nil {
		return err
	}

	best := domain.FindOptimalStation(*order, stations, ordersByStation)
	if best == nil {
		decision := domain.Reject(domain.RejectStationIncompatible,
			"no eligible station for order %s", order.Number)
		s.recordDecision(ctx, "assignment_request", order.Number, msg.RequestedBy, decision)
		return nil
	}

	score := domain.ScoreStation(*order, *best, ordersByStation[best.ID])
	metrics.StationScore.Observe(score)

	assignment := interfaces.AssignmentMessage{
		OrderNumber: order.Number,
		StationID:   best.ID,
		StationName: best.Name,
		StationType: best.Type,
		Score:       score,
		Priority:    order.Priority,
		AssignedAt:  time.Now(),
	}
	if err := s.publisher.PublishAssignment(ctx, assignment); err != nil {
		return fmt.Errorf("failed to publish assignment: %w", err)
	}

	s.recordDecision(ctx, "assignment_request", order.Number, msg.RequestedBy, domain.Accept())

	s.logger.Info("order_assigned", fmt.Sprintf("Order %s assigned to station %s", order.Number, best.Name), "",
		map[string]interface{}{
			"order_number": order.Number,
			"station_id":   best.ID,
			"score":        score,
		})
	return nil
}

// stationSnapshots loads every station together with its current orders.
// Stations keep their repository order so scoring ties stay deterministic.
func (s *Service) stationSnapshots(ctx context.Context) ([]domain.Station, map[string][]domain.Order, error) {
	stations, err := s.stationRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load stations: %w", err)
	}

	ordersByStation := make(map[string][]domain.Order, len(stations))
	for _, station := range stations {
		current, err := s.orderRepo.ListByStation(ctx, station.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load orders for station %s: %w", station.ID, err)
		}
		ordersByStation[station.ID] = current
	}

	return stations, ordersByStation, nil
}

func (s *Service) recordDecision(ctx context.Context, operation, orderNumber, decidedBy string, decision domain.Decision) {
	metrics.ObserveDecision(operation, decision.Accepted, string(decision.Kind))

	if err := s.orderRepo.LogDecision(ctx, orderNumber, operation, decision, decidedBy); err != nil {
		s.logger.Error("decision_log_failed", "Failed to log decision", "", map[string]interface{}{
			"order_number": orderNumber,
		}, err)
	}

	msg := interfaces.DecisionMessage{
		Operation:   operation,
		OrderNumber: orderNumber,
		Accepted:    decision.Accepted,
		Kind:        decision.Kind,
		Reason:      decision.Reason,
		DecidedBy:   decidedBy,
		Timestamp:   time.Now(),
	}
	if err := s.publisher.PublishDecision(ctx, msg); err != nil {
		s.logger.Error("rabbitmq_publish_failed", "Failed to publish decision", "", nil, err)
	}
}
