package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/YerlanK/brigade/internal/adapter/logger"
	"github.com/YerlanK/brigade/internal/app/admission"
	"github.com/YerlanK/brigade/internal/domain"
	"github.com/YerlanK/brigade/internal/interfaces"
	"github.com/YerlanK/brigade/internal/metrics"
)

// Service validates status-change requests against the order lifecycle,
// role permissions and kitchen-wide capacity. It never applies a transition
// itself; callers act on accepted decisions.
type Service struct {
	orderRepo     interfaces.OrderRepository
	staffRepo     interfaces.StaffRepository
	publisher     interfaces.MessagePublisher
	logger        logger.Logger
	maxConcurrent int
	rules         *admission.RuleSet
}

func NewService(
	orderRepo interfaces.OrderRepository,
	staffRepo interfaces.StaffRepository,
	publisher interfaces.MessagePublisher,
	logger logger.Logger,
	maxConcurrent int,
	rules *admission.RuleSet,
) *Service {
	return &Service{
		orderRepo:     orderRepo,
		staffRepo:     staffRepo,
		publisher:     publisher,
		logger:        logger,
		maxConcurrent: maxConcurrent,
		rules:         rules,
	}
}

func (s *Service) EvaluateStatusChange(ctx context.Context, cmd interfaces.StatusChangeCommand) (domain.Decision, error) {
	order, err := s.orderRepo.FindByNumber(ctx, cmd.OrderNumber)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("failed to load order: %w", err)
	}

	user, err := s.staffRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("failed to load user: %w", err)
	}

	decision := domain.EvaluateStatusChange(*order, cmd.TargetStatus, *user)

	// Confirming an order adds it to the active set, so the kitchen must
	// also have room for it.
	if decision.Accepted && cmd.TargetStatus == domain.StatusConfirmed {
		decision, err = s.checkCapacity(ctx)
		if err != nil {
			return domain.Decision{}, err
		}
	}

	s.recordDecision(ctx, "status_change", order.Number, user.Name, decision)
	return decision, nil
}

func (s *Service) EvaluateCapacity(ctx context.Context) (domain.Decision, error) {
	decision, err := s.checkCapacity(ctx)
	if err != nil {
		return domain.Decision{}, err
	}

	metrics.ObserveDecision("capacity", decision.Accepted, string(decision.Kind))
	return decision, nil
}

// checkCapacity runs the built-in admission checks and then the configured
// admission rules over fresh order and staff snapshots.
func (s *Service) checkCapacity(ctx context.Context) (domain.Decision, error) {
	orders, err := s.orderRepo.ListActive(ctx)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("failed to load active orders: %w", err)
	}

	staff, err := s.staffRepo.ListActive(ctx)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("failed to load staff: %w", err)
	}

	snap := domain.SnapshotCapacity(orders, staff, s.maxConcurrent)
	metrics.ActiveOrders.Set(float64(snap.ActiveOrders))

	decision := domain.EvaluateCapacity(orders, staff, s.maxConcurrent)
	if decision.Accepted {
		decision = s.rules.Evaluate(snap)
	}

	return decision, nil
}

// recordDecision is best-effort bookkeeping: the decision stands even when
// the audit log or the notification fanout is unavailable.
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

	s.logger.Debug("decision_evaluated", fmt.Sprintf("%s for order %s: accepted=%t", operation, orderNumber, decision.Accepted), "",
		map[string]interface{}{
			"order_number": orderNumber,
			"accepted":     decision.Accepted,
			"kind":         string(decision.Kind),
			"reason":       decision.Reason,
		})
}
