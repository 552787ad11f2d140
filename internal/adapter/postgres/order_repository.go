package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/YerlanK/brigade/internal/domain"
	"github.com/YerlanK/brigade/internal/interfaces"
)

type orderRepository struct {
	db DB
}

func NewOrderRepository(db DB) interfaces.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, number, status, priority, special_instructions,
	       total_amount, assigned_station_id, created_at, updated_at`

func (r *orderRepository) FindByNumber(ctx context.Context, number string) (*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE number = $1
	`

	order, err := r.scanOrder(r.db.QueryRow(ctx, query, number))
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) ListActive(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status IN ('confirmed', 'preparing')
		ORDER BY created_at ASC
	`
	return r.listOrders(ctx, query)
}

func (r *orderRepository) ListByStation(ctx context.Context, stationID string) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE assigned_station_id = $1 AND status NOT IN ('completed', 'cancelled')
		ORDER BY created_at ASC
	`
	return r.listOrders(ctx, query, stationID)
}

func (r *orderRepository) LogDecision(ctx context.Context, orderNumber, operation string, decision domain.Decision, requestedBy string) error {
	query := `
		INSERT INTO order_decision_log (order_number, operation, accepted, kind, reason, requested_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		orderNumber, operation, decision.Accepted, string(decision.Kind), decision.Reason, requestedBy, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to log decision: %w", err)
	}
	return nil
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}

	for i := range orders {
		if err := r.loadItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func (r *orderRepository) scanOrder(row Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.Number, &order.Status, &order.Priority, &order.SpecialInstructions,
		&order.TotalAmount, &order.AssignedStationID, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// loadItems attaches the line items with their recipes, in item order.
func (r *orderRepository) loadItems(ctx context.Context, order *domain.Order) error {
	query := `
		SELECT oi.id, oi.order_id, oi.quantity,
		       r.id, r.name, r.category, r.difficulty, r.allergens, r.estimated_time_minutes
		FROM order_items oi
		JOIN recipes r ON r.id = oi.recipe_id
		WHERE oi.order_id = $1
		ORDER BY oi.id ASC
	`

	rows, err := r.db.Query(ctx, query, order.ID)
	if err != nil {
		return fmt.Errorf("failed to load order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.Quantity,
			&item.Recipe.ID, &item.Recipe.Name, &item.Recipe.Category,
			&item.Recipe.Difficulty, &item.Recipe.Allergens, &item.Recipe.EstimatedTimeMinutes,
		)
		if err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}

	return nil
}
