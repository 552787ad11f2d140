package interfaces

import (
	"context"

	"github.com/YerlanK/brigade/internal/domain"
)

// Repository ports (Adapter/Postgres). The engine evaluates snapshots; these
// ports supply them.
type OrderRepository interface {
	FindByNumber(ctx context.Context, number string) (*domain.Order, error)
	ListActive(ctx context.Context) ([]domain.Order, error)
	ListByStation(ctx context.Context, stationID string) ([]domain.Order, error)
	LogDecision(ctx context.Context, orderNumber, operation string, decision domain.Decision, requestedBy string) error
}

type StationRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Station, error)
	ListAll(ctx context.Context) ([]domain.Station, error)
}

type StaffRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ListActive(ctx context.Context) ([]domain.User, error)
}
