package interfaces

import (
	"context"

	"github.com/YerlanK/brigade/internal/domain"
)

// Commands accepted by the evaluation services.
type StatusChangeCommand struct {
	OrderNumber  string
	TargetStatus domain.OrderStatus
	UserID       string
}

type AssignmentCommand struct {
	OrderNumber string
	StationID   string
}

type StaffAssignmentCommand struct {
	StaffID     string
	StationID   string
	OrderNumber string
}

// Service ports (Business Logic).
type WorkflowService interface {
	EvaluateStatusChange(ctx context.Context, cmd StatusChangeCommand) (domain.Decision, error)
	EvaluateCapacity(ctx context.Context) (domain.Decision, error)
}

type AssignmentService interface {
	EvaluateAssignment(ctx context.Context, cmd AssignmentCommand) (domain.Decision, error)
	EvaluateStaffAssignment(ctx context.Context, cmd StaffAssignmentCommand) (domain.Decision, error)
	FindBestStation(ctx context.Context, orderNumber string) (*BestStationResponse, error)
	ProcessAssignmentRequest(ctx context.Context, msg AssignmentRequestMessage) error
}

type MonitorService interface {
	KitchenLoad(ctx context.Context) (*KitchenLoadResponse, error)
}

// FindBestStation result. A nil response means no station is eligible.
type BestStationResponse struct {
	StationID   string             `json:"station_id"`
	StationName string             `json:"station_name"`
	StationType domain.StationType `json:"station_type"`
	Score       float64            `json:"score"`
}

// Kitchen load snapshot for the dashboard.
type KitchenLoadResponse struct {
	ActiveOrders   int             `json:"active_orders"`
	ComplexOrders  int             `json:"complex_orders"`
	AvailableStaff int             `json:"available_staff"`
	SeniorStaff    int             `json:"senior_staff"`
	MaxConcurrent  int             `json:"max_concurrent"`
	Admission      domain.Decision `json:"admission"`
	Stations       []StationLoad   `json:"stations"`
}

type StationLoad struct {
	StationID       string               `json:"station_id"`
	Name            string               `json:"name"`
	Type            domain.StationType   `json:"type"`
	Status          domain.StationStatus `json:"status"`
	AssignedOrders  int                  `json:"assigned_orders"`
	WorkloadMinutes float64              `json:"workload_minutes"`
	MaxWorkload     float64              `json:"max_workload_minutes"`
	Capacity        int                  `json:"capacity"`
}
