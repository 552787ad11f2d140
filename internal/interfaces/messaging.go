package interfaces

import (
	"context"
	"time"

	"github.com/YerlanK/brigade/internal/domain"
)

// RabbitMQ messages.
type AssignmentRequestMessage struct {
	OrderNumber string          `json:"order_number"`
	Priority    domain.Priority `json:"priority"`
	RequestedBy string          `json:"requested_by"`
}

type AssignmentMessage struct {
	OrderNumber string             `json:"order_number"`
	StationID   string             `json:"station_id"`
	StationName string             `json:"station_name"`
	StationType domain.StationType `json:"station_type"`
	Score       float64            `json:"score"`
	Priority    domain.Priority    `json:"priority"`
	AssignedAt  time.Time          `json:"assigned_at"`
}

type DecisionMessage struct {
	Operation   string            `json:"operation"`
	OrderNumber string            `json:"order_number"`
	Accepted    bool              `json:"accepted"`
	Kind        domain.RejectKind `json:"kind,omitempty"`
	Reason      string            `json:"reason,omitempty"`
	DecidedBy   string            `json:"decided_by,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
}

// Messaging ports (Adapter/RabbitMQ).
type MessagePublisher interface {
	PublishAssignment(ctx context.Context, msg AssignmentMessage) error
	PublishDecision(ctx context.Context, msg DecisionMessage) error
}

type MessageConsumer interface {
	ConsumeAssignmentRequests(ctx context.Context, handler AssignmentRequestHandler) error
	ConsumeDecisions(ctx context.Context, handler DecisionHandler) error
}

type (
	AssignmentRequestHandler func(ctx context.Context, body []byte) error
	DecisionHandler          func(ctx context.Context, body []byte) error
)
