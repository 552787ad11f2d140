package amqp

import (
	"context"
	"encoding/json"

	"github.com/YerlanK/brigade/internal/adapter/logger"
	"github.com/YerlanK/brigade/internal/interfaces"
)

type AssignmentHandler struct {
	service interfaces.AssignmentService
	logger  logger.Logger
}

func NewAssignmentHandler(service interfaces.AssignmentService, logger logger.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AssignmentHandler) HandleRequest(ctx context.Context, body []byte) error {
	var msg interfaces.AssignmentRequestMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		h.logger.Error("message_parse_failed", "Failed to parse assignment request", "", nil, err)
		return err
	}

	return h.service.ProcessAssignmentRequest(ctx, msg)
}
