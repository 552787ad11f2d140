package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/YerlanK/brigade/internal/adapter/logger"
	"github.com/YerlanK/brigade/internal/interfaces"
)

type DecisionHandler struct {
	logger logger.Logger
}

func NewDecisionHandler(logger logger.Logger) *DecisionHandler {
	return &DecisionHandler{
		logger: logger,
	}
}

func (h *DecisionHandler) HandleDecision(ctx context.Context, body []byte) error {
	var msg interfaces.DecisionMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		h.logger.Error("message_parse_failed", "Failed to parse decision message", "", nil, err)
		return err
	}

	h.logger.Debug("decision_received", fmt.Sprintf("Received %s decision for order %s", msg.Operation, msg.OrderNumber),
		msg.OrderNumber, map[string]interface{}{
			"order_number": msg.OrderNumber,
			"operation":    msg.Operation,
			"accepted":     msg.Accepted,
		})

	if msg.Accepted {
		fmt.Printf("Order %s: %s accepted\n", msg.OrderNumber, msg.Operation)
	} else {
		fmt.Printf("Order %s: %s rejected (%s): %s\n", msg.OrderNumber, msg.Operation, msg.Kind, msg.Reason)
	}

	return nil
}
