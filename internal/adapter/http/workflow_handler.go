package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/YerlanK/brigade/internal/adapter/logger"
	"github.com/YerlanK/brigade/internal/domain"
	"github.com/YerlanK/brigade/internal/interfaces"
)

type WorkflowHandler struct {
	service interfaces.WorkflowService
	logger  logger.Logger
}

func NewWorkflowHandler(service interfaces.WorkflowService, logger logger.Logger) *WorkflowHandler {
	return &WorkflowHandler{
		service: service,
		logger:  logger,
	}
}

type StatusChangeRequest struct {
	TargetStatus string `json:"target_status"`
	UserID       string `json:"user_id"`
}

type DecisionResponse struct {
	OrderNumber string          `json:"order_number,omitempty"`
	Decision    domain.Decision `json:"decision"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleOrders evaluates a status-change request:
// POST /orders/{number}/status
func (h *WorkflowHandler) HandleOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 || parts[0] != "orders" || parts[2] != "status" {
		respondError(w, "Not found", http.StatusNotFound)
		return
	}
	orderNumber := parts[1]

	var req StatusChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.TargetStatus == "" || req.UserID == "" {
		respondError(w, "target_status and user_id are required", http.StatusBadRequest)
		return
	}

	cmd := interfaces.StatusChangeCommand{
		OrderNumber:  orderNumber,
		TargetStatus: domain.OrderStatus(req.TargetStatus),
		UserID:       req.UserID,
	}

	decision, err := h.service.EvaluateStatusChange(r.Context(), cmd)
	if err != nil {
		h.logger.Error("status_change_failed", "Failed to evaluate status change", "", map[string]interface{}{
			"order_number": orderNumber,
		}, err)
		respondError(w, err.Error(), http.StatusNotFound)
		return
	}

	// A rejection is a policy outcome, not a transport error.
	respondJSON(w, http.StatusOK, DecisionResponse{OrderNumber: orderNumber, Decision: decision})
}

// GetCapacity reports the current admission verdict:
// GET /capacity
func (h *WorkflowHandler) GetCapacity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	decision, err := h.service.EvaluateCapacity(r.Context())
	if err != nil {
		h.logger.Error("capacity_check_failed", "Failed to evaluate capacity", "", nil, err)
		respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, DecisionResponse{Decision: decision})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, status, ErrorResponse{Error: message})
}
