package http

import (
	"encoding/json"
	"net/http"

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

type EvaluateAssignmentRequest struct {
	OrderNumber string `json:"order_number"`
	StationID   string `json:"station_id"`
}

type StaffAssignmentRequest struct {
	StaffID     string `json:"staff_id"`
	StationID   string `json:"station_id"`
	OrderNumber string `json:"order_number"`
}

type BestStationResponse struct {
	Found   bool                            `json:"found"`
	Station *interfaces.BestStationResponse `json:"station,omitempty"`
}

// EvaluateAssignment checks a specific order/station pairing:
// POST /assignments/evaluate
func (h *AssignmentHandler) EvaluateAssignment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req EvaluateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.OrderNumber == "" || req.StationID == "" {
		respondError(w, "order_number and station_id are required", http.StatusBadRequest)
		return
	}

	decision, err := h.service.EvaluateAssignment(r.Context(), interfaces.AssignmentCommand{
		OrderNumber: req.OrderNumber,
		StationID:   req.StationID,
	})
	if err != nil {
		h.logger.Error("assignment_evaluation_failed", "Failed to evaluate assignment", "", map[string]interface{}{
			"order_number": req.OrderNumber,
			"station_id":   req.StationID,
		}, err)
		respondError(w, err.Error(), http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, DecisionResponse{OrderNumber: req.OrderNumber, Decision: decision})
}

// EvaluateStaff checks whether a staff member can take an order at a station:
// POST /assignments/staff
func (h *AssignmentHandler) EvaluateStaff(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req StaffAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.StaffID == "" || req.StationID == "" || req.OrderNumber == "" {
		respondError(w, "staff_id, station_id and order_number are required", http.StatusBadRequest)
		return
	}

	decision, err := h.service.EvaluateStaffAssignment(r.Context(), interfaces.StaffAssignmentCommand{
		StaffID:     req.StaffID,
		StationID:   req.StationID,
		OrderNumber: req.OrderNumber,
	})
	if err != nil {
		h.logger.Error("staff_evaluation_failed", "Failed to evaluate staff assignment", "", nil, err)
		respondError(w, err.Error(), http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, DecisionResponse{OrderNumber: req.OrderNumber, Decision: decision})
}

// BestStation finds the optimal station for an order:
// GET /assignments/best?order={number}
func (h *AssignmentHandler) BestStation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orderNumber := r.URL.Query().Get("order")
	if orderNumber == "" {
		respondError(w, "order query parameter is required", http.StatusBadRequest)
		return
	}

	best, err := h.service.FindBestStation(r.Context(), orderNumber)
	if err != nil {
		h.logger.Error("best_station_failed", "Failed to find best station", "", map[string]interface{}{
			"order_number": orderNumber,
		}, err)
		respondError(w, err.Error(), http.StatusNotFound)
		return
	}

	// No eligible station is a valid outcome, not an error.
	respondJSON(w, http.StatusOK, BestStationResponse{Found: best != nil, Station: best})
}
