package http

import (
	"net/http"

	"github.com/YerlanK/brigade/internal/adapter/logger"
	"github.com/YerlanK/brigade/internal/interfaces"
)

type MonitorHandler struct {
	service interfaces.MonitorService
	logger  logger.Logger
}

func NewMonitorHandler(service interfaces.MonitorService, logger logger.Logger) *MonitorHandler {
	return &MonitorHandler{
		service: service,
		logger:  logger,
	}
}

// GetKitchenLoad returns the aggregate load snapshot:
// GET /kitchen/load
func (h *MonitorHandler) GetKitchenLoad(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	load, err := h.service.KitchenLoad(r.Context())
	if err != nil {
		h.logger.Error("kitchen_load_failed", "Failed to build kitchen load", "", nil, err)
		respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, load)
}
