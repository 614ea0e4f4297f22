package handlers

import (
	"net/http"

	"github.com/holdview/Holdings-View-Backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Positions string `json:"positions"`
	Data      string `json:"data"`
	Error     string `json:"error,omitempty"`
}

// Health checks the health of the system and upstream connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.systemService.CheckHealth(r.Context())

	response := HealthResponse{
		Status:    "healthy",
		Positions: "connected",
		Data:      "connected",
	}
	httpStatus := http.StatusOK

	if !status.Healthy() {
		response.Status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
		if status.PositionsErr != nil {
			response.Positions = "disconnected"
			response.Error = status.PositionsErr.Error()
		}
		if status.DataErr != nil {
			response.Data = "disconnected"
			response.Error = status.DataErr.Error()
		}
	}

	respondJSON(w, httpStatus, response)
}

// VersionResponse represents the version check response
type VersionResponse struct {
	AppVersion string `json:"app_version"`
}

// Version returns the application version.
//
// Endpoint: GET /api/system/version
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, VersionResponse{
		AppVersion: h.systemService.CheckVersion(),
	})
}
