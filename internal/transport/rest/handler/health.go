package handler

import (
	"net/http"

	"soothe/internal/service"
)

// HealthHandler backs the liveness endpoints
type HealthHandler struct {
	generatorSvc *service.GeneratorService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(generatorSvc *service.GeneratorService) *HealthHandler {
	return &HealthHandler{generatorSvc: generatorSvc}
}

// AI handles GET /v1/health/ai: one minimal probe against the upstream API.
// Reachability and auth only, always 200 with the status in the body.
func (h *HealthHandler) AI(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.generatorSvc.CheckHealth(r.Context()))
}
