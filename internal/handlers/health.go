package handlers

import (
	"net/http"
)

// HealthResponse represents the liveness probe response
// swagger:model HealthResponse
type HealthResponse struct {
	// Status
	// default: OK
	Status string `json:"status"`
}

// NewHealthHandler returns the liveness probe handler.
// @Summary Health check
// @Description Liveness probe.
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is up"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, HealthResponse{Status: "OK"})
	}
}

// NewNotFoundHandler returns the catch-all handler for unmatched routes.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "Route not found")
	}
}
