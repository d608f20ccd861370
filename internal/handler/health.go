package handler

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker defines an interface for checking service health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// UserCounter reports how many credential records are loaded.
type UserCounter interface {
	Len() int
}

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	cache HealthChecker
	store UserCounter
}

// NewHealthHandler creates a new HealthHandler. Pass nil for cache when
// Redis is not configured.
func NewHealthHandler(cache HealthChecker, store UserCounter) *HealthHandler {
	return &HealthHandler{cache: cache, store: store}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Users  int               `json:"users,omitempty"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz is a liveness probe endpoint.
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz is a readiness probe endpoint. The flat-file store is loaded at
// startup, so only the optional Redis cache is probed.
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)
	healthy := true

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			checks["redis"] = "error: " + err.Error()
			healthy = false
		} else {
			checks["redis"] = "ok"
		}
	} else {
		checks["redis"] = "not configured"
	}

	status := "ok"
	statusCode := http.StatusOK
	if !healthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	resp := HealthResponse{Status: status, Checks: checks}
	if h.store != nil {
		resp.Users = h.store.Len()
	}
	writeJSON(w, statusCode, resp)
}
