package handler

import (
	"net/http"
	"time"

	"trucktrace/config"
	"trucktrace/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	environment string
	now         func() time.Time
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{environment: cfg.Env.Env, now: time.Now}
}

// HealthStatus is the data of GET /health.
type HealthStatus struct {
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

// Check reports that the API is serving.
func (h *HealthHandler) Check(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthStatus{
		Timestamp:   h.now().UTC(),
		Environment: h.environment,
	}, "TruckTrace API is running")
}
