package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bmahler/estate-portal/api/internal/middleware"
	"github.com/bmahler/estate-portal/api/internal/repository"
)

// healthCheckTimeout bounds the database ping during readiness checks.
const healthCheckTimeout = 2 * time.Second

// Pinger is the slice of the database the health handler needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles liveness and readiness endpoints.
type HealthHandler struct {
	db   Pinger
	repo repository.InquiryRepository
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger, repo repository.InquiryRepository) *HealthHandler {
	return &HealthHandler{
		db:   db,
		repo: repo,
	}
}

// HealthResponse is the liveness check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse is the readiness check response. Inquiries carries the
// current row count when the store answered.
type ReadyResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Inquiries *int64 `json:"inquiries,omitempty"`
}

// Health handles GET /health. It always returns 200 and checks nothing;
// it exists for basic liveness probes.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
	})
}

// Ready handles GET /health/ready. It pings the database and runs a count
// over the inquiry table as an end-to-end store check. Returns 503 when
// either fails.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		if log := middleware.GetLogger(c); log != nil {
			log.Error("Database health check failed", err, map[string]interface{}{
				"timeout": healthCheckTimeout.String(),
			})
		}

		c.JSON(http.StatusServiceUnavailable, ReadyResponse{
			Status:   "not_ready",
			Database: "disconnected",
		})
		return
	}

	count, err := h.repo.Count(ctx)
	if err != nil {
		if log := middleware.GetLogger(c); log != nil {
			log.Error("Inquiry table check failed", err, nil)
		}

		c.JSON(http.StatusServiceUnavailable, ReadyResponse{
			Status:   "not_ready",
			Database: "error",
		})
		return
	}

	c.JSON(http.StatusOK, ReadyResponse{
		Status:    "ready",
		Database:  "connected",
		Inquiries: &count,
	})
}
