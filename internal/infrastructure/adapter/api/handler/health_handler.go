package handler

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// HealthChecker reports the state of the ledger store
type HealthChecker interface {
	HealthCheck(ctx context.Context) database.HealthStatus
}

// HealthHandler serves GET /health
type HealthHandler struct {
	checker HealthChecker
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health returns 200 with pool metrics when the database answers, 503 otherwise
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.checker.HealthCheck(c.Request.Context())
	if status.Status != database.StatusUp {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}
