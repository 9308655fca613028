package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/cookbook-server/internal/logger"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Health handles the liveness endpoint.
type Health struct {
	db     HealthChecker
	logger *logger.Logger
}

func NewHealth(db HealthChecker, logger *logger.Logger) *Health {
	return &Health{db: db, logger: logger}
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Health) Check(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health handler: database unreachable",
			"error", err.Error())
		c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
