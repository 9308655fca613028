package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/cookbook-server/internal/logger"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// Logging logs every HTTP request with its status and duration.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle assigns a request id unless the client sent one, then logs the
// request once the handler chain has finished.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()

	requestID := c.GetHeader(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(RequestIDHeader, requestID)

	c.Next()

	status := c.Writer.Status()
	args := []any{
		"request_id", requestID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}

	switch {
	case status >= 500:
		l.logger.Error("HTTP request failed", args...)
	case status >= 400:
		l.logger.Warn("HTTP request rejected", args...)
	default:
		l.logger.Info("HTTP request completed", args...)
	}
}
