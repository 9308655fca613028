package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/cookbook-server/internal/api/http/handler"
	"github.com/dtroode/cookbook-server/internal/logger"
	"github.com/dtroode/cookbook-server/internal/model"
)

// Authenticator resolves the user behind a bearer access token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (int64, error)
}

// Authenticate validates bearer tokens and injects user ID into context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// Handle rejects the request with 401 unless it carries a valid bearer token.
func (m *Authenticate) Handle(c *gin.Context) {
	tokenString, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		m.logger.Debug("Authenticate middleware: missing bearer token",
			"path", c.FullPath())
		handler.AbortWithError(c, model.ErrInvalidAccessToken)
		return
	}

	ctx := c.Request.Context()
	userID, err := m.authenticator.Authenticate(ctx, tokenString)
	if err != nil {
		m.logger.Debug("Authenticate middleware: token rejected",
			"path", c.FullPath(),
			"error", err.Error())
		handler.AbortWithError(c, err)
		return
	}

	c.Request = c.Request.WithContext(m.contextManager.SetUserIDToContext(ctx, userID))
	c.Next()
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
