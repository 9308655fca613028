package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/cookbook-server/internal/logger"
	"github.com/dtroode/cookbook-server/internal/model"
)

// AuthService defines registration, login and session operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.User, error)
	Login(ctx context.Context, email, password string) (model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID int64) (model.User, error)
}

// Auth handles HTTP endpoints under /auth.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register creates an account and returns it without credentials.
func (h *Auth) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, bindError(err))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), model.RegisterParams{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		logFailure(h.logger, err, "Auth handler: registration failed",
			"email", req.Email)
		AbortWithError(c, err)
		return
	}

	h.logger.Info("Auth handler: user registered",
		"user_id", user.ID)

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// Login exchanges form credentials for a token pair.
func (h *Auth) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		AbortWithError(c, bindError(err))
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logFailure(h.logger, err, "Auth handler: login failed")
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTokenResponse(pair))
}

// Refresh rotates a refresh token.
func (h *Auth) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, bindError(err))
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		logFailure(h.logger, err, "Auth handler: token refresh failed")
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTokenResponse(pair))
}

// Logout revokes a refresh token.
func (h *Auth) Logout(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, bindError(err))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		logFailure(h.logger, err, "Auth handler: logout failed")
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, DetailResponse{Detail: "Logged out"})
}

// Me returns the authenticated user.
func (h *Auth) Me(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		AbortWithError(c, model.ErrInvalidAccessToken)
		return
	}

	user, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
