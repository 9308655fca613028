package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpcontext "github.com/dtroode/cookbook-server/internal/api/http/context"
	"github.com/dtroode/cookbook-server/internal/mocks"
	"github.com/dtroode/cookbook-server/internal/model"
	"github.com/dtroode/cookbook-server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		wantToken  string
		userID     int64
		authErr    error
		wantStatus int
	}{
		{
			name:       "missing authorization header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty bearer",
			header:     "Bearer   ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     "Bearer invalid",
			wantToken:  "invalid",
			authErr:    model.ErrInvalidAccessToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "storage failure",
			header:     "Bearer token",
			wantToken:  "token",
			authErr:    errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "valid token",
			header:     "Bearer token",
			wantToken:  "token",
			userID:     42,
			wantStatus: http.StatusOK,
		},
		{
			name:       "scheme is case insensitive",
			header:     "bearer token",
			wantToken:  "token",
			userID:     7,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			authenticator := mocks.NewAuthenticator(t)
			if tt.wantToken != "" {
				authenticator.On("Authenticate", mock.Anything, tt.wantToken).Return(tt.userID, tt.authErr)
			}

			contextManager := httpcontext.NewManager()
			m := NewAuthenticate(authenticator, contextManager, testutil.MakeNoopLogger())

			engine := gin.New()
			engine.GET("/private", m.Handle, func(c *gin.Context) {
				userID, ok := contextManager.GetUserIDFromContext(c.Request.Context())
				assert.True(t, ok)
				c.String(http.StatusOK, strconv.FormatInt(userID, 10))
			})

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			switch tt.wantStatus {
			case http.StatusOK:
				assert.Equal(t, strconv.FormatInt(tt.userID, 10), rec.Body.String())
			case http.StatusUnauthorized:
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
				assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, rec.Body.String())
			}
		})
	}
}
