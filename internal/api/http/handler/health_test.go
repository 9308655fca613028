package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/cookbook-server/internal/mocks"
	"github.com/dtroode/cookbook-server/internal/testutil"
)

func TestHealth_Check(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "ok", wantStatus: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "database down", pingErr: errors.New("refused"), wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := mocks.NewHealthChecker(t)
			db.On("Ping", mock.Anything).Return(tt.pingErr)

			engine := gin.New()
			engine.GET("/health", NewHealth(db, testutil.MakeNoopLogger()).Check)

			rec := perform(engine, http.MethodGet, "/health", nil, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
