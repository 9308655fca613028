package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/cookbook-server/internal/model"
)

// pathID reads a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, model.NewValidationError("%s must be a positive integer", name)
	}
	return id, nil
}
