package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/cookbook-server/internal/logger"
	"github.com/dtroode/cookbook-server/internal/model"
)

// IngredientService defines ingredient catalog operations.
type IngredientService interface {
	List(ctx context.Context) ([]model.Ingredient, error)
	Create(ctx context.Context, name string) (model.Ingredient, error)
	Delete(ctx context.Context, id int64) (model.Ingredient, error)
}

// Ingredient handles HTTP endpoints under /ingredients.
type Ingredient struct {
	ingredientService IngredientService
	logger            *logger.Logger
}

// NewIngredient creates a new Ingredient handler.
func NewIngredient(ingredientService IngredientService, logger *logger.Logger) *Ingredient {
	return &Ingredient{ingredientService: ingredientService, logger: logger}
}

func (h *Ingredient) List(c *gin.Context) {
	ingredients, err := h.ingredientService.List(c.Request.Context())
	if err != nil {
		logFailure(h.logger, err, "Ingredient handler: list failed")
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newIngredientResponses(ingredients))
}

func (h *Ingredient) Create(c *gin.Context) {
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, bindError(err))
		return
	}

	ingredient, err := h.ingredientService.Create(c.Request.Context(), req.Name)
	if err != nil {
		logFailure(h.logger, err, "Ingredient handler: create failed",
			"name", req.Name)
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newIngredientResponse(ingredient))
}

// Delete removes an ingredient and responds with the removed entity.
func (h *Ingredient) Delete(c *gin.Context) {
	id, err := pathID(c, "ingredient_id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	ingredient, err := h.ingredientService.Delete(c.Request.Context(), id)
	if err != nil {
		logFailure(h.logger, err, "Ingredient handler: delete failed",
			"ingredient_id", id)
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newIngredientResponse(ingredient))
}
