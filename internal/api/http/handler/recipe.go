package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/cookbook-server/internal/logger"
	"github.com/dtroode/cookbook-server/internal/model"
)

// multipartOverhead is the slack allowed on top of the image limit for
// multipart boundaries and part headers.
const multipartOverhead = 64 << 10

// RecipeService defines recipe catalog operations.
type RecipeService interface {
	List(ctx context.Context) ([]model.Recipe, error)
	Get(ctx context.Context, id int64) (model.Recipe, error)
	Create(ctx context.Context, params model.CreateRecipeParams) (model.Recipe, error)
	Update(ctx context.Context, id int64, params model.UpdateRecipeParams) (model.Recipe, error)
	Delete(ctx context.Context, id int64) (model.Recipe, error)
	UploadImage(ctx context.Context, id int64, image model.RecipeImage) (model.Recipe, error)
	GetImage(ctx context.Context, id int64) (model.Object, error)
}

// Recipe handles HTTP endpoints under /recipes.
type Recipe struct {
	recipeService RecipeService
	maxImageSize  int64
	logger        *logger.Logger
}

// NewRecipe creates a new Recipe handler. Uploaded images larger than
// maxImageSize bytes are rejected.
func NewRecipe(recipeService RecipeService, maxImageSize int64, logger *logger.Logger) *Recipe {
	return &Recipe{
		recipeService: recipeService,
		maxImageSize:  maxImageSize,
		logger:        logger,
	}
}

func (h *Recipe) List(c *gin.Context) {
	recipes, err := h.recipeService.List(c.Request.Context())
	if err != nil {
		logFailure(h.logger, err, "Recipe handler: list failed")
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRecipeResponses(recipes))
}

func (h *Recipe) Get(c *gin.Context) {
	id, err := pathID(c, "recipe_id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	recipe, err := h.recipeService.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRecipeResponse(recipe))
}

func (h *Recipe) Create(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, bindError(err))
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), model.CreateRecipeParams{
		Title:       req.Title,
		Description: *req.Description,
		Ingredients: ingredientNames(req.Ingredients),
	})
	if err != nil {
		logFailure(h.logger, err, "Recipe handler: create failed",
			"title", req.Title)
		AbortWithError(c, err)
		return
	}

	h.logger.Info("Recipe handler: recipe created",
		"recipe_id", recipe.ID)

	c.JSON(http.StatusCreated, newRecipeResponse(recipe))
}

// Update applies a partial update. An ingredients list, even an empty one,
// replaces the whole set.
func (h *Recipe) Update(c *gin.Context) {
	id, err := pathID(c, "recipe_id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, bindError(err))
		return
	}

	params := model.UpdateRecipeParams{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Ingredients != nil {
		names := ingredientNames(*req.Ingredients)
		params.Ingredients = &names
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), id, params)
	if err != nil {
		logFailure(h.logger, err, "Recipe handler: update failed",
			"recipe_id", id)
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRecipeResponse(recipe))
}

// Delete removes a recipe and responds with the removed entity.
func (h *Recipe) Delete(c *gin.Context) {
	id, err := pathID(c, "recipe_id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	recipe, err := h.recipeService.Delete(c.Request.Context(), id)
	if err != nil {
		logFailure(h.logger, err, "Recipe handler: delete failed",
			"recipe_id", id)
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRecipeResponse(recipe))
}

// UploadImage attaches the multipart "image" file to a recipe, replacing any
// previous one.
func (h *Recipe) UploadImage(c *gin.Context) {
	id, err := pathID(c, "recipe_id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxImageSize+multipartOverhead)

	header, err := c.FormFile("image")
	if err != nil {
		AbortWithError(c, model.NewValidationError("image file is required and must not exceed %d bytes", h.maxImageSize))
		return
	}
	if header.Size == 0 {
		AbortWithError(c, model.NewValidationError("image file is empty"))
		return
	}
	if header.Size > h.maxImageSize {
		AbortWithError(c, model.NewValidationError("image must not exceed %d bytes", h.maxImageSize))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		AbortWithError(c, model.NewValidationError("unsupported content type '%s'", contentType))
		return
	}

	file, err := header.Open()
	if err != nil {
		logFailure(h.logger, err, "Recipe handler: failed to open uploaded image",
			"recipe_id", id)
		AbortWithError(c, err)
		return
	}
	defer file.Close()

	recipe, err := h.recipeService.UploadImage(c.Request.Context(), id, model.RecipeImage{
		Body:        file,
		Size:        header.Size,
		ContentType: contentType,
	})
	if err != nil {
		logFailure(h.logger, err, "Recipe handler: image upload failed",
			"recipe_id", id)
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRecipeResponse(recipe))
}

// GetImage streams the recipe image.
func (h *Recipe) GetImage(c *gin.Context) {
	id, err := pathID(c, "recipe_id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	object, err := h.recipeService.GetImage(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	defer object.Body.Close()

	c.DataFromReader(http.StatusOK, object.Size, object.ContentType, object.Body, nil)
}
