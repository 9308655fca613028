package model

import (
	"context"
	"io"
	"time"
)

// Column limits for recipes.
const (
	MaxRecipeTitleLength       = 255
	MaxRecipeDescriptionLength = 10000
)

// RecipeStore defines persistence operations for recipes and their
// ingredient associations.
type RecipeStore interface {
	List(ctx context.Context) ([]Recipe, error)
	GetByID(ctx context.Context, id int64) (Recipe, error)
	// GetForUpdate loads a recipe and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id int64) (Recipe, error)
	Create(ctx context.Context, recipe Recipe) (Recipe, error)
	Update(ctx context.Context, recipe Recipe) (Recipe, error)
	Delete(ctx context.Context, id int64) error
	// ReplaceIngredients drops every association of the recipe and links the given ingredients.
	ReplaceIngredients(ctx context.Context, recipeID int64, ingredientIDs []int64) error
	SetImageKey(ctx context.Context, recipeID int64, key *string) error
}

// Recipe represents a stored recipe with its ingredient set.
type Recipe struct {
	ID          int64
	Title       string
	Description string
	ImageKey    *string
	Ingredients []Ingredient
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasImage reports whether an image is attached to the recipe.
func (r Recipe) HasImage() bool {
	return r.ImageKey != nil && *r.ImageKey != ""
}

// CreateRecipeParams contains parameters to create a recipe.
type CreateRecipeParams struct {
	Title       string
	Description string
	Ingredients []string
}

// UpdateRecipeParams describes a partial update. Nil fields are left as is;
// a non-nil Ingredients (even empty) replaces the whole association set.
type UpdateRecipeParams struct {
	Title       *string
	Description *string
	Ingredients *[]string
}

// RecipeImage is an uploaded image attached to a recipe.
type RecipeImage struct {
	Body        io.Reader
	Size        int64
	ContentType string
}
