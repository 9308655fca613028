package model

import "context"

// MaxIngredientNameLength is the column limit for ingredient names.
const MaxIngredientNameLength = 100

// IngredientStore defines persistence operations for ingredients.
type IngredientStore interface {
	List(ctx context.Context) ([]Ingredient, error)
	GetByName(ctx context.Context, name string) (Ingredient, error)
	// Create inserts a new ingredient. It returns ErrAlreadyExists when the
	// name is taken, without aborting the surrounding transaction.
	Create(ctx context.Context, name string) (Ingredient, error)
	Delete(ctx context.Context, id int64) (Ingredient, error)
}

// Ingredient is a globally unique, normalized ingredient name.
type Ingredient struct {
	ID   int64
	Name string
}
