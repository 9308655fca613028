package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dtroode/cookbook-server/internal/logger"
	"github.com/dtroode/cookbook-server/internal/model"
	"github.com/dtroode/cookbook-server/internal/normalize"
)

// Ingredient owns the ingredient table. Names are normalized before every
// lookup and insert.
type Ingredient struct {
	stores model.Stores
	logger *logger.Logger
}

func NewIngredient(stores model.Stores, logger *logger.Logger) *Ingredient {
	return &Ingredient{
		stores: stores,
		logger: logger,
	}
}

func (s *Ingredient) List(ctx context.Context) ([]model.Ingredient, error) {
	ingredients, err := s.stores.Ingredients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return ingredients, nil
}

// Create adds an ingredient and fails with ErrAlreadyExists when the
// normalized name is taken.
func (s *Ingredient) Create(ctx context.Context, name string) (model.Ingredient, error) {
	name, err := ingredientName(name)
	if err != nil {
		return model.Ingredient{}, err
	}

	_, err = s.stores.Ingredients.GetByName(ctx, name)
	if err == nil {
		return model.Ingredient{}, model.NewAlreadyExistsError("ingredient '%s' already exists", name)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Ingredient{}, fmt.Errorf("failed to get ingredient by name: %w", err)
	}

	ingredient, err := s.stores.Ingredients.Create(ctx, name)
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.Ingredient{}, model.NewAlreadyExistsError("ingredient '%s' already exists", name)
	}
	if err != nil {
		s.logger.Error("Ingredient service: failed to create ingredient",
			"name", name,
			"error", err.Error())
		return model.Ingredient{}, fmt.Errorf("failed to create ingredient: %w", err)
	}

	s.logger.Info("Ingredient service: ingredient created",
		"ingredient_id", ingredient.ID,
		"name", ingredient.Name)

	return ingredient, nil
}

// GetOrCreate resolves a name to an ingredient through store, creating it
// when missing. A concurrent insert of the same name is resolved by reading
// the winner's row.
func (s *Ingredient) GetOrCreate(ctx context.Context, store model.IngredientStore, name string) (model.Ingredient, error) {
	name, err := ingredientName(name)
	if err != nil {
		return model.Ingredient{}, err
	}

	ingredient, err := store.GetByName(ctx, name)
	if err == nil {
		return ingredient, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Ingredient{}, fmt.Errorf("failed to get ingredient by name: %w", err)
	}

	ingredient, err = store.Create(ctx, name)
	if err == nil {
		s.logger.Debug("Ingredient service: ingredient created on demand",
			"ingredient_id", ingredient.ID,
			"name", name)
		return ingredient, nil
	}
	if !errors.Is(err, model.ErrAlreadyExists) {
		return model.Ingredient{}, fmt.Errorf("failed to create ingredient: %w", err)
	}

	ingredient, err = store.GetByName(ctx, name)
	if err != nil {
		return model.Ingredient{}, fmt.Errorf("failed to get ingredient after conflict: %w", err)
	}
	return ingredient, nil
}

// Delete removes an ingredient and, through the cascading foreign key, its
// recipe associations.
func (s *Ingredient) Delete(ctx context.Context, id int64) (model.Ingredient, error) {
	ingredient, err := s.stores.Ingredients.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Ingredient{}, model.NewNotFoundError("ingredient %d not found", id)
	}
	if err != nil {
		return model.Ingredient{}, fmt.Errorf("failed to delete ingredient: %w", err)
	}

	s.logger.Info("Ingredient service: ingredient deleted",
		"ingredient_id", id)

	return ingredient, nil
}

func ingredientName(name string) (string, error) {
	name = normalize.Name(name)
	if name == "" {
		return "", model.NewValidationError("ingredient name must not be empty")
	}
	if utf8.RuneCountInString(name) > model.MaxIngredientNameLength {
		return "", model.NewValidationError("ingredient name must be at most %d characters", model.MaxIngredientNameLength)
	}
	return name, nil
}
