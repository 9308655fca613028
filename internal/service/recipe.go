package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dtroode/cookbook-server/internal/logger"
	"github.com/dtroode/cookbook-server/internal/model"
	"github.com/dtroode/cookbook-server/internal/normalize"
)

// Recipe creates and updates recipes together with their ingredient sets.
// Every write that touches more than one row runs in one transaction.
type Recipe struct {
	stores      model.Stores
	transactor  model.Transactor
	ingredients *Ingredient
	storage     model.Storage
	logger      *logger.Logger
}

func NewRecipe(
	stores model.Stores,
	transactor model.Transactor,
	ingredients *Ingredient,
	storage model.Storage,
	logger *logger.Logger,
) *Recipe {
	return &Recipe{
		stores:      stores,
		transactor:  transactor,
		ingredients: ingredients,
		storage:     storage,
		logger:      logger,
	}
}

func (s *Recipe) List(ctx context.Context) ([]model.Recipe, error) {
	recipes, err := s.stores.Recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

func (s *Recipe) Get(ctx context.Context, id int64) (model.Recipe, error) {
	recipe, err := s.stores.Recipes.GetByID(ctx, id)
	if err != nil {
		return model.Recipe{}, recipeError(id, err)
	}
	return recipe, nil
}

// Create stores a recipe and its ingredient associations atomically, creating
// unknown ingredients along the way.
func (s *Recipe) Create(ctx context.Context, params model.CreateRecipeParams) (model.Recipe, error) {
	title, err := recipeTitle(params.Title)
	if err != nil {
		return model.Recipe{}, err
	}
	if err := validateDescription(params.Description); err != nil {
		return model.Recipe{}, err
	}
	names, err := ingredientNames(params.Ingredients)
	if err != nil {
		return model.Recipe{}, err
	}

	var created model.Recipe
	err = s.transactor.WithinTx(ctx, func(ctx context.Context, stores model.Stores) error {
		ingredients, err := s.resolveIngredients(ctx, stores.Ingredients, names)
		if err != nil {
			return err
		}

		recipe, err := stores.Recipes.Create(ctx, model.Recipe{
			Title:       title,
			Description: params.Description,
		})
		if err != nil {
			return fmt.Errorf("failed to create recipe: %w", err)
		}

		if err := stores.Recipes.ReplaceIngredients(ctx, recipe.ID, ingredientIDs(ingredients)); err != nil {
			return fmt.Errorf("failed to link ingredients: %w", err)
		}

		recipe.Ingredients = ingredients
		created = recipe
		return nil
	})
	if err != nil {
		s.logger.Error("Recipe service: failed to create recipe",
			"title", title,
			"error", err.Error())
		return model.Recipe{}, err
	}

	s.logger.Info("Recipe service: recipe created",
		"recipe_id", created.ID,
		"ingredients", len(created.Ingredients))

	return created, nil
}

// Update applies a partial update. A present ingredient list replaces the
// whole association set.
func (s *Recipe) Update(ctx context.Context, id int64, params model.UpdateRecipeParams) (model.Recipe, error) {
	var (
		title string
		names []string
		err   error
	)
	if params.Title != nil {
		if title, err = recipeTitle(*params.Title); err != nil {
			return model.Recipe{}, err
		}
	}
	if params.Description != nil {
		if err := validateDescription(*params.Description); err != nil {
			return model.Recipe{}, err
		}
	}
	if params.Ingredients != nil {
		if names, err = ingredientNames(*params.Ingredients); err != nil {
			return model.Recipe{}, err
		}
	}

	var updated model.Recipe
	err = s.transactor.WithinTx(ctx, func(ctx context.Context, stores model.Stores) error {
		recipe, err := stores.Recipes.GetForUpdate(ctx, id)
		if err != nil {
			return recipeError(id, err)
		}

		if params.Title != nil || params.Description != nil {
			if params.Title != nil {
				recipe.Title = title
			}
			if params.Description != nil {
				recipe.Description = *params.Description
			}
			if recipe, err = stores.Recipes.Update(ctx, recipe); err != nil {
				return recipeError(id, err)
			}
		}

		if params.Ingredients != nil {
			ingredients, err := s.resolveIngredients(ctx, stores.Ingredients, names)
			if err != nil {
				return err
			}
			if err := stores.Recipes.ReplaceIngredients(ctx, id, ingredientIDs(ingredients)); err != nil {
				return fmt.Errorf("failed to link ingredients: %w", err)
			}
			recipe.Ingredients = ingredients
		}

		updated = recipe
		return nil
	})
	if err != nil {
		return model.Recipe{}, err
	}

	s.logger.Info("Recipe service: recipe updated",
		"recipe_id", id)

	return updated, nil
}

// Delete removes a recipe and returns it as it was. Its image is removed
// from storage after the transaction commits.
func (s *Recipe) Delete(ctx context.Context, id int64) (model.Recipe, error) {
	var deleted model.Recipe
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, stores model.Stores) error {
		recipe, err := stores.Recipes.GetForUpdate(ctx, id)
		if err != nil {
			return recipeError(id, err)
		}
		if err := stores.Recipes.Delete(ctx, id); err != nil {
			return recipeError(id, err)
		}
		deleted = recipe
		return nil
	})
	if err != nil {
		return model.Recipe{}, err
	}

	if deleted.HasImage() {
		s.removeImage(ctx, *deleted.ImageKey)
	}

	s.logger.Info("Recipe service: recipe deleted",
		"recipe_id", id)

	return deleted, nil
}

// UploadImage stores image under a fresh key and attaches it to the recipe,
// replacing a previous image.
func (s *Recipe) UploadImage(ctx context.Context, id int64, image model.RecipeImage) (model.Recipe, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return model.Recipe{}, err
	}

	key := fmt.Sprintf("recipes/%d/%s", id, uuid.NewString())
	if err := s.storage.Upload(ctx, key, image.Body, image.Size, image.ContentType); err != nil {
		s.logger.Error("Recipe service: failed to upload image",
			"recipe_id", id,
			"error", err.Error())
		return model.Recipe{}, fmt.Errorf("failed to upload image: %w", err)
	}

	var previous *string
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, stores model.Stores) error {
		recipe, err := stores.Recipes.GetForUpdate(ctx, id)
		if err != nil {
			return recipeError(id, err)
		}
		previous = recipe.ImageKey
		if err := stores.Recipes.SetImageKey(ctx, id, &key); err != nil {
			return recipeError(id, err)
		}
		return nil
	})
	if err != nil {
		s.removeImage(ctx, key)
		return model.Recipe{}, err
	}

	if previous != nil && *previous != "" {
		s.removeImage(ctx, *previous)
	}

	s.logger.Info("Recipe service: image attached",
		"recipe_id", id,
		"key", key)

	return s.Get(ctx, id)
}

// GetImage opens the image attached to the recipe. The caller closes Body.
func (s *Recipe) GetImage(ctx context.Context, id int64) (model.Object, error) {
	recipe, err := s.Get(ctx, id)
	if err != nil {
		return model.Object{}, err
	}
	if !recipe.HasImage() {
		return model.Object{}, model.NewNotFoundError("recipe %d has no image", id)
	}

	obj, err := s.storage.Download(ctx, *recipe.ImageKey)
	if errors.Is(err, model.ErrNotFound) {
		return model.Object{}, model.NewNotFoundError("recipe %d has no image", id)
	}
	if err != nil {
		return model.Object{}, fmt.Errorf("failed to download image: %w", err)
	}
	return obj, nil
}

func (s *Recipe) resolveIngredients(ctx context.Context, store model.IngredientStore, names []string) ([]model.Ingredient, error) {
	ingredients := make([]model.Ingredient, 0, len(names))
	seen := make(map[int64]struct{}, len(names))
	for _, name := range names {
		ingredient, err := s.ingredients.GetOrCreate(ctx, store, name)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[ingredient.ID]; ok {
			continue
		}
		seen[ingredient.ID] = struct{}{}
		ingredients = append(ingredients, ingredient)
	}

	slices.SortFunc(ingredients, func(a, b model.Ingredient) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return ingredients, nil
}

func (s *Recipe) removeImage(ctx context.Context, key string) {
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Warn("Recipe service: failed to remove image",
			"key", key,
			"error", err.Error())
	}
}

func recipeError(id int64, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewNotFoundError("recipe %d not found", id)
	}
	return fmt.Errorf("recipe %d: %w", id, err)
}

func recipeTitle(title string) (string, error) {
	title = normalize.Name(title)
	if title == "" {
		return "", model.NewValidationError("title must not be empty")
	}
	if utf8.RuneCountInString(title) > model.MaxRecipeTitleLength {
		return "", model.NewValidationError("title must be at most %d characters", model.MaxRecipeTitleLength)
	}
	return title, nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > model.MaxRecipeDescriptionLength {
		return model.NewValidationError("description must be at most %d characters", model.MaxRecipeDescriptionLength)
	}
	return nil
}

// ingredientNames validates and normalizes requested names, collapsing duplicates.
func ingredientNames(names []string) ([]string, error) {
	for _, name := range names {
		if _, err := ingredientName(name); err != nil {
			return nil, err
		}
	}
	return normalize.Names(names), nil
}

func ingredientIDs(ingredients []model.Ingredient) []int64 {
	ids := make([]int64, len(ingredients))
	for i, ing := range ingredients {
		ids[i] = ing.ID
	}
	return ids
}
