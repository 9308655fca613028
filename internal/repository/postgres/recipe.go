package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/cookbook-server/internal/model"
)

var _ model.RecipeStore = (*RecipeRepository)(nil)

const recipeColumns = `id, title, description, image_key, created_at, updated_at`

type RecipeRepository struct {
	db DBTX
}

func NewRecipeRepository(db DBTX) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func (r *RecipeRepository) List(ctx context.Context) ([]model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]model.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	rows.Close()

	if err := r.attachIngredients(ctx, recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}

func (r *RecipeRepository) GetByID(ctx context.Context, id int64) (model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *RecipeRepository) GetForUpdate(ctx context.Context, id int64) (model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1 FOR UPDATE`
	return r.get(ctx, query, id)
}

func (r *RecipeRepository) get(ctx context.Context, query string, id int64) (model.Recipe, error) {
	recipe, err := scanRecipe(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Recipe{}, model.ErrNotFound
		}
		return model.Recipe{}, fmt.Errorf("failed to get recipe: %w", err)
	}

	recipes := []model.Recipe{recipe}
	if err := r.attachIngredients(ctx, recipes); err != nil {
		return model.Recipe{}, err
	}

	return recipes[0], nil
}

// Create inserts the recipe row only; associations are written by ReplaceIngredients.
func (r *RecipeRepository) Create(ctx context.Context, recipe model.Recipe) (model.Recipe, error) {
	query := `INSERT INTO recipes (title, description, image_key)
			  VALUES ($1, $2, $3)
			  RETURNING ` + recipeColumns

	saved, err := scanRecipe(r.db.QueryRow(ctx, query, recipe.Title, recipe.Description, recipe.ImageKey))
	if err != nil {
		return model.Recipe{}, fmt.Errorf("failed to create recipe: %w", err)
	}
	saved.Ingredients = []model.Ingredient{}

	return saved, nil
}

func (r *RecipeRepository) Update(ctx context.Context, recipe model.Recipe) (model.Recipe, error) {
	query := `UPDATE recipes SET title = $2, description = $3, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + recipeColumns

	saved, err := scanRecipe(r.db.QueryRow(ctx, query, recipe.ID, recipe.Title, recipe.Description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Recipe{}, model.ErrNotFound
		}
		return model.Recipe{}, fmt.Errorf("failed to update recipe: %w", err)
	}
	saved.Ingredients = recipe.Ingredients

	return saved, nil
}

// Delete removes the recipe; its association rows go with it via ON DELETE CASCADE.
func (r *RecipeRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM recipes WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *RecipeRepository) ReplaceIngredients(ctx context.Context, recipeID int64, ingredientIDs []int64) error {
	const deleteQuery = `DELETE FROM recipe_ingredients WHERE recipe_id = $1`
	const insertQuery = `
        INSERT INTO recipe_ingredients (recipe_id, ingredient_id)
        SELECT $1, unnest($2::bigint[])
        ON CONFLICT DO NOTHING
    `

	if _, err := r.db.Exec(ctx, deleteQuery, recipeID); err != nil {
		return fmt.Errorf("failed to clear recipe ingredients: %w", err)
	}
	if len(ingredientIDs) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, insertQuery, recipeID, ingredientIDs); err != nil {
		return fmt.Errorf("failed to link recipe ingredients: %w", err)
	}
	return nil
}

func (r *RecipeRepository) SetImageKey(ctx context.Context, recipeID int64, key *string) error {
	const query = `UPDATE recipes SET image_key = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, recipeID, key)
	if err != nil {
		return fmt.Errorf("failed to set recipe image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// attachIngredients loads the ingredient sets of recipes in one query,
// ordered by ingredient id.
func (r *RecipeRepository) attachIngredients(ctx context.Context, recipes []model.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	const query = `
        SELECT ri.recipe_id, i.id, i.name
        FROM recipe_ingredients ri
        JOIN ingredients i ON i.id = ri.ingredient_id
        WHERE ri.recipe_id = ANY($1)
        ORDER BY ri.recipe_id, i.id
    `

	ids := make([]int64, len(recipes))
	byID := make(map[int64]int, len(recipes))
	for i := range recipes {
		ids[i] = recipes[i].ID
		byID[recipes[i].ID] = i
		recipes[i].Ingredients = []model.Ingredient{}
	}

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load recipe ingredients: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var recipeID int64
		var ing model.Ingredient
		if err := rows.Scan(&recipeID, &ing.ID, &ing.Name); err != nil {
			return fmt.Errorf("failed to scan recipe ingredient: %w", err)
		}
		if idx, ok := byID[recipeID]; ok {
			recipes[idx].Ingredients = append(recipes[idx].Ingredients, ing)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate recipe ingredients: %w", err)
	}

	return nil
}

func scanRecipe(row pgx.Row) (model.Recipe, error) {
	var recipe model.Recipe
	err := row.Scan(&recipe.ID, &recipe.Title, &recipe.Description, &recipe.ImageKey, &recipe.CreatedAt, &recipe.UpdatedAt)
	return recipe, err
}
