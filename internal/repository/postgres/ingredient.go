package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/cookbook-server/internal/model"
)

var _ model.IngredientStore = (*IngredientRepository)(nil)

type IngredientRepository struct {
	db DBTX
}

func NewIngredientRepository(db DBTX) *IngredientRepository {
	return &IngredientRepository{db: db}
}

func (r *IngredientRepository) List(ctx context.Context) ([]model.Ingredient, error) {
	const query = `SELECT id, name FROM ingredients ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := make([]model.Ingredient, 0)
	for rows.Next() {
		var ing model.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ingredients: %w", err)
	}

	return ingredients, nil
}

func (r *IngredientRepository) GetByName(ctx context.Context, name string) (model.Ingredient, error) {
	const query = `SELECT id, name FROM ingredients WHERE name = $1`

	var ing model.Ingredient
	err := r.db.QueryRow(ctx, query, name).Scan(&ing.ID, &ing.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Ingredient{}, model.ErrNotFound
		}
		return model.Ingredient{}, fmt.Errorf("failed to get ingredient by name: %w", err)
	}

	return ing, nil
}

// Create relies on ON CONFLICT so a duplicate name, including one inserted by
// a concurrent transaction, does not abort the caller's transaction.
func (r *IngredientRepository) Create(ctx context.Context, name string) (model.Ingredient, error) {
	const query = `
        INSERT INTO ingredients (name) VALUES ($1)
        ON CONFLICT (name) DO NOTHING
        RETURNING id, name
    `

	var ing model.Ingredient
	err := r.db.QueryRow(ctx, query, name).Scan(&ing.ID, &ing.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return model.Ingredient{}, model.ErrAlreadyExists
		}
		return model.Ingredient{}, fmt.Errorf("failed to create ingredient: %w", err)
	}

	return ing, nil
}

func (r *IngredientRepository) Delete(ctx context.Context, id int64) (model.Ingredient, error) {
	const query = `DELETE FROM ingredients WHERE id = $1 RETURNING id, name`

	var ing model.Ingredient
	err := r.db.QueryRow(ctx, query, id).Scan(&ing.ID, &ing.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Ingredient{}, model.ErrNotFound
		}
		return model.Ingredient{}, fmt.Errorf("failed to delete ingredient: %w", err)
	}

	return ing, nil
}
