package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/cookbook-server/internal/mocks"
	"github.com/dtroode/cookbook-server/internal/model"
)

type fixture struct {
	users       *mocks.UserStore
	ingredients *mocks.IngredientStore
	recipes     *mocks.RecipeStore
	tokens      *mocks.RefreshTokenStore
	tx          *mocks.Transactor
}

func newFixture(t *testing.T) *fixture {
	return &fixture{
		users:       mocks.NewUserStore(t),
		ingredients: mocks.NewIngredientStore(t),
		recipes:     mocks.NewRecipeStore(t),
		tokens:      mocks.NewRefreshTokenStore(t),
		tx:          mocks.NewTransactor(t),
	}
}

func (f *fixture) stores() model.Stores {
	return model.Stores{
		Users:         f.users,
		Ingredients:   f.ingredients,
		Recipes:       f.recipes,
		RefreshTokens: f.tokens,
	}
}

// runTx makes the transactor run fn against the fixture stores and return its error.
func (f *fixture) runTx() {
	f.tx.On("WithinTx", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(context.Context, model.Stores) error) error {
			return fn(ctx, f.stores())
		},
	)
}
