package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/cookbook-server/internal/mocks"
	"github.com/dtroode/cookbook-server/internal/model"
	"github.com/dtroode/cookbook-server/internal/testutil"
)

func newRecipeService(t *testing.T, f *fixture) (*Recipe, *mocks.Storage) {
	storage := mocks.NewStorage(t)
	log := testutil.MakeNoopLogger()
	return NewRecipe(f.stores(), f.tx, NewIngredient(f.stores(), log), storage, log), storage
}

func strPtr(s string) *string { return &s }

func TestRecipe_Create(t *testing.T) {
	f := newFixture(t)
	f.runTx()
	svc, _ := newRecipeService(t, f)

	f.ingredients.On("GetByName", mock.Anything, "flour").Return(model.Ingredient{ID: 2, Name: "flour"}, nil).Once()
	f.ingredients.On("GetByName", mock.Anything, "eggs").Return(model.Ingredient{}, model.ErrNotFound).Once()
	f.ingredients.On("Create", mock.Anything, "eggs").Return(model.Ingredient{ID: 1, Name: "eggs"}, nil).Once()
	f.recipes.On("Create", mock.Anything, model.Recipe{Title: "pancakes", Description: "fluffy"}).
		Return(model.Recipe{ID: 10, Title: "pancakes", Description: "fluffy", Ingredients: []model.Ingredient{}}, nil).Once()
	f.recipes.On("ReplaceIngredients", mock.Anything, int64(10), []int64{1, 2}).Return(nil).Once()

	recipe, err := svc.Create(context.Background(), model.CreateRecipeParams{
		Title:       " Pancakes ",
		Description: "fluffy",
		Ingredients: []string{"Flour", " eggs ", "EGGS"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), recipe.ID)
	assert.Equal(t, []model.Ingredient{{ID: 1, Name: "eggs"}, {ID: 2, Name: "flour"}}, recipe.Ingredients)
}

func TestRecipe_Create_FailureAborts(t *testing.T) {
	f := newFixture(t)
	f.runTx()
	svc, _ := newRecipeService(t, f)

	f.ingredients.On("GetByName", mock.Anything, "flour").Return(model.Ingredient{}, model.ErrNotFound).Once()
	f.ingredients.On("Create", mock.Anything, "flour").Return(model.Ingredient{ID: 1, Name: "flour"}, nil).Once()
	f.recipes.On("Create", mock.Anything, mock.Anything).Return(model.Recipe{ID: 10}, nil).Once()
	f.recipes.On("ReplaceIngredients", mock.Anything, int64(10), []int64{1}).Return(assert.AnError).Once()

	_, err := svc.Create(context.Background(), model.CreateRecipeParams{
		Title:       "bread",
		Ingredients: []string{"flour"},
	})
	require.ErrorIs(t, err, assert.AnError)
}

func TestRecipe_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params model.CreateRecipeParams
	}{
		{name: "blank title", params: model.CreateRecipeParams{Title: "  "}},
		{name: "long title", params: model.CreateRecipeParams{Title: strings.Repeat("t", model.MaxRecipeTitleLength+1)}},
		{name: "long description", params: model.CreateRecipeParams{Title: "t", Description: strings.Repeat("d", model.MaxRecipeDescriptionLength+1)}},
		{name: "blank ingredient", params: model.CreateRecipeParams{Title: "t", Ingredients: []string{"salt", " "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			svc, _ := newRecipeService(t, f)

			_, err := svc.Create(context.Background(), tt.params)
			require.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestRecipe_Update_DescriptionOnly(t *testing.T) {
	f := newFixture(t)
	f.runTx()
	svc, _ := newRecipeService(t, f)

	ingredients := []model.Ingredient{{ID: 1, Name: "eggs"}}
	existing := model.Recipe{ID: 1, Title: "omelette", Description: "old", Ingredients: ingredients}
	changed := existing
	changed.Description = "x"

	f.recipes.On("GetForUpdate", mock.Anything, int64(1)).Return(existing, nil).Once()
	f.recipes.On("Update", mock.Anything, changed).Return(changed, nil).Once()

	recipe, err := svc.Update(context.Background(), 1, model.UpdateRecipeParams{Description: strPtr("x")})
	require.NoError(t, err)
	assert.Equal(t, "omelette", recipe.Title)
	assert.Equal(t, "x", recipe.Description)
	assert.Equal(t, ingredients, recipe.Ingredients)
	f.recipes.AssertNotCalled(t, "ReplaceIngredients", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecipe_Update_ReplacesIngredients(t *testing.T) {
	f := newFixture(t)
	f.runTx()
	svc, _ := newRecipeService(t, f)

	existing := model.Recipe{ID: 1, Title: "omelette", Ingredients: []model.Ingredient{{ID: 1, Name: "eggs"}}}
	f.recipes.On("GetForUpdate", mock.Anything, int64(1)).Return(existing, nil).Once()
	f.ingredients.On("GetByName", mock.Anything, "milk").Return(model.Ingredient{ID: 4, Name: "milk"}, nil).Once()
	f.recipes.On("ReplaceIngredients", mock.Anything, int64(1), []int64{4}).Return(nil).Once()

	names := []string{"Milk"}
	recipe, err := svc.Update(context.Background(), 1, model.UpdateRecipeParams{Ingredients: &names})
	require.NoError(t, err)
	assert.Equal(t, []model.Ingredient{{ID: 4, Name: "milk"}}, recipe.Ingredients)
	f.recipes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRecipe_Update_EmptyIngredientsClears(t *testing.T) {
	f := newFixture(t)
	f.runTx()
	svc, _ := newRecipeService(t, f)

	existing := model.Recipe{ID: 1, Title: "omelette", Ingredients: []model.Ingredient{{ID: 1, Name: "eggs"}}}
	f.recipes.On("GetForUpdate", mock.Anything, int64(1)).Return(existing, nil).Once()
	f.recipes.On("ReplaceIngredients", mock.Anything, int64(1), []int64{}).Return(nil).Once()

	empty := []string{}
	recipe, err := svc.Update(context.Background(), 1, model.UpdateRecipeParams{Ingredients: &empty})
	require.NoError(t, err)
	assert.NotNil(t, recipe.Ingredients)
	assert.Empty(t, recipe.Ingredients)
}

func TestRecipe_Update_NotFound(t *testing.T) {
	f := newFixture(t)
	f.runTx()
	svc, _ := newRecipeService(t, f)

	f.recipes.On("GetForUpdate", mock.Anything, int64(9)).Return(model.Recipe{}, model.ErrNotFound).Once()

	_, err := svc.Update(context.Background(), 9, model.UpdateRecipeParams{Title: strPtr("new")})
	require.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, "recipe 9 not found", err.Error())
}

func TestRecipe_Get(t *testing.T) {
	f := newFixture(t)
	svc, _ := newRecipeService(t, f)

	f.recipes.On("GetByID", mock.Anything, int64(1)).Return(model.Recipe{ID: 1}, nil).Once()
	f.recipes.On("GetByID", mock.Anything, int64(2)).Return(model.Recipe{}, model.ErrNotFound).Once()
	f.recipes.On("List", mock.Anything).Return([]model.Recipe{{ID: 1}}, nil).Once()

	got, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = svc.Get(context.Background(), 2)
	require.ErrorIs(t, err, model.ErrNotFound)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRecipe_Delete(t *testing.T) {
	t.Run("removes image after commit", func(t *testing.T) {
		f := newFixture(t)
		f.runTx()
		svc, storage := newRecipeService(t, f)

		existing := model.Recipe{ID: 1, Title: "t", ImageKey: strPtr("recipes/1/a"), Ingredients: []model.Ingredient{{ID: 1, Name: "eggs"}}}
		f.recipes.On("GetForUpdate", mock.Anything, int64(1)).Return(existing, nil).Once()
		f.recipes.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
		storage.On("Delete", mock.Anything, "recipes/1/a").Return(assert.AnError).Once()

		deleted, err := svc.Delete(context.Background(), 1)
		require.NoError(t, err, "image cleanup failures are not reported")
		assert.Equal(t, existing, deleted)
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t)
		f.runTx()
		svc, _ := newRecipeService(t, f)

		f.recipes.On("GetForUpdate", mock.Anything, int64(9)).Return(model.Recipe{}, model.ErrNotFound).Once()

		_, err := svc.Delete(context.Background(), 9)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestRecipe_UploadImage(t *testing.T) {
	f := newFixture(t)
	f.runTx()
	svc, storage := newRecipeService(t, f)

	isNewKey := func(key string) bool { return strings.HasPrefix(key, "recipes/1/") && key != "recipes/1/old" }

	f.recipes.On("GetByID", mock.Anything, int64(1)).Return(model.Recipe{ID: 1}, nil).Once()
	storage.On("Upload", mock.Anything, mock.MatchedBy(isNewKey), mock.Anything, int64(3), "image/png").Return(nil).Once()
	f.recipes.On("GetForUpdate", mock.Anything, int64(1)).Return(model.Recipe{ID: 1, ImageKey: strPtr("recipes/1/old")}, nil).Once()
	f.recipes.On("SetImageKey", mock.Anything, int64(1), mock.MatchedBy(func(key *string) bool {
		return key != nil && isNewKey(*key)
	})).Return(nil).Once()
	storage.On("Delete", mock.Anything, "recipes/1/old").Return(nil).Once()
	f.recipes.On("GetByID", mock.Anything, int64(1)).Return(model.Recipe{ID: 1, ImageKey: strPtr("recipes/1/new")}, nil).Once()

	recipe, err := svc.UploadImage(context.Background(), 1, model.RecipeImage{
		Body:        strings.NewReader("png"),
		Size:        3,
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.True(t, recipe.HasImage())
}

func TestRecipe_UploadImage_RollbackRemovesObject(t *testing.T) {
	f := newFixture(t)
	f.runTx()
	svc, storage := newRecipeService(t, f)

	var uploaded string
	f.recipes.On("GetByID", mock.Anything, int64(1)).Return(model.Recipe{ID: 1}, nil).Once()
	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { uploaded = args.String(1) }).
		Return(nil).Once()
	f.recipes.On("GetForUpdate", mock.Anything, int64(1)).Return(model.Recipe{}, model.ErrNotFound).Once()
	storage.On("Delete", mock.Anything, mock.MatchedBy(func(key string) bool { return key == uploaded })).Return(nil).Once()

	_, err := svc.UploadImage(context.Background(), 1, model.RecipeImage{Body: strings.NewReader("x"), Size: 1})
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestRecipe_UploadImage_MissingRecipe(t *testing.T) {
	f := newFixture(t)
	svc, _ := newRecipeService(t, f)

	f.recipes.On("GetByID", mock.Anything, int64(9)).Return(model.Recipe{}, model.ErrNotFound).Once()

	_, err := svc.UploadImage(context.Background(), 9, model.RecipeImage{Body: strings.NewReader("x"), Size: 1})
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestRecipe_GetImage(t *testing.T) {
	t.Run("attached", func(t *testing.T) {
		f := newFixture(t)
		svc, storage := newRecipeService(t, f)

		f.recipes.On("GetByID", mock.Anything, int64(1)).Return(model.Recipe{ID: 1, ImageKey: strPtr("k")}, nil).Once()
		storage.On("Download", mock.Anything, "k").Return(model.Object{
			Body:        io.NopCloser(strings.NewReader("img")),
			Size:        3,
			ContentType: "image/png",
		}, nil).Once()

		obj, err := svc.GetImage(context.Background(), 1)
		require.NoError(t, err)
		defer obj.Body.Close()
		assert.Equal(t, "image/png", obj.ContentType)
	})

	t.Run("no image", func(t *testing.T) {
		f := newFixture(t)
		svc, _ := newRecipeService(t, f)

		f.recipes.On("GetByID", mock.Anything, int64(1)).Return(model.Recipe{ID: 1}, nil).Once()

		_, err := svc.GetImage(context.Background(), 1)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("object missing", func(t *testing.T) {
		f := newFixture(t)
		svc, storage := newRecipeService(t, f)

		f.recipes.On("GetByID", mock.Anything, int64(1)).Return(model.Recipe{ID: 1, ImageKey: strPtr("k")}, nil).Once()
		storage.On("Download", mock.Anything, "k").Return(model.Object{}, model.ErrNotFound).Once()

		_, err := svc.GetImage(context.Background(), 1)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}
