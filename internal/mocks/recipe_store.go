package mocks

import (
	"context"

	"github.com/dtroode/cookbook-server/internal/model"
	"github.com/stretchr/testify/mock"
)

// RecipeStore is a mock type for the RecipeStore type
type RecipeStore struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx
func (_m *RecipeStore) List(ctx context.Context) ([]model.Recipe, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []model.Recipe
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]model.Recipe, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []model.Recipe); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.Recipe)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *RecipeStore) GetByID(ctx context.Context, id int64) (model.Recipe, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetByID")
	}

	var r0 model.Recipe
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (model.Recipe, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) model.Recipe); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(model.Recipe)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetForUpdate provides a mock function with given fields: ctx, id
func (_m *RecipeStore) GetForUpdate(ctx context.Context, id int64) (model.Recipe, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetForUpdate")
	}

	var r0 model.Recipe
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (model.Recipe, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) model.Recipe); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(model.Recipe)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: ctx, recipe
func (_m *RecipeStore) Create(ctx context.Context, recipe model.Recipe) (model.Recipe, error) {
	ret := _m.Called(ctx, recipe)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 model.Recipe
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Recipe) (model.Recipe, error)); ok {
		return rf(ctx, recipe)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Recipe) model.Recipe); ok {
		r0 = rf(ctx, recipe)
	} else {
		r0 = ret.Get(0).(model.Recipe)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Recipe) error); ok {
		r1 = rf(ctx, recipe)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, recipe
func (_m *RecipeStore) Update(ctx context.Context, recipe model.Recipe) (model.Recipe, error) {
	ret := _m.Called(ctx, recipe)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 model.Recipe
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Recipe) (model.Recipe, error)); ok {
		return rf(ctx, recipe)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Recipe) model.Recipe); ok {
		r0 = rf(ctx, recipe)
	} else {
		r0 = ret.Get(0).(model.Recipe)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Recipe) error); ok {
		r1 = rf(ctx, recipe)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, id
func (_m *RecipeStore) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ReplaceIngredients provides a mock function with given fields: ctx, recipeID, ingredientIDs
func (_m *RecipeStore) ReplaceIngredients(ctx context.Context, recipeID int64, ingredientIDs []int64) error {
	ret := _m.Called(ctx, recipeID, ingredientIDs)

	if len(ret) == 0 {
		panic("no return value specified for ReplaceIngredients")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, []int64) error); ok {
		r0 = rf(ctx, recipeID, ingredientIDs)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetImageKey provides a mock function with given fields: ctx, recipeID, key
func (_m *RecipeStore) SetImageKey(ctx context.Context, recipeID int64, key *string) error {
	ret := _m.Called(ctx, recipeID, key)

	if len(ret) == 0 {
		panic("no return value specified for SetImageKey")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, *string) error); ok {
		r0 = rf(ctx, recipeID, key)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewRecipeStore creates a new instance of RecipeStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewRecipeStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *RecipeStore {
	mock := &RecipeStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
