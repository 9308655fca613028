package mocks

import (
	"context"

	"github.com/dtroode/cookbook-server/internal/model"
	"github.com/stretchr/testify/mock"
)

// RecipeService is a mock type for the RecipeService type
type RecipeService struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx
func (_m *RecipeService) List(ctx context.Context) ([]model.Recipe, error) {
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

// Get provides a mock function with given fields: ctx, id
func (_m *RecipeService) Get(ctx context.Context, id int64) (model.Recipe, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Get")
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

// Create provides a mock function with given fields: ctx, params
func (_m *RecipeService) Create(ctx context.Context, params model.CreateRecipeParams) (model.Recipe, error) {
	ret := _m.Called(ctx, params)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 model.Recipe
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.CreateRecipeParams) (model.Recipe, error)); ok {
		return rf(ctx, params)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.CreateRecipeParams) model.Recipe); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(model.Recipe)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.CreateRecipeParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, id, params
func (_m *RecipeService) Update(ctx context.Context, id int64, params model.UpdateRecipeParams) (model.Recipe, error) {
	ret := _m.Called(ctx, id, params)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 model.Recipe
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, model.UpdateRecipeParams) (model.Recipe, error)); ok {
		return rf(ctx, id, params)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, model.UpdateRecipeParams) model.Recipe); ok {
		r0 = rf(ctx, id, params)
	} else {
		r0 = ret.Get(0).(model.Recipe)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, model.UpdateRecipeParams) error); ok {
		r1 = rf(ctx, id, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, id
func (_m *RecipeService) Delete(ctx context.Context, id int64) (model.Recipe, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
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

// UploadImage provides a mock function with given fields: ctx, id, image
func (_m *RecipeService) UploadImage(ctx context.Context, id int64, image model.RecipeImage) (model.Recipe, error) {
	ret := _m.Called(ctx, id, image)

	if len(ret) == 0 {
		panic("no return value specified for UploadImage")
	}

	var r0 model.Recipe
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, model.RecipeImage) (model.Recipe, error)); ok {
		return rf(ctx, id, image)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, model.RecipeImage) model.Recipe); ok {
		r0 = rf(ctx, id, image)
	} else {
		r0 = ret.Get(0).(model.Recipe)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, model.RecipeImage) error); ok {
		r1 = rf(ctx, id, image)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetImage provides a mock function with given fields: ctx, id
func (_m *RecipeService) GetImage(ctx context.Context, id int64) (model.Object, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetImage")
	}

	var r0 model.Object
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (model.Object, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) model.Object); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(model.Object)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewRecipeService creates a new instance of RecipeService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewRecipeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *RecipeService {
	mock := &RecipeService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
