package mocks

import (
	"context"

	"github.com/dtroode/cookbook-server/internal/model"
	"github.com/stretchr/testify/mock"
)

// IngredientService is a mock type for the IngredientService type
type IngredientService struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx
func (_m *IngredientService) List(ctx context.Context) ([]model.Ingredient, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []model.Ingredient
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]model.Ingredient, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []model.Ingredient); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.Ingredient)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: ctx, name
func (_m *IngredientService) Create(ctx context.Context, name string) (model.Ingredient, error) {
	ret := _m.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 model.Ingredient
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (model.Ingredient, error)); ok {
		return rf(ctx, name)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) model.Ingredient); ok {
		r0 = rf(ctx, name)
	} else {
		r0 = ret.Get(0).(model.Ingredient)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, id
func (_m *IngredientService) Delete(ctx context.Context, id int64) (model.Ingredient, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 model.Ingredient
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (model.Ingredient, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) model.Ingredient); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(model.Ingredient)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewIngredientService creates a new instance of IngredientService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewIngredientService(t interface {
	mock.TestingT
	Cleanup(func())
}) *IngredientService {
	mock := &IngredientService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
