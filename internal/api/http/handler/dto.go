package handler

import "github.com/dtroode/cookbook-server/internal/model"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is an OAuth2 password form; username carries the email.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// IngredientRequest length limits apply after normalization, in the service.
type IngredientRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateRecipeRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description *string             `json:"description" binding:"required,max=10000"`
	Ingredients []IngredientRequest `json:"ingredients" binding:"required,dive"`
}

// UpdateRecipeRequest fields left out of the body are not changed.
type UpdateRecipeRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description" binding:"omitempty,max=10000"`
	Ingredients *[]IngredientRequest `json:"ingredients" binding:"omitempty,dive"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type IngredientResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RecipeResponse struct {
	ID          int64                `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Ingredients []IngredientResponse `json:"ingredients"`
	HasImage    bool                 `json:"has_image"`
}

type DetailResponse struct {
	Detail string `json:"detail"`
}

func newUserResponse(u model.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}

func newTokenResponse(p model.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    "bearer",
	}
}

func newIngredientResponse(i model.Ingredient) IngredientResponse {
	return IngredientResponse{ID: i.ID, Name: i.Name}
}

func newIngredientResponses(ingredients []model.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, len(ingredients))
	for i, ing := range ingredients {
		out[i] = newIngredientResponse(ing)
	}
	return out
}

func newRecipeResponse(r model.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Ingredients: newIngredientResponses(r.Ingredients),
		HasImage:    r.HasImage(),
	}
}

func newRecipeResponses(recipes []model.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, len(recipes))
	for i, r := range recipes {
		out[i] = newRecipeResponse(r)
	}
	return out
}

func ingredientNames(in []IngredientRequest) []string {
	names := make([]string, len(in))
	for i, ing := range in {
		names[i] = ing.Name
	}
	return names
}
