package model

import "context"

// Stores groups repositories bound to the same database handle, either the
// connection pool or a single transaction.
type Stores struct {
	Users         UserStore
	Ingredients   IngredientStore
	Recipes       RecipeStore
	RefreshTokens RefreshTokenStore
}

// Transactor runs fn inside one transaction. The transaction is committed when
// fn returns nil and rolled back when it returns an error or panics.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error
}
