package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dtroode/cookbook-server/database"
	"github.com/dtroode/cookbook-server/internal/model"
)

var _ model.Transactor = (*Connection)(nil)

// Connection owns the pgx pool and opens transactions over it.
type Connection struct {
	*pgxpool.Pool
}

// NewConnection opens a pool for dsn and applies pending migrations.
func NewConnection(ctx context.Context, dsn string) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	if err := database.Migrate(ctx, dsn); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Connection{
		Pool: pool,
	}, nil
}

// Stores returns repositories bound to the pool.
func (c *Connection) Stores() model.Stores {
	return NewStores(c.Pool)
}

// WithinTx runs fn with repositories bound to one transaction.
func (c *Connection) WithinTx(ctx context.Context, fn func(ctx context.Context, stores model.Stores) error) error {
	return withTx(ctx, c.Pool, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, NewStores(tx))
	})
}

func (c *Connection) Close() error {
	if c.Pool != nil {
		c.Pool.Close()
	}
	return nil
}

func (c *Connection) Ping(ctx context.Context) error {
	if c.Pool == nil {
		return fmt.Errorf("connection pool is nil")
	}
	return c.Pool.Ping(ctx)
}

// NewStores binds every repository to db.
func NewStores(db DBTX) model.Stores {
	return model.Stores{
		Users:         NewUserRepository(db),
		Ingredients:   NewIngredientRepository(db),
		Recipes:       NewRecipeRepository(db),
		RefreshTokens: NewRefreshTokenRepository(db),
	}
}
