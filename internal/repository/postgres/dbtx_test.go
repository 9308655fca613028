package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{}

	err := withTx(context.Background(), &fakeBeginner{tx: tx}, func(ctx context.Context, got pgx.Tx) error {
		assert.Same(t, tx, got)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestWithTx_RollbackOnError(t *testing.T) {
	tx := &fakeTx{}
	boom := errors.New("boom")

	err := withTx(context.Background(), &fakeBeginner{tx: tx}, func(ctx context.Context, _ pgx.Tx) error {
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	tx := &fakeTx{}

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = withTx(context.Background(), &fakeBeginner{tx: tx}, func(ctx context.Context, _ pgx.Tx) error {
			panic("kaboom")
		})
	})
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestWithTx_BeginError(t *testing.T) {
	called := false
	err := withTx(context.Background(), &fakeBeginner{err: errors.New("no conn")}, func(ctx context.Context, _ pgx.Tx) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")
	assert.False(t, called)
}

func TestWithTx_CommitError(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("serialization failure")}

	err := withTx(context.Background(), &fakeBeginner{tx: tx}, func(ctx context.Context, _ pgx.Tx) error {
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit transaction")
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("plain")))
	assert.False(t, isUniqueViolation(nil))
}

func TestNewStores(t *testing.T) {
	db := &fakeDB{}
	stores := NewStores(db)

	assert.IsType(t, &UserRepository{}, stores.Users)
	assert.IsType(t, &IngredientRepository{}, stores.Ingredients)
	assert.IsType(t, &RecipeRepository{}, stores.Recipes)
	assert.IsType(t, &RefreshTokenRepository{}, stores.RefreshTokens)
}

func TestConnection_PingNilPool(t *testing.T) {
	c := &Connection{}
	assert.Error(t, c.Ping(context.Background()))
	assert.NoError(t, c.Close())
}
