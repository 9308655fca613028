package model

import (
	"context"
	"time"
)

// RefreshTokenStore defines persistence operations for refresh tokens.
type RefreshTokenStore interface {
	Create(ctx context.Context, token RefreshToken) (RefreshToken, error)
	// GetByHash loads a token by the hash of its value and locks the row
	// until the transaction ends.
	GetByHash(ctx context.Context, tokenHash string) (RefreshToken, error)
	Revoke(ctx context.Context, id int64) error
}

// RefreshToken is a persisted, single-use refresh credential. Only the hash
// of the opaque value is stored.
type RefreshToken struct {
	ID        int64
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry at now.
func (t RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
