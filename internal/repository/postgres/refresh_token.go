package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/cookbook-server/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

type RefreshTokenRepository struct {
	db DBTX
}

func NewRefreshTokenRepository(db DBTX) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token model.RefreshToken) (model.RefreshToken, error) {
	const query = `
        INSERT INTO refresh_tokens (user_id, token_hash, expires_at, revoked)
        VALUES ($1, $2, $3, $4)
        RETURNING id, user_id, token_hash, expires_at, revoked, created_at
    `

	saved, err := scanRefreshToken(r.db.QueryRow(ctx, query,
		token.UserID, token.TokenHash, token.ExpiresAt, token.Revoked,
	))
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("failed to create refresh token: %w", err)
	}
	return saved, nil
}

func (r *RefreshTokenRepository) GetByHash(ctx context.Context, tokenHash string) (model.RefreshToken, error) {
	const query = `
        SELECT id, user_id, token_hash, expires_at, revoked, created_at
        FROM refresh_tokens WHERE token_hash = $1
        FOR UPDATE
    `

	rt, err := scanRefreshToken(r.db.QueryRow(ctx, query, tokenHash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to get refresh token by hash: %w", err)
	}
	return rt, nil
}

func (r *RefreshTokenRepository) Revoke(ctx context.Context, id int64) error {
	const query = `UPDATE refresh_tokens SET revoked = TRUE WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanRefreshToken(row pgx.Row) (model.RefreshToken, error) {
	var rt model.RefreshToken
	err := row.Scan(&rt.ID, &rt.UserID, &rt.TokenHash, &rt.ExpiresAt, &rt.Revoked, &rt.CreatedAt)
	return rt, err
}
