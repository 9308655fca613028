package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/cookbook-server/internal/logger"
	"github.com/dtroode/cookbook-server/internal/model"
)

// DefaultRefreshTTL is the refresh token lifetime used when none is configured.
const DefaultRefreshTTL = 7 * 24 * time.Hour

// TokenService issues, rotates and revokes refresh tokens. Only the sha256
// hash of a refresh token is persisted.
type TokenService struct {
	manager    model.TokenManager
	transactor model.Transactor
	refreshTTL time.Duration
	now        func() time.Time
	logger     *logger.Logger
}

func NewTokenService(manager model.TokenManager, transactor model.Transactor, refreshTTL time.Duration, logger *logger.Logger) *TokenService {
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &TokenService{
		manager:    manager,
		transactor: transactor,
		refreshTTL: refreshTTL,
		now:        time.Now,
		logger:     logger,
	}
}

// Issue mints an access token and persists a new refresh token for userID
// through store, which may be bound to a transaction.
func (s *TokenService) Issue(ctx context.Context, store model.RefreshTokenStore, userID int64) (model.TokenPair, error) {
	access, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.manager.GenerateRefreshToken()
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue refresh: %w", err)
	}

	_, err = store.Create(ctx, model.RefreshToken{
		UserID:    userID,
		TokenHash: hashRefresh(refresh),
		ExpiresAt: s.now().Add(s.refreshTTL),
	})
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("persist refresh: %w", err)
	}

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh rotates a refresh token: the presented one is revoked and a new
// pair is issued in the same transaction. An expired token is revoked and the
// revocation is committed before the error is returned.
func (s *TokenService) Refresh(ctx context.Context, presented string) (model.TokenPair, error) {
	var (
		pair    model.TokenPair
		expired bool
	)

	err := s.transactor.WithinTx(ctx, func(ctx context.Context, stores model.Stores) error {
		rt, err := lookupRefresh(ctx, stores.RefreshTokens, presented)
		if err != nil {
			return err
		}
		if rt.Revoked {
			return model.ErrTokenRevoked
		}

		if err := stores.RefreshTokens.Revoke(ctx, rt.ID); err != nil {
			return fmt.Errorf("revoke old refresh: %w", err)
		}

		if rt.Expired(s.now()) {
			expired = true
			return nil
		}

		pair, err = s.Issue(ctx, stores.RefreshTokens, rt.UserID)
		return err
	})
	if err != nil {
		s.logger.Debug("Token service: refresh rejected", "error", err.Error())
		return model.TokenPair{}, err
	}
	if expired {
		s.logger.Debug("Token service: refresh token expired")
		return model.TokenPair{}, model.ErrTokenExpired
	}

	return pair, nil
}

// Revoke marks the presented refresh token revoked. Unknown and already
// revoked tokens are ignored.
func (s *TokenService) Revoke(ctx context.Context, presented string) error {
	return s.transactor.WithinTx(ctx, func(ctx context.Context, stores model.Stores) error {
		rt, err := lookupRefresh(ctx, stores.RefreshTokens, presented)
		if errors.Is(err, model.ErrTokenNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if rt.Revoked {
			return nil
		}

		if err := stores.RefreshTokens.Revoke(ctx, rt.ID); err != nil {
			return fmt.Errorf("revoke refresh: %w", err)
		}
		return nil
	})
}

// GetUserID validates an access token and returns its subject.
func (s *TokenService) GetUserID(token string) (int64, error) {
	return s.manager.ParseAccessToken(token)
}

func lookupRefresh(ctx context.Context, store model.RefreshTokenStore, presented string) (model.RefreshToken, error) {
	if presented == "" {
		return model.RefreshToken{}, model.ErrTokenNotFound
	}

	rt, err := store.GetByHash(ctx, hashRefresh(presented))
	if errors.Is(err, model.ErrNotFound) {
		return model.RefreshToken{}, model.ErrTokenNotFound
	}
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("get refresh: %w", err)
	}
	return rt, nil
}

func hashRefresh(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}
