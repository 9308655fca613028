package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dtroode/cookbook-server/internal/logger"
	"github.com/dtroode/cookbook-server/internal/model"
	"github.com/dtroode/cookbook-server/internal/normalize"
)

// dummyPassword is hashed once and compared against when the login email is
// unknown, so both failure paths cost one bcrypt comparison.
const dummyPassword = "cookbook-dummy-password"

var errUserGone = fmt.Errorf("user no longer exists: %w", model.ErrAuthentication)

type Auth struct {
	stores       model.Stores
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewAuth(
	stores model.Stores,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		stores:       stores,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	email := normalize.Email(params.Email)
	name := strings.TrimSpace(params.Name)

	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	if email == "" {
		return model.User{}, model.NewValidationError("email must not be empty")
	}
	if name == "" {
		return model.User{}, model.NewValidationError("name must not be empty")
	}
	if params.Password == "" {
		return model.User{}, model.NewValidationError("password must not be empty")
	}
	if len(params.Password) > model.MaxPasswordBytes {
		return model.User{}, model.NewValidationError("password must be at most %d bytes", model.MaxPasswordBytes)
	}

	_, err := a.stores.Users.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.User{}, model.NewAlreadyExistsError("user '%s' already exists", email)
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.stores.Users.Create(ctx, model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.User{}, model.NewAlreadyExistsError("user '%s' already exists", email)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID)

	return user, nil
}

// Login verifies credentials and issues a token pair. Unknown email and wrong
// password fail identically.
func (a *Auth) Login(ctx context.Context, email, password string) (model.TokenPair, error) {
	email = normalize.Email(email)

	user, err := a.stores.Users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.hasher.Verify(password, a.getDummyHash())
		a.logger.Info("Auth service: login failed",
			"email", email)
		return model.TokenPair{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: login failed",
			"email", email)
		return model.TokenPair{}, model.ErrInvalidCredentials
	}

	pair, err := a.tokenService.Issue(ctx, a.stores.RefreshTokens, user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue tokens",
			"user_id", user.ID,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return pair, nil
}

func (a *Auth) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	return a.tokenService.Refresh(ctx, refreshToken)
}

func (a *Auth) Logout(ctx context.Context, refreshToken string) error {
	if err := a.tokenService.Revoke(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// Authenticate resolves an access token to the id of an existing user.
func (a *Auth) Authenticate(ctx context.Context, accessToken string) (int64, error) {
	userID, err := a.tokenService.GetUserID(accessToken)
	if err != nil {
		return 0, err
	}

	if _, err := a.Me(ctx, userID); err != nil {
		return 0, err
	}

	return userID, nil
}

// Me returns the authenticated user.
func (a *Auth) Me(ctx context.Context, userID int64) (model.User, error) {
	user, err := a.stores.Users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, errUserGone
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (a *Auth) getDummyHash() string {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Warn("Auth service: failed to prepare dummy hash",
				"error", err.Error())
			return
		}
		a.dummyHash = hash
	})
	return a.dummyHash
}
