package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtroode/cookbook-server/internal/model"
)

const (
	// DefaultAccessTTL is used when no access token lifetime is configured.
	DefaultAccessTTL = 30 * time.Minute

	typeAccess = "access"

	// refreshTokenBytes is the amount of randomness behind one refresh token.
	refreshTokenBytes = 64
)

var errEmptySecret = errors.New("jwt secret is empty")

// Claims represents access token claims. The subject holds the user ID.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
}

// JWT implements TokenManager with HS256 signed access tokens and random
// opaque refresh tokens.
type JWT struct {
	secretKey []byte
	accessTTL time.Duration
	now       func() time.Time
}

var _ model.TokenManager = (*JWT)(nil)

// NewJWT creates a token manager signing with secretKey. A non-positive
// accessTTL falls back to DefaultAccessTTL.
func NewJWT(secretKey string, accessTTL time.Duration) (*JWT, error) {
	if secretKey == "" {
		return nil, errEmptySecret
	}
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	return &JWT{
		secretKey: []byte(secretKey),
		accessTTL: accessTTL,
		now:       time.Now,
	}, nil
}

// GenerateAccessToken creates a short-lived access token for userID.
func (j *JWT) GenerateAccessToken(userID int64) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.accessTTL)),
		},
		TokenType: typeAccess,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ParseAccessToken validates an access token and returns its user ID. Every
// failure wraps model.ErrAuthentication.
func (j *JWT) ParseAccessToken(tokenString string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(j.now))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", model.ErrInvalidAccessToken, err)
	}
	if !token.Valid {
		return 0, model.ErrInvalidAccessToken
	}
	if claims.TokenType != typeAccess {
		return 0, fmt.Errorf("%w: token type mismatch: %s", model.ErrInvalidAccessToken, claims.TokenType)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: malformed subject", model.ErrInvalidAccessToken)
	}

	return userID, nil
}

// GenerateRefreshToken returns a URL-safe random token. It carries no user or
// time data.
func (j *JWT) GenerateRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
