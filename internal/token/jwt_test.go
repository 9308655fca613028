package token

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/cookbook-server/internal/model"
)

func newTestJWT(t *testing.T) *JWT {
	t.Helper()
	j, err := NewJWT("secret", time.Minute)
	require.NoError(t, err)
	return j
}

func TestNewJWT(t *testing.T) {
	_, err := NewJWT("", time.Minute)
	require.Error(t, err)

	j, err := NewJWT("secret", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultAccessTTL, j.accessTTL)
}

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := newTestJWT(t)

	access, err := j.GenerateAccessToken(42)
	require.NoError(t, err)

	got, err := j.ParseAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
}

func TestJWT_AccessToken_Expired(t *testing.T) {
	j := newTestJWT(t)
	j.now = func() time.Time { return time.Now().Add(-time.Hour) }

	access, err := j.GenerateAccessToken(1)
	require.NoError(t, err)

	j.now = time.Now
	_, err = j.ParseAccessToken(access)
	require.ErrorIs(t, err, model.ErrAuthentication)
}

func TestJWT_AccessToken_WrongSecret(t *testing.T) {
	j := newTestJWT(t)
	other, err := NewJWT("other", time.Minute)
	require.NoError(t, err)

	access, err := other.GenerateAccessToken(1)
	require.NoError(t, err)

	_, err = j.ParseAccessToken(access)
	require.ErrorIs(t, err, model.ErrAuthentication)
}

func TestJWT_AccessToken_Rejected(t *testing.T) {
	j := newTestJWT(t)
	now := time.Now()

	sign := func(claims Claims, method jwt.SigningMethod, key any) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := jwt.RegisteredClaims{Subject: "1", ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute))}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "wrong type", token: sign(Claims{RegisteredClaims: valid, TokenType: "refresh"}, jwt.SigningMethodHS256, []byte("secret"))},
		{name: "none algorithm", token: sign(Claims{RegisteredClaims: valid, TokenType: typeAccess}, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType)},
		{name: "missing expiry", token: sign(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "1"}, TokenType: typeAccess}, jwt.SigningMethodHS256, []byte("secret"))},
		{name: "non numeric subject", token: sign(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "abc", ExpiresAt: valid.ExpiresAt}, TokenType: typeAccess}, jwt.SigningMethodHS256, []byte("secret"))},
		{name: "zero subject", token: sign(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "0", ExpiresAt: valid.ExpiresAt}, TokenType: typeAccess}, jwt.SigningMethodHS256, []byte("secret"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := j.ParseAccessToken(tt.token)
			require.ErrorIs(t, err, model.ErrAuthentication)
		})
	}
}

func TestJWT_RefreshToken(t *testing.T) {
	j := newTestJWT(t)

	first, err := j.GenerateRefreshToken()
	require.NoError(t, err)
	second, err := j.GenerateRefreshToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	raw, err := base64.RawURLEncoding.DecodeString(first)
	require.NoError(t, err)
	assert.Len(t, raw, refreshTokenBytes)
}
