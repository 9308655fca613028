package model

// TokenManager generates and validates access tokens and produces opaque
// refresh token values.
type TokenManager interface {
	GenerateAccessToken(userID int64) (string, error)
	ParseAccessToken(token string) (int64, error)
	GenerateRefreshToken() (string, error)
}

// TokenPair is the result of a login or a refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
