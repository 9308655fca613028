package context

import (
	"context"
)

type userIDKey struct{}

// Manager keeps the authenticated user id in a request context.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext reports false when no user was authenticated.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
