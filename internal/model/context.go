package model

import "context"

// ContextManager stores the authenticated user in a request context.
type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID int64) context.Context
	GetUserIDFromContext(ctx context.Context) (int64, bool)
}
