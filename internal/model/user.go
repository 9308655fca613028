package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a registered account.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// RegisterParams contains parameters to register a user.
type RegisterParams struct {
	Email    string
	Name     string
	Password string
}
