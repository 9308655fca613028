// Package password hashes user passwords with bcrypt.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/cookbook-server/internal/model"
)

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt implements PasswordHasher. Every Hash call uses a fresh random salt.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the given cost. Values outside the range
// supported by bcrypt fall back to bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (b *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. Malformed hashes never match.
func (b *Bcrypt) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
