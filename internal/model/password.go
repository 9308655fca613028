package model

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
