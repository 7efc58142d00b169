package identity

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher derives and verifies salted password hashes.
type PasswordHasher interface {
	Hash(password string) ([]byte, error)
	Compare(hash []byte, password string) error
}

// BcryptHasher hashes with bcrypt; every hash embeds its own random salt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher at the given cost, falling back to
// bcrypt.DefaultCost when cost is out of range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, validationError(`"password" must be at most 72 bytes`)
	}
	return hash, err
}

// maxPasswordBytes is the bcrypt input limit; longer inputs are truncated by
// the algorithm, so they can never be compared safely.
const maxPasswordBytes = 72

// Compare returns nil only when password matches hash. Passwords over
// maxPasswordBytes never match.
func (h *BcryptHasher) Compare(hash []byte, password string) error {
	if len(password) > maxPasswordBytes {
		return bcrypt.ErrPasswordTooLong
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password))
}
