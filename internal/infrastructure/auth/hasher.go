// Package auth provides the credential hashing implementation backing the
// identity engine.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the cost the deployed databases were seeded with.
const DefaultCost = 10

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password digest: %w", err)
	}
	return string(digest), nil
}

// Verify compares a plaintext password against a stored digest. The error is
// generic regardless of cause so callers cannot distinguish a wrong password
// from a malformed digest.
func (h *BcryptPasswordHasher) Verify(password, digest string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)); err != nil {
		return fmt.Errorf("password verification failed")
	}
	return nil
}
