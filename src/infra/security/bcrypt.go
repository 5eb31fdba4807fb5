// Package security implements password hashing and token issuance for the
// authentication use cases.
package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"forumapi/src/core/domain"
	"forumapi/src/core/ports"
)

var _ ports.PasswordHash = (*BcryptPasswordHash)(nil)

// BcryptPasswordHash hashes passwords with bcrypt.
type BcryptPasswordHash struct {
	cost int
}

// NewBcryptPasswordHash returns a hasher with the given cost; 0 means bcrypt.DefaultCost.
func NewBcryptPasswordHash(cost int) *BcryptPasswordHash {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHash{cost: cost}
}

func (h *BcryptPasswordHash) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptPasswordHash) Compare(password, hashed string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.NewUnauthorizedError("wrong credentials")
	}
	return err
}
