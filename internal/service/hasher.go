package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialHasher hashes and verifies listing passwords. The cost factor
// is taken from the config so tests can lower it.
type CredentialHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) bool
}

type bcryptHasher struct {
	cost int
}

func NewCredentialHasher(cost int) CredentialHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}
	return string(hashed), nil
}

func (h *bcryptHasher) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
