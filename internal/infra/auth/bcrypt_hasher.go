// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode/utf8"

	"nutriplan/config"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/service"
	"nutriplan/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMinPasswordLength = 6
	// bcrypt ignores everything past 72 bytes
	bcryptMaxPasswordLength = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
	maxLength int
}

// NewBcryptHasher builds the hasher from the auth and password strength settings.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	minLength, maxLength := defaultMinPasswordLength, bcryptMaxPasswordLength
	if cfg.PasswordStrength != nil {
		if cfg.PasswordStrength.MinLength > 0 {
			minLength = cfg.PasswordStrength.MinLength
		}
		if cfg.PasswordStrength.MaxLength > 0 && cfg.PasswordStrength.MaxLength < maxLength {
			maxLength = cfg.PasswordStrength.MaxLength
		}
	}

	return newBcryptHasher(cost, minLength, maxLength)
}

// NewBcryptHasherWithCost creates a hasher with default length rules and the given cost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return newBcryptHasher(cost, defaultMinPasswordLength, bcryptMaxPasswordLength)
}

func newBcryptHasher(cost, minLength, maxLength int) *bcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost, minLength: minLength, maxLength: maxLength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength enforces the configured length bounds.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < h.minLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			fmt.Sprintf("password must be at least %d characters long", h.minLength))
	}
	if len(password) > h.maxLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			fmt.Sprintf("password must be at most %d bytes long", h.maxLength))
	}

	return nil
}
