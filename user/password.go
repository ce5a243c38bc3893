package user

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordLength is the number of bytes bcrypt takes into account.
const maxPasswordLength = 72

// ErrPasswordTooLong is returned by HashPassword for passwords longer than
// 72 bytes, which bcrypt cannot hash without truncation.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// hashConfig holds configuration options for HashPassword.
type hashConfig struct {
	cost int
}

// HashOption configures HashPassword.
type HashOption func(*hashConfig)

// WithCost sets the bcrypt cost. Values below bcrypt.MinCost fall back to
// bcrypt.DefaultCost, values above bcrypt.MaxCost make HashPassword fail.
func WithCost(cost int) HashOption {
	return func(c *hashConfig) {
		c.cost = cost
	}
}

// HashPassword returns the bcrypt hash of password, suitable for storage.
// The hash is at most 60 bytes long.
func HashPassword(password string, opts ...HashOption) (string, error) {
	c := &hashConfig{
		cost: bcrypt.DefaultCost,
	}

	for _, opt := range opts {
		opt(c)
	}

	if len(password) > maxPasswordLength {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// IsPassword reports whether password matches the bcrypt hash.
// It returns false without error on a mismatch, and an error only if hash is
// not a valid bcrypt hash.
func IsPassword(password, hash string) (bool, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}

		return false, fmt.Errorf("failed to compare password: %w", err)
	}

	return true, nil
}
