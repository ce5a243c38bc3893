package user

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gotest.tools/v3/assert"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("mySecurePassword", WithCost(bcrypt.MinCost))
	assert.NilError(t, err)
	assert.Assert(t, hash != "")
	assert.Assert(t, hash != "mySecurePassword")

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NilError(t, err)
	assert.Equal(t, cost, bcrypt.MinCost)

	hash, err = HashPassword("", WithCost(bcrypt.MinCost))
	assert.NilError(t, err)
	assert.Assert(t, hash != "")
}

func TestHashPasswordDefaultCost(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("mySecurePassword")
	assert.NilError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NilError(t, err)
	assert.Equal(t, cost, bcrypt.DefaultCost)
}

func TestHashPasswordErrors(t *testing.T) {
	t.Parallel()

	type input struct {
		password string
		opts     []HashOption
	}

	tests := []struct {
		name        string
		input       input
		expectedErr string
	}{
		{
			name:        "password longer than 72 bytes",
			input:       input{password: strings.Repeat("a", 73)},
			expectedErr: ErrPasswordTooLong.Error(),
		},
		{
			name:        "cost above maximum",
			input:       input{password: "secret", opts: []HashOption{WithCost(bcrypt.MaxCost + 1)}},
			expectedErr: "failed to hash password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.input.password, tt.input.opts...)
			assert.ErrorContains(t, err, tt.expectedErr)
			assert.Equal(t, hash, "")
		})
	}

	_, err := HashPassword(strings.Repeat("ü", 37))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = HashPassword(strings.Repeat("a", 72), WithCost(bcrypt.MinCost))
	assert.NilError(t, err)
}

func TestIsPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("mySecurePassword", WithCost(bcrypt.MinCost))
	assert.NilError(t, err)

	match, err := IsPassword("mySecurePassword", hash)
	assert.NilError(t, err)
	assert.Assert(t, match)

	match, err = IsPassword("wrongPassword", hash)
	assert.NilError(t, err)
	assert.Assert(t, !match)

	match, err = IsPassword("mySecurePassword", "")
	assert.ErrorContains(t, err, "hashedSecret too short")
	assert.ErrorIs(t, err, bcrypt.ErrHashTooShort)
	assert.Assert(t, !match)
}
