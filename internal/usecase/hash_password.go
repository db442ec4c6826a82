package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// HashPasswordInput contains the password to hash.
type HashPasswordInput struct {
	Password string
}

// HashPasswordOutput contains the value for the password_hash config key.
type HashPasswordOutput struct {
	Hash string
}

// HashPassword is the use case for producing a password_hash value.
type HashPassword struct {
	hasher domain.PasswordHasher
}

// NewHashPassword creates a new HashPassword use case.
func NewHashPassword(hasher domain.PasswordHasher) *HashPassword {
	return &HashPassword{hasher: hasher}
}

// Execute hashes the password. An empty password is rejected.
func (uc *HashPassword) Execute(_ context.Context, in HashPasswordInput) (*HashPasswordOutput, error) {
	if in.Password == "" {
		return nil, domain.ErrEmptyPassword
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &HashPasswordOutput{Hash: hash}, nil
}
