// Package auth provides bcrypt-based credential verification.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used by HashPassword.
const Cost = bcrypt.DefaultCost

// Ensure Verifier implements domain.CredentialVerifier.
var _ domain.CredentialVerifier = (*Verifier)(nil)

// Verifier checks credentials against the [auth] section of the config.
type Verifier struct {
	username string
	hash     []byte
}

// NewVerifier creates a Verifier from cfg.
func NewVerifier(cfg domain.AuthConfig) *Verifier {
	return &Verifier{
		username: cfg.Username,
		hash:     []byte(cfg.PasswordHash),
	}
}

// Verify returns nil when username and password match the configured pair.
// The password is compared even when the username is wrong, so both failure
// modes take comparable time.
func (v *Verifier) Verify(ctx context.Context, username, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if v.username == "" || len(v.hash) == 0 {
		return domain.ErrAuthNotConfigured
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	err := bcrypt.CompareHashAndPassword(v.hash, []byte(password))
	switch {
	case err == nil && userOK:
		return nil
	case err == nil, errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return domain.ErrInvalidCredentials
	default:
		// Malformed hash in the config file.
		return fmt.Errorf("verify password: %w", err)
	}
}

// Ensure Hasher implements domain.PasswordHasher.
var _ domain.PasswordHasher = Hasher{}

// Hasher produces bcrypt hashes for the password_hash key.
type Hasher struct {
	Cost int // bcrypt cost; 0 means Cost
}

// Hash returns the bcrypt hash of password.
func (h Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", domain.ErrEmptyPassword
	}
	cost := h.Cost
	if cost == 0 {
		cost = Cost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
