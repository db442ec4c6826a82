package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// LoginInput contains the credentials entered by the user.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput contains the result of a successful login.
type LoginOutput struct {
	Username string // Authenticated user
}

// Login is the use case for authenticating the session user.
type Login struct {
	verifier domain.CredentialVerifier
	logger   domain.Logger
}

// NewLogin creates a new Login use case.
func NewLogin(verifier domain.CredentialVerifier, logger domain.Logger) *Login {
	return &Login{
		verifier: verifier,
		logger:   logger,
	}
}

// Execute verifies the credentials. Mismatches return ErrInvalidCredentials.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	err := uc.verifier.Verify(ctx, in.Username, in.Password)
	if err != nil {
		if uc.logger != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				uc.logger.Warn("auth", fmt.Sprintf("login failed for %q", in.Username))
			} else {
				uc.logger.Error("auth", fmt.Sprintf("login error: %v", err))
			}
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("auth", fmt.Sprintf("login succeeded for %q", in.Username))
	}

	return &LoginOutput{Username: in.Username}, nil
}
