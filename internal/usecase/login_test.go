package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Execute_Success(t *testing.T) {
	verifier := &testutil.MockVerifier{Username: "alice", Password: "s3cret"}
	logger := &testutil.MockLogger{}
	uc := usecase.NewLogin(verifier, logger)

	out, err := uc.Execute(context.Background(), usecase.LoginInput{Username: "alice", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, "alice", out.Username)
	assert.Equal(t, 1, verifier.Calls)
	assert.True(t, logger.HasEntry("INFO", `login succeeded for "alice"`))
}

func TestLogin_Execute_InvalidCredentials(t *testing.T) {
	verifier := &testutil.MockVerifier{Username: "alice", Password: "s3cret"}
	logger := &testutil.MockLogger{}
	uc := usecase.NewLogin(verifier, logger)

	out, err := uc.Execute(context.Background(), usecase.LoginInput{Username: "alice", Password: "guess"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.True(t, logger.HasEntry("WARN", `login failed for "alice"`))
	for _, e := range logger.Entries {
		assert.NotContains(t, e.Msg, "guess", "passwords are never logged")
	}
}

func TestLogin_Execute_VerifierError(t *testing.T) {
	verifier := &testutil.MockVerifier{Err: errors.New("bad hash")}
	logger := &testutil.MockLogger{}
	uc := usecase.NewLogin(verifier, logger)

	_, err := uc.Execute(context.Background(), usecase.LoginInput{Username: "alice"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.True(t, logger.HasEntry("ERROR", "bad hash"))
}
