package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/onderdelen-beheer/api/internal/application/auth"
	"github.com/onderdelen-beheer/api/internal/domain"
	"github.com/onderdelen-beheer/api/pkg/jwt"
)

const testSecret = "auth-test-secret"

func usecaseWithCode(t *testing.T, code string) *auth.UseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewUseCase(auth.Config{
		AccessCodeHash: string(hash),
		JWTSecret:      testSecret,
		JWTIssuer:      "test",
		JWTExpMinutes:  5,
	})
}

func TestLogin_CorrectCode(t *testing.T) {
	uc := usecaseWithCode(t, "1234")

	token, err := uc.Login("1234")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "single-user", userID)
}

func TestLogin_WrongCode(t *testing.T) {
	uc := usecaseWithCode(t, "1234")

	_, err := uc.Login("4321")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_EmptyCode(t *testing.T) {
	uc := usecaseWithCode(t, "1234")

	_, err := uc.Login("")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

// An unset hash means the gate is not configured; nothing may pass.
func TestLogin_MissingHashRejectsEverything(t *testing.T) {
	uc := auth.NewUseCase(auth.Config{JWTSecret: testSecret})

	_, err := uc.Login("anything")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}
