// Package auth implements the single-user access gate: one shared access
// code, checked against a bcrypt hash from configuration, exchanged for a
// JWT. There is no user store.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/onderdelen-beheer/api/internal/domain"
	"github.com/onderdelen-beheer/api/pkg/jwt"
)

// The gate knows a single identity.
const singleUserID = "single-user"

// Config for the auth use case.
type Config struct {
	AccessCodeHash string // bcrypt hash of the access code
	JWTSecret      string
	JWTIssuer      string
	JWTExpMinutes  int
}

// UseCase validates access codes and issues tokens.
type UseCase struct {
	cfg Config
}

// NewUseCase builds the auth use case.
func NewUseCase(cfg Config) *UseCase {
	return &UseCase{cfg: cfg}
}

// Login exchanges a valid access code for a signed JWT.
// Returns domain.ErrUnauthorized on a wrong code, without detail.
func (uc *UseCase) Login(code string) (string, error) {
	if code == "" || uc.cfg.AccessCodeHash == "" {
		return "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.AccessCodeHash), []byte(code)); err != nil {
		return "", domain.ErrUnauthorized
	}
	return jwt.Generate(uc.cfg.JWTSecret, singleUserID, uc.cfg.JWTIssuer, uc.cfg.JWTExpMinutes)
}
