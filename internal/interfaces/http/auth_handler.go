package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onderdelen-beheer/api/internal/application/auth"
	"github.com/onderdelen-beheer/api/internal/application/dto"
)

// AuthHandler handles the access-code login endpoint.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login exchanges the access code for a bearer token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "ongeldige JSON body",
		})
	}

	token, err := h.uc.Login(req.Code)
	if err != nil {
		// Wrong codes are indistinguishable from missing configuration.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "ongeldige toegangscode",
		})
	}

	return c.JSON(dto.LoginResponse{Token: token})
}
