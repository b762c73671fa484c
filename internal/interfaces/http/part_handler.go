package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onderdelen-beheer/api/internal/application/dto"
	"github.com/onderdelen-beheer/api/internal/application/parts"
)

// PartHandler handles the inventory listing endpoints.
type PartHandler struct {
	uc *parts.UseCase
}

// NewPartHandler builds the handler.
func NewPartHandler(uc *parts.UseCase) *PartHandler {
	return &PartHandler{uc: uc}
}

// List returns the active parts with status and reorder suggestion.
// GET /api/parts
func (h *PartHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(items)
}
