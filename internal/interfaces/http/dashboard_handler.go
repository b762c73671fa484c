package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/onderdelen-beheer/api/internal/application/analytics"
	"github.com/onderdelen-beheer/api/internal/application/dto"
)

// DashboardHandler handles the dashboard endpoints.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats returns the aggregated inventory and today's sales figures.
// GET /api/dashboard/stats
//
// No parameters; the day window is computed server-side.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(stats)
}
