package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/onderdelen-beheer/api/internal/application/dto"
	"github.com/onderdelen-beheer/api/internal/application/reports"
	"github.com/onderdelen-beheer/api/internal/domain"
)

// ReportHandler handles the report download endpoints. Every endpoint
// streams a complete document; a failed generation returns JSON, never a
// partial file.
type ReportHandler struct {
	reports *reports.UseCase
	export  *reports.ExportUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(rep *reports.UseCase, export *reports.ExportUseCase) *ReportHandler {
	return &ReportHandler{reports: rep, export: export}
}

// SalesSummary streams the Verkoop Overzicht PDF.
// GET /api/reports/sales?periode=dag|week|maand|jaar (default maand)
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	period, err := reports.ParsePeriod(c.Query("periode"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PERIOD", Message: "periode moet dag, week, maand of jaar zijn",
		})
	}
	pdf, filename, err := h.reports.SalesSummary(c.Context(), period)
	if err != nil {
		return reportError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// InventoryValuation streams the Voorraad Waardering PDF.
// GET /api/reports/valuation
func (h *ReportHandler) InventoryValuation(c *fiber.Ctx) error {
	pdf, filename, err := h.reports.InventoryValuation(c.Context())
	if err != nil {
		return reportError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// ProfitLoss streams the Winst & Verlies PDF.
// GET /api/reports/profit-loss?periode=dag|week|maand|jaar (default maand)
func (h *ReportHandler) ProfitLoss(c *fiber.Ctx) error {
	period, err := reports.ParsePeriod(c.Query("periode"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PERIOD", Message: "periode moet dag, week, maand of jaar zijn",
		})
	}
	pdf, filename, err := h.reports.ProfitLoss(c.Context(), period)
	if err != nil {
		return reportError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// DeadStock streams the Dode Voorraad PDF.
// GET /api/reports/dead-stock
func (h *ReportHandler) DeadStock(c *fiber.Ctx) error {
	pdf, filename, err := h.reports.DeadStock(c.Context())
	if err != nil {
		return reportError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// ExportInventory streams the inventory listing as an XLSX workbook.
// GET /api/reports/export/inventory
func (h *ReportHandler) ExportInventory(c *fiber.Ctx) error {
	blob, filename, err := h.export.Inventory(c.Context())
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(blob)
}

func sendPDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

func reportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_INPUT", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrRender):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "RENDER_FAILED", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
