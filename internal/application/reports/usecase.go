// Package reports orchestrates report generation: it loads records through
// the repository ports, validates them at the boundary and hands them to the
// document generator. Each report is independently callable and stateless;
// concurrent generations share nothing.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/onderdelen-beheer/api/internal/domain/analytics"
	"github.com/onderdelen-beheer/api/internal/domain/repository"
)

// Suggested download filenames per report kind.
const (
	FilenameSalesSummary       = "verkoop-overzicht.pdf"
	FilenameInventoryValuation = "voorraad-waardering.pdf"
	FilenameProfitLoss         = "winst-verlies.pdf"
	FilenameDeadStock          = "dode-voorraad.pdf"
)

// UseCase generates the four report documents.
type UseCase struct {
	parts repository.PartRepository
	sales repository.SaleRepository
	gen   DocumentGenerator
	now   func() time.Time
}

// NewUseCase wires the report use case.
func NewUseCase(
	parts repository.PartRepository,
	sales repository.SaleRepository,
	gen DocumentGenerator,
) *UseCase {
	return &UseCase{parts: parts, sales: sales, gen: gen, now: time.Now}
}

// SalesSummary generates the Verkoop Overzicht for the given period.
func (uc *UseCase) SalesSummary(ctx context.Context, period Period) (pdf []byte, filename string, err error) {
	start, end := period.Range(uc.now())
	sales, err := uc.sales.ListBetween(ctx, start, end)
	if err != nil {
		return nil, "", fmt.Errorf("sales summary: load sales: %w", err)
	}
	if err := validateSales(sales); err != nil {
		return nil, "", err
	}
	pdf, err = uc.gen.SalesSummary(ctx, sales, period, start, end)
	if err != nil {
		return nil, "", fmt.Errorf("sales summary: %w", err)
	}
	return pdf, FilenameSalesSummary, nil
}

// InventoryValuation generates the Voorraad Waardering over all parts.
func (uc *UseCase) InventoryValuation(ctx context.Context) (pdf []byte, filename string, err error) {
	parts, err := uc.parts.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("inventory valuation: load parts: %w", err)
	}
	if err := validateParts(parts); err != nil {
		return nil, "", err
	}
	pdf, err = uc.gen.InventoryValuation(ctx, parts)
	if err != nil {
		return nil, "", fmt.Errorf("inventory valuation: %w", err)
	}
	return pdf, FilenameInventoryValuation, nil
}

// ProfitLoss generates the Winst & Verlies report for the given period.
func (uc *UseCase) ProfitLoss(ctx context.Context, period Period) (pdf []byte, filename string, err error) {
	start, end := period.Range(uc.now())
	sales, err := uc.sales.ListBetween(ctx, start, end)
	if err != nil {
		return nil, "", fmt.Errorf("profit & loss: load sales: %w", err)
	}
	if err := validateSales(sales); err != nil {
		return nil, "", err
	}
	pdf, err = uc.gen.ProfitLoss(ctx, sales, period.Label())
	if err != nil {
		return nil, "", fmt.Errorf("profit & loss: %w", err)
	}
	return pdf, FilenameProfitLoss, nil
}

// DeadStock generates the Dode Voorraad report with the fixed 90-day window.
func (uc *UseCase) DeadStock(ctx context.Context) (pdf []byte, filename string, err error) {
	parts, err := uc.parts.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("dead stock: load parts: %w", err)
	}
	if err := validateParts(parts); err != nil {
		return nil, "", err
	}
	now := uc.now()
	dead := analytics.DetectDeadStock(parts, now, analytics.DeadStockThresholdDays)
	pdf, err = uc.gen.DeadStock(ctx, dead, now)
	if err != nil {
		return nil, "", fmt.Errorf("dead stock: %w", err)
	}
	return pdf, FilenameDeadStock, nil
}
