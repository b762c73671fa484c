package reports

import (
	"fmt"

	"github.com/onderdelen-beheer/api/internal/domain"
	"github.com/onderdelen-beheer/api/internal/domain/entity"
)

// Record validation at the engine boundary. Violations fail fast with
// domain.ErrInvalidInput before any drawing happens, so malformed numbers
// never reach the renderer's formatters.

func validateParts(parts []entity.Part) error {
	for i, p := range parts {
		if p.SKU == "" {
			return fmt.Errorf("%w: part %d: sku is required", domain.ErrInvalidInput, i)
		}
		if p.Name == "" {
			return fmt.Errorf("%w: part %s: name is required", domain.ErrInvalidInput, p.SKU)
		}
		if p.CostPrice.IsNegative() || p.SalePrice.IsNegative() {
			return fmt.Errorf("%w: part %s: prices must be non-negative", domain.ErrInvalidInput, p.SKU)
		}
		if p.Stock < 0 || p.MinStock < 0 {
			return fmt.Errorf("%w: part %s: stock levels must be non-negative", domain.ErrInvalidInput, p.SKU)
		}
	}
	return nil
}

func validateSales(sales []entity.Sale) error {
	for i, s := range sales {
		if s.ID == "" {
			return fmt.Errorf("%w: sale %d: id is required", domain.ErrInvalidInput, i)
		}
		if s.Quantity <= 0 {
			return fmt.Errorf("%w: sale %s: quantity must be positive", domain.ErrInvalidInput, s.ID)
		}
		if s.UnitPrice.IsNegative() || s.TotalPrice.IsNegative() {
			return fmt.Errorf("%w: sale %s: prices must be non-negative", domain.ErrInvalidInput, s.ID)
		}
		if s.UnitCost != nil && s.UnitCost.IsNegative() {
			return fmt.Errorf("%w: sale %s: unit cost must be non-negative", domain.ErrInvalidInput, s.ID)
		}
		if s.SoldAt.IsZero() {
			return fmt.Errorf("%w: sale %s: sale timestamp is required", domain.ErrInvalidInput, s.ID)
		}
	}
	return nil
}
