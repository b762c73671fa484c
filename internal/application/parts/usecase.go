// Package parts exposes the inventory listing enriched with the derived
// stock status and the reorder suggestion.
package parts

import (
	"context"
	"fmt"

	"github.com/onderdelen-beheer/api/internal/application/dto"
	"github.com/onderdelen-beheer/api/internal/domain/analytics"
	"github.com/onderdelen-beheer/api/internal/domain/entity"
	"github.com/onderdelen-beheer/api/internal/domain/repository"
	"github.com/onderdelen-beheer/api/internal/domain/stock"
)

// UseCase lists parts for the dashboard views.
type UseCase struct {
	parts repository.PartRepository
}

// NewUseCase wires the parts use case.
func NewUseCase(parts repository.PartRepository) *UseCase {
	return &UseCase{parts: parts}
}

// List returns every active part as a listing row.
func (uc *UseCase) List(ctx context.Context) ([]dto.PartDTO, error) {
	items, err := uc.parts.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	out := make([]dto.PartDTO, 0, len(items))
	for _, p := range items {
		out = append(out, toDTO(p))
	}
	return out, nil
}

func toDTO(p entity.Part) dto.PartDTO {
	status := stock.Classify(p.Stock, p.MinStock)

	var lastSale *string
	if p.LastSale != nil {
		s := p.LastSale.Format("02-01-2006")
		lastSale = &s
	}

	return dto.PartDTO{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		CostPrice:     p.CostPrice,
		SalePrice:     p.SalePrice,
		Stock:         p.Stock,
		MinStock:      p.MinStock,
		MaxStock:      p.MaxStock,
		Location:      p.Location,
		Supplier:      p.Supplier,
		LastSale:      lastSale,
		Active:        p.Active,
		Status:        status.String(),
		StatusLabel:   status.Label(),
		ReorderAmount: analytics.ReorderSuggestion(p),
	}
}
