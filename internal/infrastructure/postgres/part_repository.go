package postgres

import (
	"context"
	"fmt"

	"github.com/onderdelen-beheer/api/internal/domain/entity"
	"github.com/onderdelen-beheer/api/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

const partColumns = `
	id, sku, naam, COALESCE(beschrijving, ''), inkoop_prijs, verkoop_prijs,
	voorraad, min_voorraad, max_voorraad, locatie, leverancier,
	laatste_verkoop, actief, created_at, updated_at`

// PartRepo implements the PartRepository port over the onderdelen table.
type PartRepo struct {
	q Querier
}

// NewPartRepository builds the persistence adapter for parts.
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// List returns every part, active or not, ordered by name.
func (r *PartRepo) List(ctx context.Context) ([]entity.Part, error) {
	query := `SELECT` + partColumns + ` FROM onderdelen ORDER BY naam`
	return r.queryParts(ctx, query)
}

// ListActive returns only the active parts, ordered by name.
func (r *PartRepo) ListActive(ctx context.Context) ([]entity.Part, error) {
	query := `SELECT` + partColumns + ` FROM onderdelen WHERE actief ORDER BY naam`
	return r.queryParts(ctx, query)
}

func (r *PartRepo) queryParts(ctx context.Context, query string, args ...any) ([]entity.Part, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query parts: %w", err)
	}
	defer rows.Close()

	var parts []entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.Description, &p.CostPrice, &p.SalePrice,
			&p.Stock, &p.MinStock, &p.MaxStock, &p.Location, &p.Supplier,
			&p.LastSale, &p.Active, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate parts: %w", err)
	}
	return parts, nil
}
