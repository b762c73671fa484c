package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/onderdelen-beheer/api/internal/domain/entity"
	"github.com/onderdelen-beheer/api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implements the SaleRepository port over the verkopen table.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository builds the persistence adapter for sales.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// ListBetween returns sales with verkocht_op in [start, end], oldest first.
// The part name is resolved via a LEFT JOIN; sales whose part was deleted
// get an empty name.
func (r *SaleRepo) ListBetween(ctx context.Context, start, end time.Time) ([]entity.Sale, error) {
	query := `
		SELECT v.id, v.onderdeel_id, COALESCE(o.naam, ''), v.aantal,
		       v.stuk_prijs, v.totaal_prijs, v.inkoop_prijs,
		       v.klant_naam, v.klant_telefoon, v.klant_email,
		       v.betaalmethode, v.notities, v.verkocht_op
		FROM verkopen v
		LEFT JOIN onderdelen o ON o.id = v.onderdeel_id
		WHERE v.verkocht_op >= $1 AND v.verkocht_op <= $2
		ORDER BY v.verkocht_op`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close()

	var sales []entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.PartID, &s.PartName, &s.Quantity,
			&s.UnitPrice, &s.TotalPrice, &s.UnitCost,
			&s.CustomerName, &s.CustomerPhone, &s.CustomerEmail,
			&s.Payment, &s.Notes, &s.SoldAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w", err)
	}
	return sales, nil
}
