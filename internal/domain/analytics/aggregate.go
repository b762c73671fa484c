// Package analytics holds the pure computations behind the reports and the
// dashboard: financial aggregation, dead-stock detection, inventory valuation
// and reorder suggestions. Everything here is a side-effect-free reduction
// over in-memory records.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/onderdelen-beheer/api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// FinancialSummary is the reduction of a set of sales over a period.
type FinancialSummary struct {
	Count       int
	Revenue     decimal.Decimal // Σ totaal_prijs
	Cost        decimal.Decimal // Σ aantal × inkoop_prijs (0 when cost unknown)
	GrossProfit decimal.Decimal
	MarginPct   decimal.Decimal // 0 when revenue is 0, never a division artifact
}

// Aggregate reduces sales into a FinancialSummary. Sales without a recorded
// unit cost contribute zero cost, not excluded — this overstates profit for
// legacy records and is kept on purpose; see DESIGN.md before changing it.
// The result does not depend on the order of the input.
func Aggregate(sales []entity.Sale) FinancialSummary {
	s := FinancialSummary{
		Count:       len(sales),
		Revenue:     decimal.Zero,
		Cost:        decimal.Zero,
		GrossProfit: decimal.Zero,
		MarginPct:   decimal.Zero,
	}
	for _, sale := range sales {
		s.Revenue = s.Revenue.Add(sale.TotalPrice)
		if sale.UnitCost != nil {
			s.Cost = s.Cost.Add(decimal.NewFromInt(int64(sale.Quantity)).Mul(*sale.UnitCost))
		}
	}
	s.GrossProfit = s.Revenue.Sub(s.Cost)
	if s.Revenue.GreaterThan(decimal.Zero) {
		s.MarginPct = s.GrossProfit.Div(s.Revenue).Mul(hundred)
	}
	return s
}
