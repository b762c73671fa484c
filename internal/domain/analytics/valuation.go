package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/onderdelen-beheer/api/internal/domain/entity"
	"github.com/onderdelen-beheer/api/internal/domain/stock"
)

// Valuation summarizes the current inventory position.
type Valuation struct {
	ItemCount       int
	SaleValue       decimal.Decimal // Σ voorraad × verkoop_prijs
	CostValue       decimal.Decimal // Σ voorraad × inkoop_prijs
	PotentialProfit decimal.Decimal // SaleValue − CostValue
	OutOfStock      int             // parts with quantity 0
	LowStock        int             // parts classified OutOfStock or Critical
}

// Valuate computes inventory valuation totals over all given parts.
func Valuate(parts []entity.Part) Valuation {
	v := Valuation{
		ItemCount: len(parts),
		SaleValue: decimal.Zero,
		CostValue: decimal.Zero,
	}
	for _, p := range parts {
		v.SaleValue = v.SaleValue.Add(p.StockValue())
		v.CostValue = v.CostValue.Add(p.CostValue())
		switch stock.Classify(p.Stock, p.MinStock) {
		case stock.OutOfStock:
			v.OutOfStock++
			v.LowStock++
		case stock.Critical:
			v.LowStock++
		}
	}
	v.PotentialProfit = v.SaleValue.Sub(v.CostValue)
	return v
}

// ReorderSuggestion is the quantity to order to bring a part back to its
// target level: max_voorraad when set, otherwise twice the minimum. Clamped
// at zero, so inconsistent thresholds (min > max) never yield a negative
// order quantity.
func ReorderSuggestion(p entity.Part) int {
	target := 2 * p.MinStock
	if p.MaxStock != nil {
		target = *p.MaxStock
	}
	if qty := target - p.Stock; qty > 0 {
		return qty
	}
	return 0
}
