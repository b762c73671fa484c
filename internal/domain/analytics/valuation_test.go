package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onderdelen-beheer/api/internal/domain/analytics"
	"github.com/onderdelen-beheer/api/internal/domain/entity"
)

func valuedPart(sku string, stock, minStock int, cost, sale string) entity.Part {
	return entity.Part{
		ID:        "id-" + sku,
		SKU:       sku,
		Name:      "Part " + sku,
		CostPrice: dec(cost),
		SalePrice: dec(sale),
		Stock:     stock,
		MinStock:  minStock,
		Active:    true,
	}
}

func TestValuate_Empty(t *testing.T) {
	v := analytics.Valuate(nil)

	assert.Equal(t, 0, v.ItemCount)
	assert.True(t, v.SaleValue.IsZero())
	assert.True(t, v.CostValue.IsZero())
	assert.True(t, v.PotentialProfit.IsZero())
	assert.Equal(t, 0, v.OutOfStock)
	assert.Equal(t, 0, v.LowStock)
}

func TestValuate_Totals(t *testing.T) {
	parts := []entity.Part{
		valuedPart("A", 10, 2, "5.00", "12.50"),  // sale 125, cost 50
		valuedPart("B", 4, 2, "20.00", "35.00"),  // sale 140, cost 80
	}
	v := analytics.Valuate(parts)

	assert.Equal(t, 2, v.ItemCount)
	assert.True(t, v.SaleValue.Equal(dec("265.00")), "sale value: got %s", v.SaleValue)
	assert.True(t, v.CostValue.Equal(dec("130.00")), "cost value: got %s", v.CostValue)
	assert.True(t, v.PotentialProfit.Equal(dec("135.00")))
}

// Potential profit must be the exact difference, not a rounded derivative.
func TestValuate_ProfitIsExactDifference(t *testing.T) {
	parts := []entity.Part{
		valuedPart("A", 7, 1, "3.33", "9.99"),
		valuedPart("B", 13, 1, "1.01", "2.02"),
	}
	v := analytics.Valuate(parts)

	assert.True(t, v.PotentialProfit.Equal(v.SaleValue.Sub(v.CostValue)))
}

// LowStock counts out-of-stock and critical parts; the Low tier is not an
// alert in the valuation totals.
func TestValuate_AlertCounts(t *testing.T) {
	parts := []entity.Part{
		valuedPart("OUT", 0, 5, "1.00", "2.00"),     // out of stock
		valuedPart("CRIT", 3, 5, "1.00", "2.00"),    // critical
		valuedPart("LOW", 8, 5, "1.00", "2.00"),     // low tier, no alert
		valuedPart("OK", 20, 5, "1.00", "2.00"),     // healthy
	}
	v := analytics.Valuate(parts)

	assert.Equal(t, 1, v.OutOfStock)
	assert.Equal(t, 2, v.LowStock, "low stock counts out-of-stock plus critical")
}

func TestReorderSuggestion(t *testing.T) {
	intp := func(n int) *int { return &n }

	cases := []struct {
		name string
		part entity.Part
		want int
	}{
		{"target is max stock when set", entity.Part{Stock: 3, MinStock: 5, MaxStock: intp(20)}, 17},
		{"target is twice min without max", entity.Part{Stock: 3, MinStock: 5}, 7},
		{"at target orders nothing", entity.Part{Stock: 10, MinStock: 5}, 0},
		{"above target orders nothing", entity.Part{Stock: 30, MinStock: 5, MaxStock: intp(20)}, 0},
		{"min above max never goes negative", entity.Part{Stock: 8, MinStock: 50, MaxStock: intp(5)}, 0},
		{"empty part orders nothing", entity.Part{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, analytics.ReorderSuggestion(tc.part))
		})
	}
}
