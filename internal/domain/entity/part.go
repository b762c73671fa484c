package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part is a stocked item (onderdeel) with pricing and quantity attributes.
// The engine treats parts as read-only input; the record store owns them.
// Optional fields are pointers: absent means "not present", never zero.
type Part struct {
	ID          string
	SKU         string
	Name        string
	Description string
	CostPrice   decimal.Decimal // inkoop_prijs
	SalePrice   decimal.Decimal // verkoop_prijs
	Stock       int             // voorraad
	MinStock    int             // min_voorraad
	MaxStock    *int            // max_voorraad
	Location    *string
	Supplier    *string
	LastSale    *time.Time // nil = never sold
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockValue is the line valuation at sale price (voorraad × verkoop_prijs).
func (p Part) StockValue() decimal.Decimal {
	return decimal.NewFromInt(int64(p.Stock)).Mul(p.SalePrice)
}

// CostValue is the line valuation at cost price (voorraad × inkoop_prijs).
func (p Part) CostValue() decimal.Decimal {
	return decimal.NewFromInt(int64(p.Stock)).Mul(p.CostPrice)
}
