package dto

import (
	"github.com/shopspring/decimal"
)

// PartDTO is the inventory listing row: the stored part enriched with its
// derived stock status and reorder suggestion.
type PartDTO struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"naam"`
	Description   string          `json:"beschrijving,omitempty"`
	CostPrice     decimal.Decimal `json:"inkoop_prijs"`
	SalePrice     decimal.Decimal `json:"verkoop_prijs"`
	Stock         int             `json:"voorraad"`
	MinStock      int             `json:"min_voorraad"`
	MaxStock      *int            `json:"max_voorraad,omitempty"`
	Location      *string         `json:"locatie,omitempty"`
	Supplier      *string         `json:"leverancier,omitempty"`
	LastSale      *string         `json:"laatste_verkoop,omitempty"`
	Active        bool            `json:"actief"`
	Status        string          `json:"status"`
	StatusLabel   string          `json:"status_label"`
	ReorderAmount int             `json:"bestel_advies"`
}
