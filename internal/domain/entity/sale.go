package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates the accepted payment methods.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "contant"
	PaymentCard     PaymentMethod = "pin"
	PaymentTransfer PaymentMethod = "overschrijving"
)

// Sale is a recorded transaction (verkoop) referencing a Part.
//
// TotalPrice is stored independently of UnitPrice × Quantity so discounts
// survive; the engine never re-derives it. UnitCost is the cost price at the
// time of sale and may be absent for legacy records.
type Sale struct {
	ID            string
	PartID        string
	PartName      string // resolved at read time; empty when the part no longer exists
	Quantity      int
	UnitPrice     decimal.Decimal // stuk_prijs
	TotalPrice    decimal.Decimal // totaal_prijs
	UnitCost      *decimal.Decimal
	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string
	Payment       PaymentMethod
	Notes         *string
	SoldAt        time.Time
}
