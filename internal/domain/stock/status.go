// Package stock classifies inventory health from quantity and threshold.
package stock

// Status is the discrete health tier of a part's stock level.
// Values are ordered by severity: Healthy < Low < Critical < OutOfStock.
type Status int

const (
	Healthy Status = iota
	Low
	Critical
	OutOfStock
)

// Classify maps (quantity, minStock) to a Status. Rules are evaluated in
// order, first match wins:
//
//  1. quantity == 0            → OutOfStock
//  2. quantity ≤ minStock      → Critical
//  3. quantity ≤ 2 × minStock  → Low
//  4. otherwise                → Healthy
//
// With minStock == 0 rules 2 and 3 only fire at quantity 0, which rule 1
// already caught, so any quantity ≥ 1 is Healthy. That is intentional: a part
// without a minimum threshold has no alert levels.
func Classify(quantity, minStock int) Status {
	switch {
	case quantity == 0:
		return OutOfStock
	case quantity <= minStock:
		return Critical
	case quantity <= 2*minStock:
		return Low
	default:
		return Healthy
	}
}

// Label is the Dutch display label shown in the UI and dashboard.
func (s Status) Label() string {
	switch s {
	case OutOfStock:
		return "Uit voorraad"
	case Critical:
		return "Kritiek"
	case Low:
		return "Laag"
	default:
		return "Goed"
	}
}

// String returns the stable machine-readable name.
func (s Status) String() string {
	switch s {
	case OutOfStock:
		return "OUT_OF_STOCK"
	case Critical:
		return "CRITICAL"
	case Low:
		return "LOW"
	default:
		return "HEALTHY"
	}
}
