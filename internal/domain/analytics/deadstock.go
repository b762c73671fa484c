package analytics

import (
	"time"

	"github.com/onderdelen-beheer/api/internal/domain/entity"
)

// DeadStockThresholdDays is the default trailing window: a part with no sale
// in the last 90 days counts as dead stock.
const DeadStockThresholdDays = 90

// DetectDeadStock returns the parts whose last sale is absent or strictly
// older than now − thresholdDays. Input order is preserved.
func DetectDeadStock(parts []entity.Part, now time.Time, thresholdDays int) []entity.Part {
	cutoff := now.AddDate(0, 0, -thresholdDays)
	dead := make([]entity.Part, 0, len(parts))
	for _, p := range parts {
		if p.LastSale == nil || p.LastSale.Before(cutoff) {
			dead = append(dead, p)
		}
	}
	return dead
}
