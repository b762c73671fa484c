package repository

import (
	"context"
	"time"

	"github.com/onderdelen-beheer/api/internal/domain/entity"
)

// SaleRepository is the read-only port to the sales record store.
type SaleRepository interface {
	// ListBetween returns sales with verkocht_op in [start, end], oldest
	// first, with the part name resolved when the part still exists.
	ListBetween(ctx context.Context, start, end time.Time) ([]entity.Sale, error)
}
