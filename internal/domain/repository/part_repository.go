package repository

import (
	"context"

	"github.com/onderdelen-beheer/api/internal/domain/entity"
)

// PartRepository is the read-only port to the parts record store.
// The engine never mutates parts; writes happen elsewhere.
type PartRepository interface {
	// List returns every part, active or not, in SKU order.
	List(ctx context.Context) ([]entity.Part, error)
	// ListActive returns only active parts, in SKU order.
	ListActive(ctx context.Context) ([]entity.Part, error)
}
