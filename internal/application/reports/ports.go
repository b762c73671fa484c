package reports

import (
	"context"
	"time"

	"github.com/onderdelen-beheer/api/internal/domain/entity"
)

// DocumentGenerator renders report documents to PDF byte blobs.
// Implemented by infrastructure/pdf. Every method is a pure function over its
// inputs apart from the generation timestamp in the header; a failed render
// returns an error and no partial blob.
type DocumentGenerator interface {
	// SalesSummary: header with period label and date range, financial
	// summary panel, one table row per sale, legal footer.
	SalesSummary(ctx context.Context, sales []entity.Sale, period Period, start, end time.Time) ([]byte, error)
	// InventoryValuation: valuation panel plus one table row per part with a
	// color-coded status column.
	InventoryValuation(ctx context.Context, parts []entity.Part) ([]byte, error)
	// ProfitLoss: financial panel with subtraction layout and margin band.
	// No table.
	ProfitLoss(ctx context.Context, sales []entity.Sale, periodLabel string) ([]byte, error)
	// DeadStock: summary panel and one table row per dead part. The caller
	// passes the already-filtered dead stock plus the locked valuation.
	DeadStock(ctx context.Context, dead []entity.Part, now time.Time) ([]byte, error)
}

// InventoryExporter serializes the flat inventory listing to a
// spreadsheet-compatible blob. Kept separate from DocumentGenerator: the two
// paths share no formatting state.
type InventoryExporter interface {
	Export(parts []entity.Part, now time.Time) ([]byte, error)
}
