package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/onderdelen-beheer/api/internal/domain/repository"
)

// ExportUseCase produces the flat spreadsheet export of the inventory.
// It is the simpler sibling of UseCase and deliberately shares nothing with
// the PDF path.
type ExportUseCase struct {
	parts    repository.PartRepository
	exporter InventoryExporter
	now      func() time.Time
}

// NewExportUseCase wires the inventory export use case.
func NewExportUseCase(parts repository.PartRepository, exporter InventoryExporter) *ExportUseCase {
	return &ExportUseCase{parts: parts, exporter: exporter, now: time.Now}
}

// Inventory exports every part as a spreadsheet row.
// Filename follows voorraad_{ISO-date}.xlsx.
func (uc *ExportUseCase) Inventory(ctx context.Context) (blob []byte, filename string, err error) {
	parts, err := uc.parts.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("inventory export: load parts: %w", err)
	}
	if err := validateParts(parts); err != nil {
		return nil, "", err
	}
	now := uc.now()
	blob, err = uc.exporter.Export(parts, now)
	if err != nil {
		return nil, "", fmt.Errorf("inventory export: %w", err)
	}
	return blob, fmt.Sprintf("voorraad_%s.xlsx", now.Format("2006-01-02")), nil
}
