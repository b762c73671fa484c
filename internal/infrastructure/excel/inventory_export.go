// Package excel serializes the flat inventory listing to an XLSX blob.
// This path is independent of the PDF renderer: no shared formatting state.
package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/onderdelen-beheer/api/internal/domain"
	"github.com/onderdelen-beheer/api/internal/domain/entity"
)

// SheetName of the single sheet in the export.
const SheetName = "Voorraad"

var headers = []string{
	"Nr", "SKU", "Naam", "Voorraad", "Min Voorraad", "Inkoop Prijs", "Waarde", "Locatie",
}

// InventoryExporter implements reports.InventoryExporter with excelize.
type InventoryExporter struct{}

// NewInventoryExporter builds the exporter.
func NewInventoryExporter() *InventoryExporter { return &InventoryExporter{} }

// Export writes one numbered row per part. Prices and valuations are numeric
// cells so the spreadsheet can sum them; absent locations render as "-".
// Waarde is the cost valuation (voorraad × inkoop_prijs), matching the
// preceding price column.
func (e *InventoryExporter) Export(parts []entity.Part, _ time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("%w: rename sheet: %v", domain.ErrRender, err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("%w: header cell: %v", domain.ErrRender, err)
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("%w: header %s: %v", domain.ErrRender, h, err)
		}
	}

	for i, p := range parts {
		location := "-"
		if p.Location != nil && *p.Location != "" {
			location = *p.Location
		}
		values := []any{
			i + 1,
			p.SKU,
			p.Name,
			p.Stock,
			p.MinStock,
			p.CostPrice.InexactFloat64(),
			p.CostValue().InexactFloat64(),
			location,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("%w: body cell: %v", domain.ErrRender, err)
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", domain.ErrRender, i+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: serialize workbook: %v", domain.ErrRender, err)
	}
	return buf.Bytes(), nil
}
