package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/onderdelen-beheer/api/internal/domain/entity"
	"github.com/onderdelen-beheer/api/internal/infrastructure/excel"
)

func exportedPart(sku, name string, stock int) entity.Part {
	loc := "B2-04"
	return entity.Part{
		ID:        "id-" + sku,
		SKU:       sku,
		Name:      name,
		CostPrice: decimal.RequireFromString("4.20"),
		SalePrice: decimal.RequireFromString("9.95"),
		Stock:     stock,
		MinStock:  10,
		Location:  &loc,
		Active:    true,
	}
}

func TestExport_Workbook(t *testing.T) {
	exp := excel.NewInventoryExporter()
	parts := []entity.Part{
		exportedPart("OLI-010", "Oliefilter", 60),
		exportedPart("REM-001", "Remblokken set", 24),
	}

	blob, err := exp.Export(parts, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, blob)

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	require.NoError(t, err, "the blob must be a readable workbook")
	defer f.Close()

	require.Equal(t, []string{excel.SheetName}, f.GetSheetList())

	// Header row.
	for i, want := range []string{"Nr", "SKU", "Naam", "Voorraad", "Min Voorraad", "Inkoop Prijs", "Waarde", "Locatie"} {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		got, err := f.GetCellValue(excel.SheetName, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, "header column %d", i+1)
	}

	// First body row.
	row2 := func(col int) string {
		cell, err := excelize.CoordinatesToCellName(col, 2)
		require.NoError(t, err)
		v, err := f.GetCellValue(excel.SheetName, cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "1", row2(1))
	assert.Equal(t, "OLI-010", row2(2))
	assert.Equal(t, "Oliefilter", row2(3))
	assert.Equal(t, "60", row2(4))
	assert.Equal(t, "10", row2(5))
	assert.Equal(t, "4.2", row2(6))
	assert.Equal(t, "252", row2(7), "waarde is voorraad × inkoop_prijs")
	assert.Equal(t, "B2-04", row2(8))
}

func TestExport_EmptyInventory(t *testing.T) {
	exp := excel.NewInventoryExporter()

	blob, err := exp.Export(nil, time.Now())
	require.NoError(t, err, "an empty inventory still yields a header-only sheet")

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue(excel.SheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Nr", got)
}

func TestExport_MissingLocationRendersDash(t *testing.T) {
	exp := excel.NewInventoryExporter()
	p := exportedPart("ACC-205", "Accu 60Ah", 3)
	p.Location = nil

	blob, err := exp.Export([]entity.Part{p}, time.Now())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue(excel.SheetName, "H2")
	require.NoError(t, err)
	assert.Equal(t, "-", got)
}
