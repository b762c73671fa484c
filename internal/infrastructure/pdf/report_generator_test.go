package pdf_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onderdelen-beheer/api/internal/application/reports"
	"github.com/onderdelen-beheer/api/internal/domain/entity"
	"github.com/onderdelen-beheer/api/internal/infrastructure/pdf"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func samplePart(sku string, stock int) entity.Part {
	loc := "A1-01"
	return entity.Part{
		ID:        "id-" + sku,
		SKU:       sku,
		Name:      "Part " + sku,
		CostPrice: dec("5.00"),
		SalePrice: dec("12.50"),
		Stock:     stock,
		MinStock:  3,
		Location:  &loc,
		Active:    true,
	}
}

func sampleSale(id string) entity.Sale {
	cost := dec("5.00")
	customer := "J. Tester"
	return entity.Sale{
		ID:           id,
		PartID:       "p-" + id,
		PartName:     "Part " + id,
		Quantity:     2,
		UnitPrice:    dec("12.50"),
		TotalPrice:   dec("25.00"),
		UnitCost:     &cost,
		CustomerName: &customer,
		Payment:      entity.PaymentCard,
		SoldAt:       time.Date(2026, 3, 10, 11, 30, 0, 0, time.UTC),
	}
}

func requirePDF(t *testing.T, blob []byte, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotEmpty(t, blob)
	assert.Equal(t, "%PDF", string(blob[:4]), "output must be a PDF document")
}

func TestSalesSummary_RendersPDF(t *testing.T) {
	g := pdf.NewReportGenerator()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	sales := []entity.Sale{sampleSale("s1"), sampleSale("s2")}
	blob, err := g.SalesSummary(context.Background(), sales, reports.PeriodMonth, start, end)
	requirePDF(t, blob, err)
}

func TestSalesSummary_EmptyPeriod(t *testing.T) {
	g := pdf.NewReportGenerator()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	blob, err := g.SalesSummary(context.Background(), nil, reports.PeriodMonth, start, end)
	requirePDF(t, blob, err)
}

func TestSalesSummary_UnresolvedPartName(t *testing.T) {
	g := pdf.NewReportGenerator()
	s := sampleSale("s1")
	s.PartName = "" // part deleted after the sale

	blob, err := g.SalesSummary(context.Background(), []entity.Sale{s},
		reports.PeriodDay, time.Now().AddDate(0, 0, -1), time.Now())
	requirePDF(t, blob, err)
}

func TestInventoryValuation_RendersPDF(t *testing.T) {
	g := pdf.NewReportGenerator()
	parts := []entity.Part{
		samplePart("OK", 20),
		samplePart("LOW", 2),
		samplePart("OUT", 0),
	}

	blob, err := g.InventoryValuation(context.Background(), parts)
	requirePDF(t, blob, err)
}

func TestInventoryValuation_Empty(t *testing.T) {
	g := pdf.NewReportGenerator()
	blob, err := g.InventoryValuation(context.Background(), nil)
	requirePDF(t, blob, err)
}

func TestProfitLoss_RendersPDF(t *testing.T) {
	g := pdf.NewReportGenerator()
	blob, err := g.ProfitLoss(context.Background(), []entity.Sale{sampleSale("s1")}, "Maandelijks")
	requirePDF(t, blob, err)
}

func TestProfitLoss_EmptyPeriod(t *testing.T) {
	g := pdf.NewReportGenerator()
	blob, err := g.ProfitLoss(context.Background(), nil, "Dagelijks")
	requirePDF(t, blob, err)
}

func TestDeadStock_RendersPDF(t *testing.T) {
	g := pdf.NewReportGenerator()
	old := time.Now().AddDate(0, 0, -120)
	never := samplePart("NEVER", 5)
	stale := samplePart("STALE", 3)
	stale.LastSale = &old

	blob, err := g.DeadStock(context.Background(), []entity.Part{never, stale}, time.Now())
	requirePDF(t, blob, err)
}

func TestDeadStock_Empty(t *testing.T) {
	g := pdf.NewReportGenerator()
	blob, err := g.DeadStock(context.Background(), nil, time.Now())
	requirePDF(t, blob, err)
}

// A report over many rows must paginate without error.
func TestInventoryValuation_ManyRows(t *testing.T) {
	g := pdf.NewReportGenerator()
	parts := make([]entity.Part, 0, 120)
	for i := 0; i < 120; i++ {
		parts = append(parts, samplePart("SKU-"+strconv.Itoa(i), i%15))
	}

	blob, err := g.InventoryValuation(context.Background(), parts)
	requirePDF(t, blob, err)
}

func TestDutchDates(t *testing.T) {
	ts := time.Date(2026, 8, 27, 14, 5, 0, 0, time.UTC)

	assert.Equal(t, "27-08-2026", pdf.FormatDate(ts))
	assert.Equal(t, "27-08-2026 14:05", pdf.FormatDateTime(ts))
	assert.Equal(t, "27 augustus 2026", pdf.FormatDateLong(ts))
	assert.Equal(t, "27 augustus 2026 14:05", pdf.FormatDateTimeLong(ts))
}
