package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/onderdelen-beheer/api/internal/application/reports"
	"github.com/onderdelen-beheer/api/internal/domain/analytics"
	"github.com/onderdelen-beheer/api/internal/domain/entity"
)

var _ reports.DocumentGenerator = (*ReportGenerator)(nil)

// ReportGenerator implements reports.DocumentGenerator with the Maroto-based
// block primitives. It holds no state between calls.
type ReportGenerator struct {
	now func() time.Time
}

// NewReportGenerator builds the generator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{now: time.Now}
}

// ── Verkoop Overzicht ─────────────────────────────────────────────────────────

// SalesSummary renders one row per sale plus a financial summary panel.
func (g *ReportGenerator) SalesSummary(
	_ context.Context,
	sales []entity.Sale,
	period reports.Period,
	start, end time.Time,
) ([]byte, error) {
	now := g.now()
	sum := analytics.Aggregate(sales)

	subtitle := fmt.Sprintf("%s rapport - %s tot %s", period.Label(), FormatDate(start), FormatDate(end))
	left := []string{
		fmt.Sprintf("Totaal verkopen: %d", sum.Count),
		"Totale omzet: " + eur(sum.Revenue),
	}
	right := []string{
		"Totale winst: " + eur(sum.GrossProfit),
		fmt.Sprintf("Winstmarge: %s%%", sum.MarginPct.StringFixed(1)),
	}

	body := make([][]string, 0, len(sales))
	for _, s := range sales {
		name := s.PartName
		if name == "" {
			name = "Onbekend product"
		}
		body = append(body, []string{
			FormatDateTime(s.SoldAt),
			name,
			strconv.Itoa(s.Quantity),
			eur(s.UnitPrice),
			eur(s.TotalPrice),
			orDash(s.CustomerName),
			string(s.Payment),
		})
	}

	table := Table(TableSpec{
		Columns: []Column{
			{Label: "Datum", Width: 2, Align: align.Left},
			{Label: "Product", Width: 3, Align: align.Left},
			{Label: "Aantal", Width: 1, Align: align.Center},
			{Label: "Prijs/stuk", Width: 2, Align: align.Right},
			{Label: "Totaal", Width: 1, Align: align.Right},
			{Label: "Klant", Width: 2, Align: align.Left},
			{Label: "Betaling", Width: 1, Align: align.Left},
		},
	}, body)

	return Build("Verkoop Overzicht", now,
		Header("Verkoop Overzicht", subtitle, now),
		SummaryPanel(left, right, colorPanel),
		table,
		LegalFooter(),
	)
}

// ── Voorraad Waardering ───────────────────────────────────────────────────────

// InventoryValuation renders valuation totals plus one row per part. The
// status column uses the simplified three-way check (uit voorraad / laag /
// ok), not the four-tier classifier: the report only distinguishes
// action-needed from fine.
func (g *ReportGenerator) InventoryValuation(_ context.Context, parts []entity.Part) ([]byte, error) {
	now := g.now()
	val := analytics.Valuate(parts)

	left := []string{
		fmt.Sprintf("Totaal artikelen: %d", val.ItemCount),
		"Voorraad waarde (verkoop): " + eur(val.SaleValue),
		"Voorraad waarde (inkoop): " + eur(val.CostValue),
	}
	right := []string{
		fmt.Sprintf("Uit voorraad: %d", val.OutOfStock),
		fmt.Sprintf("Lage voorraad: %d", val.LowStock),
		"Potentiële winst: " + eur(val.PotentialProfit),
	}

	body := make([][]string, 0, len(parts))
	for _, p := range parts {
		body = append(body, []string{
			p.SKU,
			p.Name,
			strconv.Itoa(p.Stock),
			strconv.Itoa(p.MinStock),
			eur(p.CostPrice),
			eur(p.SalePrice),
			eur(p.StockValue()),
			orDash(p.Location),
			valuationStatus(p),
		})
	}

	table := Table(TableSpec{
		Columns: []Column{
			{Label: "SKU", Width: 2, Align: align.Left},
			{Label: "Product", Width: 2, Align: align.Left},
			{Label: "Voorraad", Width: 1, Align: align.Center},
			{Label: "Min", Width: 1, Align: align.Center},
			{Label: "Inkoop", Width: 1, Align: align.Right},
			{Label: "Verkoop", Width: 1, Align: align.Right},
			{Label: "Waarde", Width: 1, Align: align.Right},
			{Label: "Locatie", Width: 1, Align: align.Left},
			{Label: "Status", Width: 2, Align: align.Left},
		},
		FontSize: 8,
		StyleCell: func(column int, value string) *CellStyle {
			if column != 8 {
				return nil
			}
			switch value {
			case "UIT VOORRAAD":
				return &CellStyle{Color: colorRed, Bold: true}
			case "LAAG":
				return &CellStyle{Color: colorOrange, Bold: true}
			default:
				return &CellStyle{Color: colorGreen}
			}
		},
	}, body)

	return Build("Voorraad Waardering", now,
		Header("Voorraad Waardering", "Actuele voorraadstatus per "+FormatDateLong(now), now),
		SummaryPanel(left, right, colorPanel),
		table,
	)
}

// valuationStatus is the report's own two-threshold check. Deliberately not
// stock.Classify: this column collapses Critical and Low into one label.
func valuationStatus(p entity.Part) string {
	switch {
	case p.Stock == 0:
		return "UIT VOORRAAD"
	case p.Stock <= p.MinStock:
		return "LAAG"
	default:
		return "OK"
	}
}

// ── Winst & Verlies ───────────────────────────────────────────────────────────

// ProfitLoss renders the financial panel with a subtraction layout and the
// margin highlighted in an accent band. No table.
func (g *ReportGenerator) ProfitLoss(_ context.Context, sales []entity.Sale, periodLabel string) ([]byte, error) {
	now := g.now()
	sum := analytics.Aggregate(sales)

	panelStyle := &props.Cell{BackgroundColor: colorPanel}
	amountRow := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(7).WithStyle(panelStyle).Add(
			col.New(8).Add(text.New(label, props.Text{Size: 10, Style: style, Top: 1.5, Left: 4})),
			col.New(4).Add(text.New(value, props.Text{Size: 10, Style: style, Top: 1.5, Align: align.Right, Right: 4})),
		)
	}

	panel := []core.Row{
		row.New(8).WithStyle(panelStyle).Add(col.New(12).Add(
			text.New("Financieel Overzicht", props.Text{Style: fontstyle.Bold, Size: 11, Top: 2, Left: 4}),
		)),
		amountRow("Totale omzet:", eur(sum.Revenue), false),
		amountRow("Inkoopkosten:", "- "+eur(sum.Cost), false),
		line.NewRow(2, props.Line{Color: colorFaint, Thickness: 0.4}),
		amountRow("Bruto winst:", eur(sum.GrossProfit), true),
		row.New(5),
		row.New(12).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(col.New(12).Add(
			text.New(
				fmt.Sprintf("Winstmarge: %s%%", sum.MarginPct.StringFixed(1)),
				props.Text{Style: fontstyle.Bold, Size: 12, Color: colorWhite, Align: align.Center, Top: 4},
			),
		)),
	}

	return Build("Winst & Verlies Rapport", now,
		Header("Winst & Verlies Rapport", "Financieel overzicht - "+periodLabel, now),
		panel,
		LegalFooter(),
	)
}

// ── Dode Voorraad ─────────────────────────────────────────────────────────────

// DeadStock renders the already-filtered dead parts with the capital locked
// in them.
func (g *ReportGenerator) DeadStock(_ context.Context, dead []entity.Part, _ time.Time) ([]byte, error) {
	now := g.now()

	locked := decimal.Zero
	for _, p := range dead {
		locked = locked.Add(p.StockValue())
	}
	left := []string{
		fmt.Sprintf("Producten zonder verkoop (%d dagen): %d", analytics.DeadStockThresholdDays, len(dead)),
		"Totale waarde vastgelegd: " + eur(locked),
	}

	body := make([][]string, 0, len(dead))
	for _, p := range dead {
		lastSale := "Nooit verkocht"
		if p.LastSale != nil {
			lastSale = FormatDate(*p.LastSale)
		}
		body = append(body, []string{
			p.SKU,
			p.Name,
			strconv.Itoa(p.Stock),
			eur(p.SalePrice),
			eur(p.StockValue()),
			lastSale,
			orDash(p.Location),
		})
	}

	table := Table(TableSpec{
		Columns: []Column{
			{Label: "SKU", Width: 2, Align: align.Left},
			{Label: "Product", Width: 3, Align: align.Left},
			{Label: "Voorraad", Width: 1, Align: align.Center},
			{Label: "Prijs", Width: 1, Align: align.Right},
			{Label: "Waarde", Width: 2, Align: align.Right},
			{Label: "Laatste verkoop", Width: 2, Align: align.Left},
			{Label: "Locatie", Width: 1, Align: align.Left},
		},
		HeaderFill: colorOrange,
	}, body)

	return Build("Dode Voorraad Analyse", now,
		Header("Dode Voorraad Analyse", "Producten zonder recente verkopen", now),
		SummaryPanel(left, nil, colorPanelWarm),
		table,
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// eur formats a money cell the way the reports print amounts.
func eur(d decimal.Decimal) string {
	return "€ " + d.StringFixed(2)
}

func orDash(s *string) string {
	if s != nil && *s != "" {
		return *s
	}
	return "-"
}
