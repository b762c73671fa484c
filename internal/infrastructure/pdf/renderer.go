// Package pdf renders the report documents with Maroto v2.
//
// Page layout shared by all four reports:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Onderdelen Beheer + titel + subtitel + datum       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SAMENVATTING: grijs paneel met kerncijfers                 │
//	│  TABEL: kop met vulkleur | zebra-rijen | status in kleur    │
//	│  FOOTER: juridische regels + "Pagina {n} - {jaar} © ..."    │
//	└─────────────────────────────────────────────────────────────┘
//
// Blocks are plain []core.Row values built by pure functions and concatenated
// by the composer; layout position is carried by the row sequence itself, not
// by a mutable cursor on the builder.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/onderdelen-beheer/api/internal/domain"
)

const (
	companyName     = "Onderdelen Beheer"
	companyTagline  = "Voorraadbeheersysteem"
	legalLine1      = "Dit document is automatisch gegenereerd en rechtsgeldig zonder handtekening."
	legalLine2      = "Bewaar dit document voor uw administratie."
	tableRowHeight  = 6
	defaultFontSize = 9
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorPrimary   = &props.Color{Red: 59, Green: 130, Blue: 246}
	colorRed       = &props.Color{Red: 220, Green: 38, Blue: 38}
	colorOrange    = &props.Color{Red: 245, Green: 158, Blue: 11}
	colorGreen     = &props.Color{Red: 34, Green: 197, Blue: 94}
	colorWhite     = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorMuted     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorFaint     = &props.Color{Red: 150, Green: 150, Blue: 150}
	colorPanel     = &props.Color{Red: 240, Green: 240, Blue: 240}
	colorPanelWarm = &props.Color{Red: 255, Green: 243, Blue: 224}
	colorZebra     = &props.Color{Red: 245, Green: 245, Blue: 245}
	colorRule      = &props.Color{Red: 200, Green: 200, Blue: 200}
)

// ── Blocks ────────────────────────────────────────────────────────────────────

// Header: company block, report title, optional subtitle, generation
// timestamp and a separator rule.
func Header(title, subtitle string, generatedAt time.Time) []core.Row {
	rows := []core.Row{
		row.New(9).Add(col.New(12).Add(
			text.New(companyName, props.Text{Size: 20}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(companyTagline, props.Text{Size: 10, Color: colorMuted}),
		)),
		row.New(9).Add(col.New(12).Add(
			text.New(title, props.Text{Size: 16, Top: 3}),
		)),
	}
	if subtitle != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(subtitle, props.Text{Size: 10, Color: colorMuted}),
		)))
	}
	rows = append(rows,
		row.New(6).Add(col.New(12).Add(
			text.New("Gegenereerd op: "+FormatDateTimeLong(generatedAt), props.Text{Size: 10, Top: 1}),
		)),
		line.NewRow(3, props.Line{Color: colorRule, Thickness: 0.3}),
	)
	return rows
}

// SummaryPanel: a filled box with two columns of key figures. right may be
// empty for a single-column panel.
func SummaryPanel(left, right []string, background *props.Color) []core.Row {
	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	height := float64(6*n + 6)
	panel := row.New(height).
		WithStyle(&props.Cell{BackgroundColor: background}).
		Add(panelCol(left), panelCol(right))
	return []core.Row{panel, row.New(4)}
}

func panelCol(lines []string) core.Col {
	comps := make([]core.Component, 0, len(lines))
	for i, s := range lines {
		comps = append(comps, text.New(s, props.Text{
			Size: 10, Top: float64(4 + 6*i), Left: 4,
		}))
	}
	return col.New(6).Add(comps...)
}

// Column describes one table column. Widths are maroto grid units and must
// total 12 per table.
type Column struct {
	Label string
	Width int
	Align align.Type
}

// CellStyle overrides the text style of a single body cell.
type CellStyle struct {
	Color *props.Color
	Bold  bool
}

// TableSpec configures the generic table block.
type TableSpec struct {
	Columns    []Column
	HeaderFill *props.Color // nil → primary blue
	FontSize   float64      // body size; header renders one point larger
	// StyleCell, when set, is called for every body cell and may override
	// its color/weight (used to color-code status columns).
	StyleCell func(column int, value string) *CellStyle
}

// Table: a header row with fill color plus one row per body entry with
// alternating background. Pagination across pages is handled by the document
// engine; rows simply flow.
func Table(spec TableSpec, body [][]string) []core.Row {
	fill := spec.HeaderFill
	if fill == nil {
		fill = colorPrimary
	}
	size := spec.FontSize
	if size == 0 {
		size = defaultFontSize
	}

	headerCols := make([]core.Col, 0, len(spec.Columns))
	for _, c := range spec.Columns {
		headerCols = append(headerCols, col.New(c.Width).Add(text.New(c.Label, props.Text{
			Style: fontstyle.Bold, Size: size + 1, Align: c.Align,
			Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	rows := []core.Row{
		row.New(7).WithStyle(&props.Cell{BackgroundColor: fill}).Add(headerCols...),
	}

	for i, entry := range body {
		cols := make([]core.Col, 0, len(spec.Columns))
		for j, c := range spec.Columns {
			value := ""
			if j < len(entry) {
				value = entry[j]
			}
			style := props.Text{Size: size, Align: c.Align, Top: 1, Left: 1, Right: 1}
			if spec.StyleCell != nil {
				if override := spec.StyleCell(j, value); override != nil {
					if override.Color != nil {
						style.Color = override.Color
					}
					if override.Bold {
						style.Style = fontstyle.Bold
					}
				}
			}
			cols = append(cols, col.New(c.Width).Add(text.New(value, style)))
		}
		tr := row.New(tableRowHeight)
		if i%2 == 1 {
			tr = tr.WithStyle(&props.Cell{BackgroundColor: colorZebra})
		}
		rows = append(rows, tr.Add(cols...))
	}
	return rows
}

// LegalFooter: the disclaimer lines printed after the last block.
func LegalFooter() []core.Row {
	return []core.Row{
		row.New(8),
		row.New(4).Add(col.New(12).Add(
			text.New(legalLine1, props.Text{Size: 8, Color: colorMuted}),
		)),
		row.New(4).Add(col.New(12).Add(
			text.New(legalLine2, props.Text{Size: 8, Color: colorMuted}),
		)),
	}
}

// Build assembles the blocks into an A4 document and serializes it. A fresh
// engine is created per call, so concurrent builds share no state. On any
// engine failure it returns domain.ErrRender and no partial blob.
func Build(docTitle string, generatedAt time.Time, blocks ...[]core.Row) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithPageNumber(props.PageNumber{
			Pattern: fmt.Sprintf("Pagina {current} - %d © %s", generatedAt.Year(), companyName),
			Place:   props.Bottom,
			Size:    8,
			Color:   colorFaint,
		}).
		WithTitle(docTitle, true).
		Build()

	m := maroto.New(cfg)
	for _, block := range blocks {
		m.AddRows(block...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrRender, docTitle, err)
	}
	return doc.GetBytes(), nil
}
