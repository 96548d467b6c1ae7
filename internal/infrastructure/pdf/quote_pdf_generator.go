// Package pdf implementa la representación imprimible de una cotización.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social del cliente  │  Folio + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TÍTULO + descripción de la propuesta                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Concepto | P.Unit | Importe                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA 16% / TOTAL                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: vigencia + notas                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/soportec/gestor-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoQuoteGenerator implementa usecase.QuotePDFGenerator usando Maroto v2.
type MarotoQuoteGenerator struct{}

// NewMarotoQuoteGenerator construye el generador.
func NewMarotoQuoteGenerator() *MarotoQuoteGenerator { return &MarotoQuoteGenerator{} }

// GenerateQuotePDF genera el PDF de la cotización y devuelve sus bytes.
func (g *MarotoQuoteGenerator) GenerateQuotePDF(_ context.Context, quote *entity.Quote) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+quote.QuoteNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(quote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(titleRow(quote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(quote.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(quote))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(quote) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social del cliente (izq) y folio + fecha (der).
func headerRow(quote *entity.Quote) core.Row {
	fecha := quote.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(quote.ClientName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Cliente", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(quote.QuoteNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// titleRow: título de la propuesta y su descripción.
func titleRow(quote *entity.Quote) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(quote.Title, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(quote.Description, "—"), props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de conceptos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Concepto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la cotización.
func tableItemRows(items []entity.QuoteItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(it.UnitPrice.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(it.Total.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(quote *entity.Quote) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("IVA (16%):"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("$"+formatMoney(quote.Subtotal.StringFixed(2))),
			value("$"+formatMoney(quote.Tax.StringFixed(2))),
			grandValue("$"+formatMoney(quote.Total.StringFixed(2))),
		),
		col.New(3),
	)
}

// footerRows: vigencia, estado y notas.
func footerRows(quote *entity.Quote) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("CONDICIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Vigente hasta: %s   |   Estado: %s",
				quote.ValidUntil.Format("02/01/2006"), quote.Status,
			), props.Text{Size: 8, Top: 1, Color: colorGray}),
		)),
	}

	if quote.Notes != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Notas: "+quote.Notes, props.Text{
				Size: 7.5, Color: colorGray, Top: 2,
			}),
		)))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Precios en MXN. Esta cotización no constituye un comprobante fiscal; "+
				"los montos incluyen IVA del 16% conforme a la legislación vigente.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta comas de miles en un string numérico con decimales.
// Ej: "25000.00" → "25,000.00", "1000000.50" → "1,000,000.50"
func formatMoney(s string) string {
	intPart := s
	decPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, decPart = s[:i], s[i:]
	}
	n := len(intPart)
	if n <= 3 {
		return intPart + decPart
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf) + decPart
}
