package pdf

import (
	"context"
	"fmt"

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

	"github.com/smartstock/pos-api/internal/domain/entity"
	"github.com/smartstock/pos-api/internal/domain/invoice"
)

var (
	colorPrimary = &props.Color{Red: 59, Green: 130, Blue: 246}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoRenderer es la estrategia de layout: describe la factura como un
// árbol de filas y columnas y deja el posicionamiento al motor. El render
// es determinista, no depende de ningún estado externo al Document.
type MarotoRenderer struct{}

// NewMarotoRenderer construye el renderer.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

// Render genera el PDF de la factura y devuelve sus bytes.
func (r *MarotoRenderer) Render(_ context.Context, sale *entity.Sale, company entity.CompanyInfo, settings entity.InvoiceSettings) ([]byte, error) {
	d := invoice.BuildDocument(sale, company, settings)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+d.InvoiceNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(d))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if len(d.BillTo) > 0 {
		m.AddRows(billToRows(d)...)
	}
	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(d)...)
	m.AddRows(line.NewRow(2))
	m.AddRows(totalsRows(d)...)
	m.AddRows(footerRows(d)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: layout: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empresa y contacto (izq), INVOICE + número + fecha (der).
func headerRow(d invoice.Document) core.Row {
	left := col.New(7).Add(
		text.New(d.CompanyName, props.Text{Style: fontstyle.Bold, Size: 14, Top: 1}),
	)
	top := 9.0
	for _, l := range d.CompanyLines {
		left.Add(text.New(l, props.Text{Size: 8, Top: top, Color: colorGray}))
		top += 4
	}
	right := col.New(5).Add(
		text.New("INVOICE", props.Text{
			Style: fontstyle.Bold, Size: 16, Align: align.Right, Color: colorPrimary, Top: 1,
		}),
		text.New("# "+d.InvoiceNumber, props.Text{Size: 10, Align: align.Right, Top: 10}),
		text.New("Date: "+d.DateLabel, props.Text{Size: 8, Align: align.Right, Top: 16, Color: colorGray}),
	)
	height := 10 + 4*float64(len(d.CompanyLines))
	if height < 22 {
		height = 22
	}
	return row.New(height).Add(left, right)
}

// billToRows: bloque del cliente, solo con los campos presentes.
func billToRows(d invoice.Document) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Bill To:", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
		)),
	}
	for _, l := range d.BillTo {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 8, Color: colorGray}),
		)))
	}
	rows = append(rows, row.New(3))
	return rows
}

// tableHeaderRow: cabecera de la tabla de artículos con fondo.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		c := col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
		c.WithStyle(&props.Cell{BackgroundColor: colorPrimary})
		return c
	}
	return row.New(8).Add(
		h("Item", 6, align.Left),
		h("Qty", 1, align.Center),
		h("Unit Price", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableLineRows: una fila por artículo (o la fila centinela).
func tableLineRows(d invoice.Document) []core.Row {
	rows := make([]core.Row, 0, len(d.Lines))
	for _, l := range d.Lines {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(l.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(l.Quantity, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(l.UnitPrice, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(l.Total, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

// totalsRows: bloque de totales alineado a la derecha; la fila con Emphasis
// (el total final) se dibuja más grande y en color.
func totalsRows(d invoice.Document) []core.Row {
	rows := make([]core.Row, 0, len(d.Totals))
	for _, t := range d.Totals {
		size := 9.0
		style := fontstyle.Normal
		color := colorGray
		if t.Emphasis {
			size = 11
			style = fontstyle.Bold
			color = colorPrimary
		}
		rows = append(rows, row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(t.Label, props.Text{
				Size: size, Style: style, Align: align.Right, Color: color, Right: 2,
			})),
			col.New(3).Add(text.New(t.Value, props.Text{
				Size: size, Style: style, Align: align.Right, Color: color, Right: 1,
			})),
		))
	}
	return rows
}

// footerRows: notas opcionales y mensaje de cierre.
func footerRows(d invoice.Document) []core.Row {
	var rows []core.Row
	if d.Notes != "" {
		rows = append(rows,
			row.New(5).Add(col.New(12).Add(
				text.New("Notes:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
			)),
			row.New(6).Add(col.New(12).Add(
				text.New(d.Notes, props.Text{Size: 8, Color: colorGray}),
			)),
		)
	}
	rows = append(rows, row.New(10).Add(col.New(12).Add(
		text.New(d.Footer, props.Text{
			Size: 9, Style: fontstyle.Italic, Align: align.Center, Color: colorGray, Top: 4,
		}),
	)))
	return rows
}
