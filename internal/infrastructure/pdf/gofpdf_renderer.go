// Package pdf implementa las dos estrategias de render de la factura.
//
// Ambas consumen el mismo invoice.Document ya resuelto, así que producen
// el mismo contenido; difieren solo en el motor: dibujo directo sobre el
// lienzo (gofpdf) o árbol de layout por filas (maroto).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + contacto      │  INVOICE + N° + Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: nombre / email / tel / dirección (los presentes)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Item | Qty | Unit Price | Total                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / [Discount] / [Tax] / TOTAL             │
//	│  NOTES + FOOTER                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/smartstock/pos-api/internal/domain/entity"
	"github.com/smartstock/pos-api/internal/domain/invoice"
)

// Geometría de la página (mm).
const (
	pageMargin = 15.0
	pageWidth  = 210.0
	bodyWidth  = pageWidth - 2*pageMargin

	colQty   = 20.0
	colPrice = 30.0
	colTotal = 30.0
	colName  = bodyWidth - colQty - colPrice - colTotal
)

// GofpdfRenderer es la estrategia de dibujo directo: posiciona cada celda
// sobre el lienzo con gofpdf.
type GofpdfRenderer struct{}

// NewGofpdfRenderer construye el renderer.
func NewGofpdfRenderer() *GofpdfRenderer { return &GofpdfRenderer{} }

// Render genera el PDF de la factura y devuelve sus bytes.
func (r *GofpdfRenderer) Render(_ context.Context, sale *entity.Sale, company entity.CompanyInfo, settings entity.InvoiceSettings) ([]byte, error) {
	doc := invoice.BuildDocument(sale, company, settings)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	r.drawHeader(pdf, doc)
	r.drawBillTo(pdf, doc)
	r.drawTable(pdf, doc)
	r.drawTotals(pdf, doc)
	r.drawFooter(pdf, doc)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: dibujo directo: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *GofpdfRenderer) drawHeader(pdf *gofpdf.Fpdf, doc invoice.Document) {
	// Empresa a la izquierda
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(bodyWidth/2, 8, doc.CompanyName, "", 0, "L", false, 0, "")

	// "INVOICE" a la derecha
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(59, 130, 246)
	pdf.CellFormat(bodyWidth/2, 8, "INVOICE", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	y := pdf.GetY()
	for _, line := range doc.CompanyLines {
		pdf.CellFormat(bodyWidth/2, 5, line, "", 1, "L", false, 0, "")
	}
	leftEnd := pdf.GetY()

	// Número y fecha alineados con el bloque de la empresa
	pdf.SetY(y)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(bodyWidth, 5, "# "+doc.InvoiceNumber, "", 1, "R", false, 0, "")
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(bodyWidth, 5, "Date: "+doc.DateLabel, "", 1, "R", false, 0, "")

	if leftEnd > pdf.GetY() {
		pdf.SetY(leftEnd)
	}
	pdf.Ln(4)
	pdf.SetDrawColor(59, 130, 246)
	pdf.SetLineWidth(0.5)
	pdf.Line(pageMargin, pdf.GetY(), pageWidth-pageMargin, pdf.GetY())
	pdf.Ln(4)
}

func (r *GofpdfRenderer) drawBillTo(pdf *gofpdf.Fpdf, doc invoice.Document) {
	if len(doc.BillTo) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(bodyWidth, 6, "Bill To:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(60, 60, 60)
	for _, line := range doc.BillTo {
		pdf.CellFormat(bodyWidth, 5, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (r *GofpdfRenderer) drawTable(pdf *gofpdf.Fpdf, doc invoice.Document) {
	// Cabecera con fondo
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(59, 130, 246)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(colName, 8, "Item", "", 0, "L", true, 0, "")
	pdf.CellFormat(colQty, 8, "Qty", "", 0, "C", true, 0, "")
	pdf.CellFormat(colPrice, 8, "Unit Price", "", 0, "R", true, 0, "")
	pdf.CellFormat(colTotal, 8, "Total", "", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)
	pdf.SetDrawColor(220, 220, 220)
	pdf.SetLineWidth(0.2)
	for _, line := range doc.Lines {
		pdf.CellFormat(colName, 7, line.Name, "B", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, 7, line.Quantity, "B", 0, "C", false, 0, "")
		pdf.CellFormat(colPrice, 7, line.UnitPrice, "B", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, 7, line.Total, "B", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func (r *GofpdfRenderer) drawTotals(pdf *gofpdf.Fpdf, doc invoice.Document) {
	labelW := bodyWidth - colTotal - 40
	for _, t := range doc.Totals {
		if t.Emphasis {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetTextColor(59, 130, 246)
		} else {
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(60, 60, 60)
		}
		pdf.CellFormat(labelW, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, t.Label, "", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, 6, t.Value, "", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
}

func (r *GofpdfRenderer) drawFooter(pdf *gofpdf.Fpdf, doc invoice.Document) {
	if doc.Notes != "" {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(30, 30, 30)
		pdf.CellFormat(bodyWidth, 5, "Notes:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(60, 60, 60)
		pdf.MultiCell(bodyWidth, 5, doc.Notes, "", "L", false)
		pdf.Ln(4)
	}
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(bodyWidth, 8, doc.Footer, "", 1, "C", false, 0, "")
}
