// Package invoice contiene la lógica pura del documento de factura:
// validación de la venta, normalización de líneas y construcción del
// modelo de documento que consumen las dos estrategias de render
// (dibujo directo con gofpdf y layout con maroto).
//
// Todo es función pura de (venta, empresa, configuración) → documento;
// el paquete no lee ni escribe estado y puede invocarse N veces sobre la
// misma venta con resultado idéntico.
package invoice

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/smartstock/pos-api/internal/domain/entity"
	"github.com/smartstock/pos-api/internal/domain/money"
)

// Line es una fila de la tabla de artículos lista para renderizar.
// Los precios ya vienen formateados (dos decimales, prefijo de moneda).
type Line struct {
	Name      string
	Quantity  string
	UnitPrice string
	Total     string
}

// TotalLine es una fila del bloque de totales. Emphasis marca la fila del
// total final (se dibuja más grande/negrita).
type TotalLine struct {
	Label    string
	Value    string
	Emphasis bool
}

// Document es el modelo ya resuelto de la factura: todos los condicionales
// (campos opcionales, descuento/impuesto en cero) están aplicados, de modo
// que las dos estrategias de render no pueden divergir en semántica.
type Document struct {
	CompanyName   string
	CompanyLines  []string // dirección / teléfono / email, solo los presentes
	InvoiceNumber string
	DateLabel     string
	BillTo        []string // nombre / email / teléfono / dirección del cliente
	Lines         []Line
	Totals        []TotalLine
	Notes         string
	Footer        string
}

const footerMessage = "Thank you for your business!"

// ValidateSale verifica que la venta tiene lo mínimo para renderizar una
// factura. Acumula todos los fallos (no corta en el primero); una lista no
// vacía es stop duro para cualquier caller. Un total de cero ES válido:
// solo se reporta el total ausente (NullDecimal inválido).
func ValidateSale(sale *entity.Sale) []string {
	var errs []string
	if sale == nil {
		return append(errs, "Sale data is missing")
	}
	if sale.InvoiceNumber == "" {
		errs = append(errs, "Invoice number is missing")
	}
	if !sale.TotalAmount.Valid {
		errs = append(errs, "Total amount is missing")
	}
	if sale.CreatedAt.IsZero() {
		errs = append(errs, "Sale date is missing")
	}
	return errs
}

// BuildLines normaliza los artículos de la venta en filas de tabla.
// Cadena de fallback del nombre: nombre actual del catálogo (join) →
// nombre desnormalizado guardado en la venta → "Unknown Item".
// Una venta sin artículos produce exactamente una fila centinela para que
// la tabla nunca quede visualmente vacía.
func BuildLines(sale *entity.Sale) []Line {
	if sale == nil || len(sale.Items) == 0 {
		return []Line{{
			Name:      "No items",
			Quantity:  "0",
			UnitPrice: money.Format(decimal.Zero),
			Total:     money.Format(decimal.Zero),
		}}
	}
	lines := make([]Line, 0, len(sale.Items))
	for _, it := range sale.Items {
		name := it.CatalogName
		if name == "" {
			name = it.ItemName
		}
		if name == "" {
			name = "Unknown Item"
		}
		lines = append(lines, Line{
			Name:      name,
			Quantity:  strconv.FormatInt(it.Quantity, 10),
			UnitPrice: money.Format(it.UnitPrice),
			Total:     money.Format(it.TotalPrice),
		})
	}
	return lines
}

// BuildDocument resuelve el documento completo a partir de los snapshots.
// No valida: el caller debe haber pasado por ValidateSale antes.
// El generador confía en los montos guardados de la venta; nunca recalcula
// impuestos desde settings (settings es solo presentación).
func BuildDocument(sale *entity.Sale, company entity.CompanyInfo, _ entity.InvoiceSettings) Document {
	doc := Document{
		CompanyName:   company.Name,
		InvoiceNumber: sale.InvoiceNumber,
		DateLabel:     sale.CreatedAt.Format("01/02/2006"),
		Lines:         BuildLines(sale),
		Notes:         sale.Notes,
		Footer:        footerMessage,
	}
	if doc.CompanyName == "" {
		doc.CompanyName = entity.DefaultCompanyInfo().Name
	}
	if company.Address != "" {
		doc.CompanyLines = append(doc.CompanyLines, company.Address)
	}
	if company.Phone != "" {
		doc.CompanyLines = append(doc.CompanyLines, "Phone: "+company.Phone)
	}
	if company.Email != "" {
		doc.CompanyLines = append(doc.CompanyLines, "Email: "+company.Email)
	}

	for _, s := range []string{sale.CustomerName, sale.CustomerEmail, sale.CustomerPhone, sale.CustomerAddress} {
		if s != "" {
			doc.BillTo = append(doc.BillTo, s)
		}
	}

	doc.Totals = append(doc.Totals, TotalLine{Label: "Subtotal:", Value: money.Format(sale.Subtotal)})
	if sale.DiscountAmount.GreaterThan(decimal.Zero) {
		doc.Totals = append(doc.Totals, TotalLine{Label: "Discount:", Value: money.FormatNegated(sale.DiscountAmount)})
	}
	if sale.TaxAmount.GreaterThan(decimal.Zero) {
		doc.Totals = append(doc.Totals, TotalLine{Label: "Tax:", Value: money.Format(sale.TaxAmount)})
	}
	doc.Totals = append(doc.Totals, TotalLine{
		Label:    "Total:",
		Value:    money.Format(money.FromNull(sale.TotalAmount)),
		Emphasis: true,
	})
	return doc
}
