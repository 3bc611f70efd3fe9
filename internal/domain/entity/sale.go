package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una venta (columna payment_status).
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusOverdue = "overdue"
)

// Sale representa la cabecera de una venta cerrada en el POS.
// Es inmutable una vez creada: no existe flujo de edición, solo lectura
// y (re)generación de su factura.
//
// TotalAmount es NullDecimal porque el generador de facturas debe poder
// distinguir "total ausente" de "total cero" (una venta regalada es válida).
type Sale struct {
	ID              string
	InvoiceNumber   string // único, asignado por el backend al procesar la venta
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	Subtotal        decimal.Decimal
	DiscountAmount  decimal.Decimal
	TaxRate         decimal.Decimal
	TaxAmount       decimal.Decimal
	TotalAmount     decimal.NullDecimal
	PaymentMethod   string
	PaymentStatus   string // ver constantes PaymentStatus*
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []SaleItem
}

// SaleItem representa la contribución de un artículo del catálogo a una venta.
// ItemName e ItemSKU son el snapshot desnormalizado que se guarda al vender;
// CatalogName llega por el join con inventory_items y puede faltar si el
// artículo fue borrado del catálogo después de la venta.
type SaleItem struct {
	ID          string
	SaleID      string
	ItemID      string
	CatalogName string // nombre actual en el catálogo (join), puede estar vacío
	ItemName    string // nombre desnormalizado al momento de la venta
	ItemSKU     string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	CreatedAt   time.Time
}
