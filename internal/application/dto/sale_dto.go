package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcessSaleRequest es el carrito finalizado que envía el POS.
// Los montos llegan serializados como string o número; decimal.Decimal
// acepta ambos al deserializar.
type ProcessSaleRequest struct {
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerAddress string          `json:"customer_address"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentStatus   string          `json:"payment_status"`
	Notes           string          `json:"notes"`

	Items []SaleItemRequest `json:"items"`
}

// SaleItemRequest una línea del carrito.
type SaleItemRequest struct {
	ItemID     string          `json:"item_id"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// SaleResponse cabecera de venta para respuestas HTTP.
type SaleResponse struct {
	ID              string          `json:"id"`
	InvoiceNumber   string          `json:"invoice_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email,omitempty"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	CustomerAddress string          `json:"customer_address,omitempty"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	PaymentStatus   string          `json:"payment_status"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`

	Items []SaleItemResponse `json:"items,omitempty"`
}

// SaleItemResponse una línea de venta con el nombre resuelto del catálogo.
type SaleItemResponse struct {
	ID         string          `json:"id"`
	ItemID     string          `json:"item_id"`
	Name       string          `json:"name"`
	SKU        string          `json:"sku,omitempty"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
