package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest alta de un artículo del catálogo.
type CreateItemRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    string          `json:"category_id"`
	SupplierID    string          `json:"supplier_id"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Quantity      int64           `json:"quantity"`
	MinStockLevel int64           `json:"min_stock_level"`
	Barcode       string          `json:"barcode"`
	ImageURL      string          `json:"image_url"`
}

// UpdateItemRequest actualización parcial; nil = sin cambio.
// Quantity no se actualiza por aquí: el stock solo cambia vía ajustes o ventas.
type UpdateItemRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	CategoryID    *string          `json:"category_id"`
	SupplierID    *string          `json:"supplier_id"`
	Price         *decimal.Decimal `json:"price"`
	Cost          *decimal.Decimal `json:"cost"`
	MinStockLevel *int64           `json:"min_stock_level"`
	Status        *string          `json:"status"`
	Barcode       *string          `json:"barcode"`
	ImageURL      *string          `json:"image_url"`
}

// ItemResponse artículo del catálogo para respuestas HTTP.
type ItemResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"category_id,omitempty"`
	CategoryName  string          `json:"category_name,omitempty"`
	SupplierID    string          `json:"supplier_id,omitempty"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Quantity      int64           `json:"quantity"`
	MinStockLevel int64           `json:"min_stock_level"`
	LowStock      bool            `json:"low_stock"`
	Status        string          `json:"status"`
	Barcode       string          `json:"barcode,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AdjustQuantityRequest ajuste atómico de stock con registro de movimiento.
type AdjustQuantityRequest struct {
	ItemID          string          `json:"item_id"`
	QuantityChange  int64           `json:"quantity_change"` // con signo
	TransactionType string          `json:"transaction_type"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	ReferenceNumber string          `json:"reference_number"`
	Notes           string          `json:"notes"`
}

// TransactionResponse un movimiento del log de inventario.
type TransactionResponse struct {
	ID               string          `json:"id"`
	ItemID           string          `json:"item_id"`
	ItemName         string          `json:"item_name,omitempty"`
	ItemSKU          string          `json:"item_sku,omitempty"`
	TransactionType  string          `json:"transaction_type"`
	Quantity         int64           `json:"quantity"`
	PreviousQuantity int64           `json:"previous_quantity"`
	NewQuantity      int64           `json:"new_quantity"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	ReferenceNumber  string          `json:"reference_number,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse categoría para respuestas HTTP.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateSupplierRequest alta de proveedor.
type CreateSupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// SupplierResponse proveedor para respuestas HTTP.
type SupplierResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
}
