package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un artículo del catálogo.
const (
	ItemStatusActive   = "active"
	ItemStatusInactive = "inactive"
)

// InventoryItem representa un artículo o SKU del catálogo con su stock actual.
// El stock solo se modifica vía AdjustQuantity o ProcessSale (nunca con un
// UPDATE directo), para que cada cambio quede registrado en
// inventory_transactions.
type InventoryItem struct {
	ID            string
	SKU           string // único
	Name          string
	Description   string
	CategoryID    string // vacío si no tiene categoría
	CategoryName  string // join con categories, solo lectura
	SupplierID    string
	SupplierName  string // join con suppliers, solo lectura
	Price         decimal.Decimal
	Cost          decimal.Decimal
	Quantity      int64
	MinStockLevel int64
	Status        string // ver constantes ItemStatus*
	Barcode       string
	ImageURL      string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LowStock indica si el artículo está en o por debajo de su nivel mínimo.
func (i *InventoryItem) LowStock() bool {
	return i.MinStockLevel > 0 && i.Quantity <= i.MinStockLevel
}
