package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario (deben coincidir con el enum
// transaction_type de la base de datos).
const (
	TransactionStockIn    = "stock_in"
	TransactionStockOut   = "stock_out"
	TransactionAdjustment = "adjustment"
	TransactionTransfer   = "transfer"
	TransactionSale       = "sale"
)

// InventoryTransaction es el registro inmutable de un cambio de stock.
// PreviousQuantity y NewQuantity se capturan dentro de la misma transacción
// SQL que aplica el cambio, por lo que siempre son consistentes entre sí.
type InventoryTransaction struct {
	ID               string
	ItemID           string
	ItemName         string // join con inventory_items, solo lectura
	ItemSKU          string // join con inventory_items, solo lectura
	TransactionType  string // ver constantes Transaction*
	Quantity         int64  // con signo: negativo = salida
	PreviousQuantity int64
	NewQuantity      int64
	UnitCost         decimal.Decimal
	TotalCost        decimal.Decimal
	ReferenceNumber  string // ej. número de factura para tipo "sale"
	Notes            string
	CreatedBy        string
	CreatedAt        time.Time
}
