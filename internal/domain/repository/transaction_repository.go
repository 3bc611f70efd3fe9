package repository

import "github.com/smartstock/pos-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para el log de
// movimientos de inventario. Los registros son inmutables (solo insert).
type TransactionRepository interface {
	Create(txn *entity.InventoryTransaction) error
	// ListRecent devuelve los últimos movimientos (más recientes primero)
	// con nombre y SKU del artículo por join.
	ListRecent(limit int) ([]*entity.InventoryTransaction, error)
}
