package postgres

import (
	"context"
	"fmt"

	"github.com/smartstock/pos-api/internal/domain/entity"
	"github.com/smartstock/pos-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre
// PostgreSQL. El log de movimientos es append-only.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create inserta un movimiento de inventario.
func (r *TransactionRepo) Create(txn *entity.InventoryTransaction) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO inventory_transactions
		 (id, item_id, transaction_type, quantity, previous_quantity, new_quantity,
		  unit_cost, total_cost, reference_number, notes, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		txn.ID, txn.ItemID, txn.TransactionType, txn.Quantity, txn.PreviousQuantity,
		txn.NewQuantity, txn.UnitCost, txn.TotalCost, nullIfEmpty(txn.ReferenceNumber),
		nullIfEmpty(txn.Notes), nullIfEmpty(txn.CreatedBy), txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory transaction: %w", err)
	}
	return nil
}

// ListRecent devuelve los últimos movimientos con nombre y SKU del artículo.
func (r *TransactionRepo) ListRecent(limit int) ([]*entity.InventoryTransaction, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT t.id, t.item_id, COALESCE(i.name, ''), COALESCE(i.sku, ''),
		        t.transaction_type, t.quantity, t.previous_quantity, t.new_quantity,
		        t.unit_cost, t.total_cost, COALESCE(t.reference_number, ''),
		        COALESCE(t.notes, ''), COALESCE(t.created_by::TEXT, ''), t.created_at
		 FROM inventory_transactions t
		 LEFT JOIN inventory_items i ON i.id = t.item_id
		 ORDER BY t.created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list inventory transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryTransaction
	for rows.Next() {
		var t entity.InventoryTransaction
		err := rows.Scan(&t.ID, &t.ItemID, &t.ItemName, &t.ItemSKU, &t.TransactionType,
			&t.Quantity, &t.PreviousQuantity, &t.NewQuantity, &t.UnitCost, &t.TotalCost,
			&t.ReferenceNumber, &t.Notes, &t.CreatedBy, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan inventory transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
