package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartstock/pos-api/internal/application/inventory"
	"github.com/smartstock/pos-api/internal/application/sales"
	"github.com/smartstock/pos-api/internal/domain/repository"
)

// Ensure TxRunner implements sales.TxRunner and inventory.TxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ inventory.TxRunner = (*adjustTxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Los repos que recibe el callback están atados a la tx: si fn retorna
// error se hace Rollback y ninguna escritura queda visible.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run transacción del checkout: catálogo + log de movimientos + ventas.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	txnRepo repository.TransactionRepository,
	saleRepo repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewItemRepository(tx), NewTransactionRepository(tx), NewSaleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ForAdjustments devuelve la vista del runner para ajustes de stock
// (transacción con catálogo + log de movimientos, sin ventas).
func (r *TxRunner) ForAdjustments() inventory.TxRunner {
	return &adjustTxRunner{pool: r.pool}
}

type adjustTxRunner struct {
	pool *pgxpool.Pool
}

func (r *adjustTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	txnRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewItemRepository(tx), NewTransactionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
