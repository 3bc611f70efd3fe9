package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/smartstock/pos-api/internal/domain"
	"github.com/smartstock/pos-api/internal/domain/entity"
	"github.com/smartstock/pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `
	id, invoice_number, customer_name,
	COALESCE(customer_email, ''), COALESCE(customer_phone, ''), COALESCE(customer_address, ''),
	subtotal, discount_amount, tax_rate, tax_amount, total_amount,
	COALESCE(payment_method, ''), payment_status, COALESCE(notes, ''),
	COALESCE(created_by::TEXT, ''), created_at, updated_at`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, invoice_number, customer_name, customer_email, customer_phone, customer_address, subtotal, discount_amount, tax_rate, tax_amount, total_amount, payment_method, payment_status, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.InvoiceNumber, sale.CustomerName,
		nullIfEmpty(sale.CustomerEmail), nullIfEmpty(sale.CustomerPhone), nullIfEmpty(sale.CustomerAddress),
		sale.Subtotal, sale.DiscountAmount, sale.TaxRate, sale.TaxAmount, sale.TotalAmount,
		nullIfEmpty(sale.PaymentMethod), sale.PaymentStatus, nullIfEmpty(sale.Notes),
		nullIfEmpty(sale.CreatedBy), sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el número de factura ya existe", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta con su snapshot desnormalizado.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, item_id, item_name, item_sku, quantity, unit_price, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ItemID, item.ItemName, nullIfEmpty(item.ItemSKU),
		item.Quantity, item.UnitPrice, item.TotalPrice, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera sin líneas; nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.InvoiceNumber, &s.CustomerName,
		&s.CustomerEmail, &s.CustomerPhone, &s.CustomerAddress,
		&s.Subtotal, &s.DiscountAmount, &s.TaxRate, &s.TaxAmount, &s.TotalAmount,
		&s.PaymentMethod, &s.PaymentStatus, &s.Notes,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetItemsBySaleID obtiene las líneas con el nombre actual del catálogo
// (LEFT JOIN: el artículo puede haber sido borrado después de la venta).
func (r *SaleRepo) GetItemsBySaleID(saleID string) ([]entity.SaleItem, error) {
	query := `
		SELECT si.id, si.sale_id, si.item_id, COALESCE(i.name, ''), si.item_name,
		       COALESCE(si.item_sku, ''), si.quantity, si.unit_price, si.total_price, si.created_at
		FROM sale_items si
		LEFT JOIN inventory_items i ON i.id = si.item_id
		WHERE si.sale_id = $1
		ORDER BY si.created_at`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(
			&it.ID, &it.SaleID, &it.ItemID, &it.CatalogName, &it.ItemName,
			&it.ItemSKU, &it.Quantity, &it.UnitPrice, &it.TotalPrice, &it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// List lista cabeceras ordenadas por fecha descendente.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.InvoiceNumber, &s.CustomerName,
			&s.CustomerEmail, &s.CustomerPhone, &s.CustomerAddress,
			&s.Subtotal, &s.DiscountAmount, &s.TaxRate, &s.TaxAmount, &s.TotalAmount,
			&s.PaymentMethod, &s.PaymentStatus, &s.Notes,
			&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// LockNumbering toma un advisory lock de transacción sobre la numeración
// de facturas. Se libera solo al terminar la tx, así que el segundo
// checkout concurrente espera aquí y lee un Count ya actualizado.
func (r *SaleRepo) LockNumbering() error {
	_, err := r.q.Exec(context.Background(),
		`SELECT pg_advisory_xact_lock(hashtext('sales_invoice_numbering'))`)
	if err != nil {
		return fmt.Errorf("lock invoice numbering: %w", err)
	}
	return nil
}

// Count devuelve el total de ventas. Con LockNumbering tomado dentro de la
// tx de checkout, el consecutivo del número de factura no se repite.
func (r *SaleRepo) Count() (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM sales`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return count, nil
}
