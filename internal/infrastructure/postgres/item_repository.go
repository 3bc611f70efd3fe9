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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// columnas con joins de solo lectura a categories y suppliers
const itemColumns = `
	i.id, i.sku, i.name, COALESCE(i.description, ''),
	COALESCE(i.category_id::TEXT, ''), COALESCE(c.name, ''),
	COALESCE(i.supplier_id::TEXT, ''), COALESCE(s.name, ''),
	i.price, i.cost, i.quantity, i.min_stock_level, i.status,
	COALESCE(i.barcode, ''), COALESCE(i.image_url, ''),
	COALESCE(i.created_by::TEXT, ''), i.created_at, i.updated_at`

const itemJoins = `
	FROM inventory_items i
	LEFT JOIN categories c ON c.id = i.category_id
	LEFT JOIN suppliers  s ON s.id = i.supplier_id`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo artículo.
func (r *ItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, sku, name, description, category_id, supplier_id, price, cost, quantity, min_stock_level, status, barcode, image_url, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKU, item.Name, nullIfEmpty(item.Description),
		nullIfEmpty(item.CategoryID), nullIfEmpty(item.SupplierID),
		item.Price, item.Cost, item.Quantity, item.MinStockLevel, item.Status,
		nullIfEmpty(item.Barcode), nullIfEmpty(item.ImageURL), nullIfEmpty(item.CreatedBy),
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID; nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	return r.getOne(`WHERE i.id = $1`, id)
}

// GetBySKU obtiene un artículo por SKU; nil si no existe.
func (r *ItemRepo) GetBySKU(sku string) (*entity.InventoryItem, error) {
	return r.getOne(`WHERE i.sku = $1`, sku)
}

func (r *ItemRepo) getOne(where string, arg any) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + itemJoins + ` ` + where
	var i entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&i.ID, &i.SKU, &i.Name, &i.Description,
		&i.CategoryID, &i.CategoryName, &i.SupplierID, &i.SupplierName,
		&i.Price, &i.Cost, &i.Quantity, &i.MinStockLevel, &i.Status,
		&i.Barcode, &i.ImageURL, &i.CreatedBy, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// Update actualiza un artículo. La cantidad NO se toca aquí (ver SetQuantity).
func (r *ItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, description = $3, category_id = $4, supplier_id = $5,
		    price = $6, cost = $7, min_stock_level = $8, status = $9,
		    barcode = $10, image_url = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, nullIfEmpty(item.Description),
		nullIfEmpty(item.CategoryID), nullIfEmpty(item.SupplierID),
		item.Price, item.Cost, item.MinStockLevel, item.Status,
		nullIfEmpty(item.Barcode), nullIfEmpty(item.ImageURL), item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// SetQuantity fija el stock absoluto. Solo debe llamarse dentro de una
// transacción que además registre el movimiento correspondiente.
func (r *ItemRepo) SetQuantity(id string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("set item quantity: %w", err)
	}
	return nil
}

// List lista artículos con paginación, más recientes primero.
func (r *ItemRepo) List(limit, offset int) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + itemJoins + ` ORDER BY i.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var i entity.InventoryItem
		if err := rows.Scan(
			&i.ID, &i.SKU, &i.Name, &i.Description,
			&i.CategoryID, &i.CategoryName, &i.SupplierID, &i.SupplierName,
			&i.Price, &i.Cost, &i.Quantity, &i.MinStockLevel, &i.Status,
			&i.Barcode, &i.ImageURL, &i.CreatedBy, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Delete elimina un artículo por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
