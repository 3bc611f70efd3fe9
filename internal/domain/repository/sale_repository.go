package repository

import "github.com/smartstock/pos-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
// Las ventas son inmutables: no hay Update ni Delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	// GetByID devuelve la cabecera sin líneas; nil si no existe.
	GetByID(id string) (*entity.Sale, error)
	// GetItemsBySaleID devuelve las líneas con el nombre actual del catálogo
	// (join con inventory_items) para la cadena de fallback de la factura.
	GetItemsBySaleID(saleID string) ([]entity.SaleItem, error)
	// List devuelve cabeceras ordenadas por fecha descendente.
	List(limit, offset int) ([]*entity.Sale, error)
	// LockNumbering serializa la asignación del consecutivo: debe invocarse
	// dentro de la transacción de checkout, antes de Count, para que dos
	// checkouts concurrentes no lean el mismo total.
	LockNumbering() error
	// Count devuelve el total de ventas; se usa para asignar el consecutivo
	// del número de factura dentro de la transacción de checkout.
	Count() (int64, error)
}
