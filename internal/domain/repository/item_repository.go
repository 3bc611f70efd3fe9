package repository

import "github.com/smartstock/pos-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para InventoryItem (DIP).
type ItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetBySKU(sku string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	// SetQuantity fija el stock absoluto. Solo debe llamarse dentro de una
	// transacción que además registre el InventoryTransaction correspondiente.
	SetQuantity(id string, quantity int64) error
	List(limit, offset int) ([]*entity.InventoryItem, error)
	Delete(id string) error
}
