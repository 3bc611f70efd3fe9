package repository

import "github.com/smartstock/pos-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	// List devuelve todos los proveedores ordenados por nombre.
	List() ([]*entity.Supplier, error)
}
