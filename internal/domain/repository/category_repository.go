package repository

import "github.com/smartstock/pos-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// List devuelve todas las categorías ordenadas por nombre.
	List() ([]*entity.Category, error)
}
