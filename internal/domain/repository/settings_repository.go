package repository

import (
	"encoding/json"

	"github.com/smartstock/pos-api/internal/domain/entity"
)

// SettingsRepository define el puerto de persistencia para app_settings
// (configuración clave/valor del tenant).
type SettingsRepository interface {
	// GetAll devuelve todas las filas ordenadas por categoría.
	GetAll() ([]*entity.Setting, error)
	// GetByKey devuelve nil si la clave no existe.
	GetByKey(key string) (*entity.Setting, error)
	// Update reemplaza el valor JSONB de la clave y actualiza updated_at.
	// Devuelve la fila actualizada o domain.ErrNotFound si la clave no existe.
	Update(key string, value json.RawMessage) (*entity.Setting, error)
}
