package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/smartstock/pos-api/internal/domain"
	"github.com/smartstock/pos-api/internal/domain/entity"
	"github.com/smartstock/pos-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

const settingColumns = `id, setting_key, setting_value, COALESCE(category, ''),
	COALESCE(description, ''), COALESCE(created_by::TEXT, ''), created_at, updated_at`

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL
// (tabla app_settings, valor JSONB por clave).
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// GetAll devuelve todas las filas de configuración ordenadas por categoría.
func (r *SettingsRepo) GetAll() ([]*entity.Setting, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+settingColumns+` FROM app_settings ORDER BY category, setting_key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Setting
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByKey devuelve nil si la clave no existe.
func (r *SettingsRepo) GetByKey(key string) (*entity.Setting, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+settingColumns+` FROM app_settings WHERE setting_key = $1`, key)
	s, err := scanSetting(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return s, nil
}

// Update reemplaza el valor JSONB de la clave y devuelve la fila actualizada.
func (r *SettingsRepo) Update(key string, value json.RawMessage) (*entity.Setting, error) {
	row := r.q.QueryRow(context.Background(),
		`UPDATE app_settings SET setting_value = $2, updated_at = now()
		 WHERE setting_key = $1
		 RETURNING `+settingColumns, key, value)
	s, err := scanSetting(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: configuración %q", domain.ErrNotFound, key)
		}
		return nil, fmt.Errorf("update setting: %w", err)
	}
	return s, nil
}

func scanSetting(row pgx.Row) (*entity.Setting, error) {
	var s entity.Setting
	err := row.Scan(&s.ID, &s.Key, &s.Value, &s.Category, &s.Description,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
