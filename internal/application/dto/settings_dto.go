package dto

import (
	"encoding/json"
	"time"
)

// SettingResponse una fila de configuración clave/valor.
type SettingResponse struct {
	ID          string          `json:"id"`
	Key         string          `json:"setting_key"`
	Value       json.RawMessage `json:"setting_value"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// UpdateSettingRequest nuevo valor JSON para una clave existente.
type UpdateSettingRequest struct {
	Value json.RawMessage `json:"setting_value"`
}
