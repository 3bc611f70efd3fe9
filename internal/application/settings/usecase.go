package settings

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/smartstock/pos-api/internal/application/dto"
	"github.com/smartstock/pos-api/internal/domain"
	"github.com/smartstock/pos-api/internal/domain/entity"
	"github.com/smartstock/pos-api/internal/domain/repository"
)

// UseCase expone la configuración clave/valor del tenant, tanto cruda
// (para la pantalla de ajustes) como tipada (CompanyInfo, InvoiceSettings)
// para el generador de facturas y la numeración del checkout.
//
// Las vistas tipadas deserializan el JSON guardado SOBRE los valores por
// defecto: una clave ausente o un JSON parcial nunca rompen la factura,
// solo degradan a los fallbacks.
type UseCase struct {
	repo repository.SettingsRepository
}

// NewUseCase construye el caso de uso de configuración.
func NewUseCase(repo repository.SettingsRepository) *UseCase {
	return &UseCase{repo: repo}
}

// GetAll devuelve todas las filas de configuración.
func (uc *UseCase) GetAll() ([]*dto.SettingResponse, error) {
	rows, err := uc.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("listar configuración: %w", err)
	}
	out := make([]*dto.SettingResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, toSettingResponse(s))
	}
	return out, nil
}

// Get devuelve la fila de una clave o ErrNotFound.
func (uc *UseCase) Get(key string) (*dto.SettingResponse, error) {
	row, err := uc.repo.GetByKey(key)
	if err != nil {
		return nil, fmt.Errorf("obtener configuración %s: %w", key, err)
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return toSettingResponse(row), nil
}

// Update reemplaza el valor JSON de una clave existente. El valor debe ser
// un objeto JSON válido; no se validan campos individuales, el lector tipado
// ignora lo que no conoce.
func (uc *UseCase) Update(key string, in dto.UpdateSettingRequest) (*dto.SettingResponse, error) {
	if len(in.Value) == 0 || !json.Valid(in.Value) {
		return nil, fmt.Errorf("%w: el valor debe ser JSON válido", domain.ErrInvalidInput)
	}
	row, err := uc.repo.Update(key, in.Value)
	if err != nil {
		return nil, fmt.Errorf("actualizar configuración %s: %w", key, err)
	}
	return toSettingResponse(row), nil
}

// ── vistas tipadas ──────────────────────────────────────────────────────────

// CompanyInfo devuelve los datos de la empresa para la factura,
// con los defaults rellenando lo que falte.
func (uc *UseCase) CompanyInfo() (entity.CompanyInfo, error) {
	info := entity.DefaultCompanyInfo()
	if err := uc.overlay(entity.SettingCompanyInfo, &info); err != nil {
		return info, err
	}
	return info, nil
}

// InvoiceSettings devuelve la configuración de numeración y formato de
// facturas, con los defaults rellenando lo que falte.
func (uc *UseCase) InvoiceSettings() (entity.InvoiceSettings, error) {
	s := entity.DefaultInvoiceSettings()
	if err := uc.overlay(entity.SettingInvoice, &s); err != nil {
		return s, err
	}
	return s, nil
}

// overlay deserializa el valor guardado de key encima de dst (que ya trae
// los defaults). Clave ausente no es error; JSON corrupto sí, pero dst
// queda utilizable con los defaults.
func (uc *UseCase) overlay(key string, dst any) error {
	row, err := uc.repo.GetByKey(key)
	if err != nil {
		return fmt.Errorf("obtener configuración %s: %w", key, err)
	}
	if row == nil || len(row.Value) == 0 {
		return nil
	}
	if err := json.Unmarshal(row.Value, dst); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("configuración con JSON inválido, se usan los defaults")
		return nil
	}
	return nil
}

func toSettingResponse(s *entity.Setting) *dto.SettingResponse {
	return &dto.SettingResponse{
		ID:          s.ID,
		Key:         s.Key,
		Value:       s.Value,
		Category:    s.Category,
		Description: s.Description,
		UpdatedAt:   s.UpdatedAt,
	}
}
