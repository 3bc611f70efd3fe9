package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/pos-api/internal/application/dto"
	"github.com/smartstock/pos-api/internal/domain"
	"github.com/smartstock/pos-api/internal/domain/entity"
)

type fakeSettingsRepo struct {
	rows map[string]*entity.Setting
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{rows: make(map[string]*entity.Setting)}
}

func (r *fakeSettingsRepo) GetAll() ([]*entity.Setting, error) {
	out := make([]*entity.Setting, 0, len(r.rows))
	for _, s := range r.rows {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSettingsRepo) GetByKey(key string) (*entity.Setting, error) {
	return r.rows[key], nil
}

func (r *fakeSettingsRepo) Update(key string, value json.RawMessage) (*entity.Setting, error) {
	row, ok := r.rows[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	row.Value = value
	return row, nil
}

func (r *fakeSettingsRepo) seed(key, value string) {
	r.rows[key] = &entity.Setting{ID: "id-" + key, Key: key, Value: json.RawMessage(value)}
}

func TestCompanyInfo_SinClaveUsaDefaults(t *testing.T) {
	uc := NewUseCase(newFakeSettingsRepo())

	info, err := uc.CompanyInfo()
	require.NoError(t, err)
	assert.Equal(t, "Your Company", info.Name)
	assert.Equal(t, "123 Business St", info.Address)
}

func TestCompanyInfo_JSONParcialConservaDefaults(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.seed(entity.SettingCompanyInfo, `{"name":"Ferretería El Tornillo"}`)
	uc := NewUseCase(repo)

	info, err := uc.CompanyInfo()
	require.NoError(t, err)
	assert.Equal(t, "Ferretería El Tornillo", info.Name)
	assert.Equal(t, "123 Business St", info.Address) // default conservado
}

func TestCompanyInfo_JSONCorruptoDegradaADefaults(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.seed(entity.SettingCompanyInfo, `{no es json}`)
	uc := NewUseCase(repo)

	info, err := uc.CompanyInfo()
	require.NoError(t, err)
	assert.Equal(t, "Your Company", info.Name)
}

func TestInvoiceSettings_SobrescribePrefijoYNumero(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.seed(entity.SettingInvoice, `{"prefix":"FAC","start_number":5000}`)
	uc := NewUseCase(repo)

	s, err := uc.InvoiceSettings()
	require.NoError(t, err)
	assert.Equal(t, "FAC", s.Prefix)
	assert.Equal(t, int64(5000), s.StartNumber)
	assert.Equal(t, "USD", s.Currency) // default conservado
}

func TestUpdate_RechazaJSONInvalido(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.seed(entity.SettingTheme, `{}`)
	uc := NewUseCase(repo)

	_, err := uc.Update(entity.SettingTheme, dto.UpdateSettingRequest{Value: json.RawMessage(`{roto`)})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ClaveInexistenteDevuelveNotFound(t *testing.T) {
	uc := NewUseCase(newFakeSettingsRepo())

	_, err := uc.Update("no-existe", dto.UpdateSettingRequest{Value: json.RawMessage(`{}`)})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_DevuelveLaFila(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.seed(entity.SettingNotifications, `{"low_stock_alerts":false}`)
	uc := NewUseCase(repo)

	row, err := uc.Get(entity.SettingNotifications)
	require.NoError(t, err)
	assert.Equal(t, entity.SettingNotifications, row.Key)

	_, err = uc.Get("otro")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
