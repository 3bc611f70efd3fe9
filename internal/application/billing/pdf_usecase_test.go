package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/pos-api/internal/application/billing"
	"github.com/smartstock/pos-api/internal/domain"
	"github.com/smartstock/pos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeSaleRepo implementa repository.SaleRepository sobre un mapa.
type fakeSaleRepo struct {
	sales map[string]*entity.Sale
	items map[string][]entity.SaleItem
}

func (f *fakeSaleRepo) Create(*entity.Sale) error         { return nil }
func (f *fakeSaleRepo) CreateItem(*entity.SaleItem) error { return nil }
func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}
func (f *fakeSaleRepo) GetItemsBySaleID(saleID string) ([]entity.SaleItem, error) {
	return f.items[saleID], nil
}
func (f *fakeSaleRepo) List(limit, offset int) ([]*entity.Sale, error) { return nil, nil }
func (f *fakeSaleRepo) LockNumbering() error                           { return nil }
func (f *fakeSaleRepo) Count() (int64, error)                          { return 0, nil }

// fakeSettings implementa billing.SettingsReader con valores fijos.
type fakeSettings struct {
	company entity.CompanyInfo
	err     error
}

func (f *fakeSettings) CompanyInfo() (entity.CompanyInfo, error) { return f.company, f.err }
func (f *fakeSettings) InvoiceSettings() (entity.InvoiceSettings, error) {
	return entity.DefaultInvoiceSettings(), f.err
}

// spyRenderer registra cada invocación; el test de fallo temprano verifica
// que NUNCA se invoca con una venta inválida.
type spyRenderer struct {
	calls int
	out   []byte
	err   error
}

func (s *spyRenderer) Render(_ context.Context, _ *entity.Sale, _ entity.CompanyInfo, _ entity.InvoiceSettings) ([]byte, error) {
	s.calls++
	return s.out, s.err
}

func saleFixture() *entity.Sale {
	return &entity.Sale{
		ID:            "sale-1",
		InvoiceNumber: "INV-1001",
		CustomerName:  "Jane Doe",
		Subtotal:      decimal.NewFromInt(50),
		TotalAmount:   decimal.NewNullDecimal(decimal.NewFromInt(50)),
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newUseCase(sale *entity.Sale, r *spyRenderer) *billing.InvoicePDFUseCase {
	repo := &fakeSaleRepo{sales: map[string]*entity.Sale{}, items: map[string][]entity.SaleItem{}}
	if sale != nil {
		repo.sales[sale.ID] = sale
	}
	return billing.NewInvoicePDFUseCase(repo, &fakeSettings{company: entity.CompanyInfo{Name: "Acme"}}, r)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El nombre del archivo es determinista: invoice-<invoice_number>.pdf.
func TestDownloadInvoice_NombreDeArchivo(t *testing.T) {
	renderer := &spyRenderer{out: []byte("%PDF-1.4 fake")}
	uc := newUseCase(saleFixture(), renderer)

	pdfBytes, filename, err := uc.DownloadInvoice(context.Background(), "sale-1")
	require.NoError(t, err)
	assert.Equal(t, "invoice-INV-1001.pdf", filename)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, 1, renderer.calls, "una sola generación por invocación")
}

// Venta sin número de factura: falla ANTES de invocar el renderer.
func TestDownloadInvoice_SinNumeroDeFacturaNoRenderiza(t *testing.T) {
	sale := saleFixture()
	sale.InvoiceNumber = ""
	renderer := &spyRenderer{}
	uc := newUseCase(sale, renderer)

	_, _, err := uc.DownloadInvoice(context.Background(), "sale-1")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, renderer.calls, "el renderer no debe invocarse con venta inválida")

	_, err = uc.PrintInvoice(context.Background(), "sale-1")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, renderer.calls)
}

func TestDownloadInvoice_VentaInexistente(t *testing.T) {
	uc := newUseCase(nil, &spyRenderer{})
	_, _, err := uc.DownloadInvoice(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La venta puede validar mal por más de un campo; el error los lista todos.
func TestDownloadInvoice_ValidacionAgregada(t *testing.T) {
	sale := saleFixture()
	sale.TotalAmount = decimal.NullDecimal{}
	sale.CreatedAt = time.Time{}
	renderer := &spyRenderer{}
	uc := newUseCase(sale, renderer)

	_, _, err := uc.DownloadInvoice(context.Background(), "sale-1")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Total amount is missing")
	assert.Contains(t, err.Error(), "Sale date is missing")
	assert.Zero(t, renderer.calls)
}

// Un fallo del renderer se propaga envuelto, sin reintentos.
func TestDownloadInvoice_ErrorDeRenderSePropaga(t *testing.T) {
	renderer := &spyRenderer{err: errors.New("page overflow")}
	uc := newUseCase(saleFixture(), renderer)

	_, _, err := uc.DownloadInvoice(context.Background(), "sale-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generar PDF de factura")
	assert.Contains(t, err.Error(), "page overflow")
	assert.Equal(t, 1, renderer.calls, "sin reintentos")
}
