package sales

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/pos-api/internal/application/dto"
	"github.com/smartstock/pos-api/internal/domain"
	"github.com/smartstock/pos-api/internal/domain/entity"
	"github.com/smartstock/pos-api/internal/domain/repository"
)

// ── fakes en memoria ────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.InventoryItem
}

func newFakeItemRepo(items ...*entity.InventoryItem) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[string]*entity.InventoryItem)}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *fakeItemRepo) Create(item *entity.InventoryItem) error { r.items[item.ID] = item; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	// Copia, como el repo real: cada lectura devuelve un struct nuevo y las
	// escrituras posteriores no mutan lo ya leído.
	cp := *it
	return &cp, nil
}
func (r *fakeItemRepo) GetBySKU(sku string) (*entity.InventoryItem, error) {
	for _, it := range r.items {
		if it.SKU == sku {
			return it, nil
		}
	}
	return nil, nil
}
func (r *fakeItemRepo) Update(item *entity.InventoryItem) error { r.items[item.ID] = item; return nil }
func (r *fakeItemRepo) SetQuantity(id string, quantity int64) error {
	r.items[id].Quantity = quantity
	return nil
}
func (r *fakeItemRepo) List(limit, offset int) ([]*entity.InventoryItem, error) { return nil, nil }
func (r *fakeItemRepo) Delete(id string) error                                  { delete(r.items, id); return nil }

type fakeTxnRepo struct {
	created []*entity.InventoryTransaction
}

func (r *fakeTxnRepo) Create(txn *entity.InventoryTransaction) error {
	r.created = append(r.created, txn)
	return nil
}
func (r *fakeTxnRepo) ListRecent(limit int) ([]*entity.InventoryTransaction, error) {
	return r.created, nil
}

type fakeSaleWriteRepo struct {
	sales []*entity.Sale
	items []*entity.SaleItem

	// ops registra el orden de LockNumbering y Count para verificar que
	// el lock se toma antes de leer el consecutivo.
	ops     []string
	lockErr error
}

func (r *fakeSaleWriteRepo) Create(sale *entity.Sale) error          { r.sales = append(r.sales, sale); return nil }
func (r *fakeSaleWriteRepo) CreateItem(item *entity.SaleItem) error  { r.items = append(r.items, item); return nil }
func (r *fakeSaleWriteRepo) GetByID(id string) (*entity.Sale, error) { return nil, nil }
func (r *fakeSaleWriteRepo) GetItemsBySaleID(saleID string) ([]entity.SaleItem, error) {
	return nil, nil
}
func (r *fakeSaleWriteRepo) List(limit, offset int) ([]*entity.Sale, error) { return r.sales, nil }
func (r *fakeSaleWriteRepo) LockNumbering() error {
	r.ops = append(r.ops, "lock")
	return r.lockErr
}
func (r *fakeSaleWriteRepo) Count() (int64, error) {
	r.ops = append(r.ops, "count")
	return int64(len(r.sales)), nil
}

// fakeTxRunner ejecuta fn directamente; si fn falla, descarta las escrituras
// reemplazando los repos (simula el rollback).
type fakeTxRunner struct {
	itemRepo *fakeItemRepo
	txnRepo  *fakeTxnRepo
	saleRepo *fakeSaleWriteRepo

	rolledBack bool
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	txnRepo repository.TransactionRepository,
	saleRepo repository.SaleRepository,
) error) error {
	snapshot := make(map[string]int64, len(t.itemRepo.items))
	for id, it := range t.itemRepo.items {
		snapshot[id] = it.Quantity
	}
	sales, items, txns := len(t.saleRepo.sales), len(t.saleRepo.items), len(t.txnRepo.created)

	if err := fn(t.itemRepo, t.txnRepo, t.saleRepo); err != nil {
		for id, qty := range snapshot {
			t.itemRepo.items[id].Quantity = qty
		}
		t.saleRepo.sales = t.saleRepo.sales[:sales]
		t.saleRepo.items = t.saleRepo.items[:items]
		t.txnRepo.created = t.txnRepo.created[:txns]
		t.rolledBack = true
		return err
	}
	return nil
}

type fakeNumberSource struct {
	settings entity.InvoiceSettings
	err      error
}

func (s *fakeNumberSource) InvoiceSettings() (entity.InvoiceSettings, error) {
	return s.settings, s.err
}

// ── helpers ─────────────────────────────────────────────────────────────────

func widgetItem() *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:       "item-1",
		SKU:      "WID-001",
		Name:     "Widget",
		Price:    decimal.NewFromInt(50),
		Cost:     decimal.NewFromInt(30),
		Quantity: 10,
		Status:   entity.ItemStatusActive,
	}
}

func cartRequest() dto.ProcessSaleRequest {
	return dto.ProcessSaleRequest{
		CustomerName: "Ana Torres",
		Subtotal:     decimal.NewFromInt(100),
		TotalAmount:  decimal.NewFromInt(100),
		Items: []dto.SaleItemRequest{
			{ItemID: "item-1", Quantity: 2, UnitPrice: decimal.NewFromInt(50), TotalPrice: decimal.NewFromInt(100)},
		},
	}
}

func newRunner(items ...*entity.InventoryItem) *fakeTxRunner {
	return &fakeTxRunner{
		itemRepo: newFakeItemRepo(items...),
		txnRepo:  &fakeTxnRepo{},
		saleRepo: &fakeSaleWriteRepo{},
	}
}

// ── tests ───────────────────────────────────────────────────────────────────

func TestProcess_VentaFelizDescuentaStockYNumeraFactura(t *testing.T) {
	runner := newRunner(widgetItem())
	uc := NewProcessSaleUseCase(runner, &fakeNumberSource{settings: entity.DefaultInvoiceSettings()})

	resp, err := uc.Process(context.Background(), "user-1", cartRequest())
	require.NoError(t, err)

	assert.Equal(t, "INV-1001", resp.InvoiceNumber)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, entity.PaymentStatusPaid, resp.PaymentStatus)

	assert.Equal(t, int64(8), runner.itemRepo.items["item-1"].Quantity)
	require.Len(t, runner.saleRepo.items, 1)
	assert.Equal(t, "Widget", runner.saleRepo.items[0].ItemName)
	assert.Equal(t, "WID-001", runner.saleRepo.items[0].ItemSKU)

	require.Len(t, runner.txnRepo.created, 1)
	txn := runner.txnRepo.created[0]
	assert.Equal(t, entity.TransactionSale, txn.TransactionType)
	assert.Equal(t, int64(-2), txn.Quantity)
	assert.Equal(t, int64(10), txn.PreviousQuantity)
	assert.Equal(t, int64(8), txn.NewQuantity)
	assert.Equal(t, "INV-1001", txn.ReferenceNumber)
}

func TestProcess_ConsecutivoAvanzaConCadaVenta(t *testing.T) {
	runner := newRunner(widgetItem())
	uc := NewProcessSaleUseCase(runner, &fakeNumberSource{settings: entity.DefaultInvoiceSettings()})

	first, err := uc.Process(context.Background(), "user-1", cartRequest())
	require.NoError(t, err)
	second, err := uc.Process(context.Background(), "user-1", cartRequest())
	require.NoError(t, err)

	assert.Equal(t, "INV-1001", first.InvoiceNumber)
	assert.Equal(t, "INV-1002", second.InvoiceNumber)
}

func TestProcess_BloqueaNumeracionAntesDeContar(t *testing.T) {
	runner := newRunner(widgetItem())
	uc := NewProcessSaleUseCase(runner, &fakeNumberSource{settings: entity.DefaultInvoiceSettings()})

	_, err := uc.Process(context.Background(), "user-1", cartRequest())
	require.NoError(t, err)

	// El lock serializa el consecutivo: tiene que tomarse antes del Count.
	require.GreaterOrEqual(t, len(runner.saleRepo.ops), 2)
	assert.Equal(t, []string{"lock", "count"}, runner.saleRepo.ops[:2])
}

func TestProcess_FalloDelLockHaceRollback(t *testing.T) {
	runner := newRunner(widgetItem())
	runner.saleRepo.lockErr = errors.New("lock timeout")
	uc := NewProcessSaleUseCase(runner, &fakeNumberSource{settings: entity.DefaultInvoiceSettings()})

	_, err := uc.Process(context.Background(), "user-1", cartRequest())
	require.Error(t, err)

	assert.True(t, runner.rolledBack)
	assert.Empty(t, runner.saleRepo.sales)
	assert.Equal(t, int64(10), runner.itemRepo.items["item-1"].Quantity)
}

func TestProcess_StockInsuficienteHaceRollback(t *testing.T) {
	item := widgetItem()
	item.Quantity = 1
	runner := newRunner(item)
	uc := NewProcessSaleUseCase(runner, &fakeNumberSource{settings: entity.DefaultInvoiceSettings()})

	_, err := uc.Process(context.Background(), "user-1", cartRequest())
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, runner.rolledBack)
	assert.Equal(t, int64(1), runner.itemRepo.items["item-1"].Quantity)
	assert.Empty(t, runner.saleRepo.sales)
	assert.Empty(t, runner.txnRepo.created)
}

func TestProcess_ArticuloInexistenteHaceRollback(t *testing.T) {
	runner := newRunner() // catálogo vacío
	uc := NewProcessSaleUseCase(runner, &fakeNumberSource{settings: entity.DefaultInvoiceSettings()})

	_, err := uc.Process(context.Background(), "user-1", cartRequest())
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, runner.saleRepo.sales)
}

func TestProcess_TotalQueNoCuadraEsRechazado(t *testing.T) {
	runner := newRunner(widgetItem())
	uc := NewProcessSaleUseCase(runner, &fakeNumberSource{settings: entity.DefaultInvoiceSettings()})

	in := cartRequest()
	in.TotalAmount = decimal.NewFromInt(90) // sin descuento que lo justifique

	_, err := uc.Process(context.Background(), "user-1", in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, runner.saleRepo.sales)
}

func TestProcess_DescuentoEImpuestoEntranAlTotal(t *testing.T) {
	runner := newRunner(widgetItem())
	uc := NewProcessSaleUseCase(runner, &fakeNumberSource{settings: entity.DefaultInvoiceSettings()})

	in := cartRequest()
	in.DiscountAmount = decimal.NewFromInt(10)
	in.TaxAmount = decimal.NewFromFloat(7.88)
	in.TotalAmount = decimal.NewFromFloat(97.88)

	resp, err := uc.Process(context.Background(), "user-1", in)
	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromFloat(97.88)))
}

func TestProcess_EntradaInvalidaNoAbreTransaccion(t *testing.T) {
	cases := []struct {
		name string
		in   dto.ProcessSaleRequest
	}{
		{"sin cliente", func() dto.ProcessSaleRequest { in := cartRequest(); in.CustomerName = ""; return in }()},
		{"sin items", dto.ProcessSaleRequest{CustomerName: "Ana"}},
		{"cantidad cero", func() dto.ProcessSaleRequest {
			in := cartRequest()
			in.Items[0].Quantity = 0
			return in
		}()},
		{"precio negativo", func() dto.ProcessSaleRequest {
			in := cartRequest()
			in.Items[0].UnitPrice = decimal.NewFromInt(-1)
			return in
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runner := newRunner(widgetItem())
			uc := NewProcessSaleUseCase(runner, &fakeNumberSource{settings: entity.DefaultInvoiceSettings()})

			_, err := uc.Process(context.Background(), "user-1", tc.in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.False(t, runner.rolledBack, "la transacción no debería haberse abierto")
			assert.Empty(t, runner.saleRepo.sales)
		})
	}
}

func TestProcess_SinConfiguracionUsaNumeracionPorDefecto(t *testing.T) {
	runner := newRunner(widgetItem())
	uc := NewProcessSaleUseCase(runner, &fakeNumberSource{err: errors.New("sin conexión")})

	resp, err := uc.Process(context.Background(), "user-1", cartRequest())
	require.NoError(t, err)
	assert.Equal(t, "INV-1001", resp.InvoiceNumber)
}
