package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/smartstock/pos-api/internal/application/dto"
	"github.com/smartstock/pos-api/internal/domain"
	"github.com/smartstock/pos-api/internal/domain/entity"
	"github.com/smartstock/pos-api/internal/domain/money"
	"github.com/smartstock/pos-api/internal/domain/repository"
)

// UseCase contiene la lógica de catálogo: artículos, categorías, proveedores
// y consulta del log de movimientos. El stock NO se modifica aquí salvo por
// AdjustQuantity (adjust_quantity.go), que pasa por transacción.
type UseCase struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	txnRepo      repository.TransactionRepository
	txRunner     TxRunner
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	txnRepo repository.TransactionRepository,
	txRunner TxRunner,
) *UseCase {
	return &UseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		txnRepo:      txnRepo,
		txRunner:     txRunner,
	}
}

// ── artículos ───────────────────────────────────────────────────────────────

// CreateItem da de alta un artículo. El SKU debe ser único.
func (uc *UseCase) CreateItem(userID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: sku y nombre son obligatorios", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() || in.Quantity < 0 {
		return nil, fmt.Errorf("%w: precio, costo y cantidad no pueden ser negativos", domain.ErrInvalidInput)
	}

	existing, err := uc.itemRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, fmt.Errorf("verificar SKU: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un artículo con SKU %s", domain.ErrDuplicate, in.SKU)
	}

	now := time.Now()
	item := &entity.InventoryItem{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		SupplierID:    in.SupplierID,
		Price:         money.Round(in.Price),
		Cost:          money.Round(in.Cost),
		Quantity:      in.Quantity,
		MinStockLevel: in.MinStockLevel,
		Status:        entity.ItemStatusActive,
		Barcode:       in.Barcode,
		ImageURL:      in.ImageURL,
		CreatedBy:     userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, fmt.Errorf("crear artículo: %w", err)
	}

	// El stock inicial queda registrado como entrada para que el log de
	// movimientos cuadre con la cantidad actual.
	if item.Quantity > 0 {
		if err := uc.txnRepo.Create(&entity.InventoryTransaction{
			ID:               uuid.New().String(),
			ItemID:           item.ID,
			TransactionType:  entity.TransactionStockIn,
			Quantity:         item.Quantity,
			PreviousQuantity: 0,
			NewQuantity:      item.Quantity,
			UnitCost:         item.Cost,
			Notes:            "Stock inicial",
			CreatedBy:        userID,
			CreatedAt:        now,
		}); err != nil {
			log.Warn().Err(err).Str("item_id", item.ID).Msg("no se pudo registrar el stock inicial")
		}
	}
	return toItemResponse(item), nil
}

// GetItem devuelve el artículo o ErrNotFound.
func (uc *UseCase) GetItem(id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener artículo: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// ListItems devuelve el catálogo paginado.
func (uc *UseCase) ListItems(page dto.PageRequest) ([]*dto.ItemResponse, error) {
	page.DefaultPage()
	items, err := uc.itemRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar artículos: %w", err)
	}
	out := make([]*dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// UpdateItem aplica una actualización parcial: los campos nil no cambian.
// La cantidad en stock no se toca por aquí.
func (uc *UseCase) UpdateItem(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener artículo: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.CategoryID != nil {
		item.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		item.SupplierID = *in.SupplierID
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
		}
		item.Price = money.Round(*in.Price)
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, fmt.Errorf("%w: el costo no puede ser negativo", domain.ErrInvalidInput)
		}
		item.Cost = money.Round(*in.Cost)
	}
	if in.MinStockLevel != nil {
		item.MinStockLevel = *in.MinStockLevel
	}
	if in.Status != nil {
		if *in.Status != entity.ItemStatusActive && *in.Status != entity.ItemStatusInactive {
			return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, *in.Status)
		}
		item.Status = *in.Status
	}
	if in.Barcode != nil {
		item.Barcode = *in.Barcode
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	item.UpdatedAt = time.Now()

	if err := uc.itemRepo.Update(item); err != nil {
		return nil, fmt.Errorf("actualizar artículo: %w", err)
	}
	return toItemResponse(item), nil
}

// DeleteItem elimina el artículo del catálogo. Las ventas pasadas conservan
// su snapshot desnormalizado (item_name, item_sku), así que las facturas
// históricas siguen generándose.
func (uc *UseCase) DeleteItem(id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("obtener artículo: %w", err)
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if err := uc.itemRepo.Delete(id); err != nil {
		return fmt.Errorf("eliminar artículo: %w", err)
	}
	return nil
}

// ── categorías y proveedores ────────────────────────────────────────────────

// CreateCategory da de alta una categoría.
func (uc *UseCase) CreateCategory(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	now := time.Now()
	cat := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(cat); err != nil {
		return nil, fmt.Errorf("crear categoría: %w", err)
	}
	return &dto.CategoryResponse{ID: cat.ID, Name: cat.Name, Description: cat.Description}, nil
}

// ListCategories devuelve todas las categorías.
func (uc *UseCase) ListCategories() ([]*dto.CategoryResponse, error) {
	cats, err := uc.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	out := make([]*dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, &dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	return out, nil
}

// CreateSupplier da de alta un proveedor.
func (uc *UseCase) CreateSupplier(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	now := time.Now()
	sup := &entity.Supplier{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.supplierRepo.Create(sup); err != nil {
		return nil, fmt.Errorf("crear proveedor: %w", err)
	}
	return toSupplierResponse(sup), nil
}

// ListSuppliers devuelve todos los proveedores.
func (uc *UseCase) ListSuppliers() ([]*dto.SupplierResponse, error) {
	sups, err := uc.supplierRepo.List()
	if err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	out := make([]*dto.SupplierResponse, 0, len(sups))
	for _, s := range sups {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// ── movimientos ─────────────────────────────────────────────────────────────

// ListTransactions devuelve los últimos movimientos del log de inventario.
func (uc *UseCase) ListTransactions(limit int) ([]*dto.TransactionResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	txns, err := uc.txnRepo.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	out := make([]*dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransactionResponse(t))
	}
	return out, nil
}

// ── mappers ─────────────────────────────────────────────────────────────────

func toItemResponse(i *entity.InventoryItem) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:            i.ID,
		SKU:           i.SKU,
		Name:          i.Name,
		Description:   i.Description,
		CategoryID:    i.CategoryID,
		CategoryName:  i.CategoryName,
		SupplierID:    i.SupplierID,
		SupplierName:  i.SupplierName,
		Price:         i.Price,
		Cost:          i.Cost,
		Quantity:      i.Quantity,
		MinStockLevel: i.MinStockLevel,
		LowStock:      i.LowStock(),
		Status:        i.Status,
		Barcode:       i.Barcode,
		ImageURL:      i.ImageURL,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
	}
}

func toTransactionResponse(t *entity.InventoryTransaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:               t.ID,
		ItemID:           t.ItemID,
		ItemName:         t.ItemName,
		ItemSKU:          t.ItemSKU,
		TransactionType:  t.TransactionType,
		Quantity:         t.Quantity,
		PreviousQuantity: t.PreviousQuantity,
		NewQuantity:      t.NewQuantity,
		UnitCost:         t.UnitCost,
		TotalCost:        t.TotalCost,
		ReferenceNumber:  t.ReferenceNumber,
		Notes:            t.Notes,
		CreatedAt:        t.CreatedAt,
	}
}
