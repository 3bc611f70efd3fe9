package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/smartstock/pos-api/internal/application/dto"
	"github.com/smartstock/pos-api/internal/domain"
	"github.com/smartstock/pos-api/internal/domain/entity"
	"github.com/smartstock/pos-api/internal/domain/money"
	"github.com/smartstock/pos-api/internal/domain/repository"
)

// maxExportRows tope del export XLSX; por encima conviene filtrar por fechas.
const maxExportRows = 10000

// SaleQueryUseCase lecturas de ventas: listado, detalle y export XLSX.
type SaleQueryUseCase struct {
	saleRepo repository.SaleRepository
	exporter Exporter
}

// NewSaleQueryUseCase construye el caso de uso.
func NewSaleQueryUseCase(saleRepo repository.SaleRepository, exporter Exporter) *SaleQueryUseCase {
	return &SaleQueryUseCase{saleRepo: saleRepo, exporter: exporter}
}

// List devuelve cabeceras de venta paginadas, más recientes primero.
func (uc *SaleQueryUseCase) List(page dto.PageRequest) ([]*dto.SaleResponse, error) {
	page.DefaultPage()
	sales, err := uc.saleRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s, nil))
	}
	return out, nil
}

// GetByID devuelve la venta con sus líneas y nombres resueltos del catálogo.
func (uc *SaleQueryUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener venta: %w", err)
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener líneas: %w", err)
	}
	return toSaleResponse(sale, items), nil
}

// Export genera el XLSX con todas las ventas (hasta maxExportRows).
// Devuelve los bytes y el nombre de archivo sugerido.
func (uc *SaleQueryUseCase) Export(_ context.Context) ([]byte, string, error) {
	sales, err := uc.saleRepo.List(maxExportRows, 0)
	if err != nil {
		return nil, "", fmt.Errorf("export: listar ventas: %w", err)
	}
	data, err := uc.exporter.ExportSales(sales)
	if err != nil {
		return nil, "", fmt.Errorf("export: generar XLSX: %w", err)
	}
	filename := fmt.Sprintf("sales-%s.xlsx", time.Now().Format("2006-01-02"))
	return data, filename, nil
}

// toSaleResponse mapea la entidad al DTO de salida.
func toSaleResponse(s *entity.Sale, items []entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:              s.ID,
		InvoiceNumber:   s.InvoiceNumber,
		CustomerName:    s.CustomerName,
		CustomerEmail:   s.CustomerEmail,
		CustomerPhone:   s.CustomerPhone,
		CustomerAddress: s.CustomerAddress,
		Subtotal:        s.Subtotal,
		DiscountAmount:  s.DiscountAmount,
		TaxRate:         s.TaxRate,
		TaxAmount:       s.TaxAmount,
		TotalAmount:     money.FromNull(s.TotalAmount),
		PaymentMethod:   s.PaymentMethod,
		PaymentStatus:   s.PaymentStatus,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
	}
	for _, it := range items {
		name := it.CatalogName
		if name == "" {
			name = it.ItemName
		}
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:         it.ID,
			ItemID:     it.ItemID,
			Name:       name,
			SKU:        it.ItemSKU,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	return resp
}
