package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/smartstock/pos-api/internal/domain"
	"github.com/smartstock/pos-api/internal/domain/entity"
	"github.com/smartstock/pos-api/internal/domain/invoice"
	"github.com/smartstock/pos-api/internal/domain/repository"
)

// InvoicePDFUseCase genera la factura (PDF) de una venta ya persistida.
// La generación es idempotente y sin efectos sobre el modelo de datos:
// puede invocarse N veces sobre la misma venta. No hay reintentos: cada
// fallo es terminal para esa invocación y se propaga al caller.
type InvoicePDFUseCase struct {
	saleRepo repository.SaleRepository
	settings SettingsReader
	renderer Renderer
}

// NewInvoicePDFUseCase construye el caso de uso inyectando sus dependencias.
func NewInvoicePDFUseCase(saleRepo repository.SaleRepository, settings SettingsReader, renderer Renderer) *InvoicePDFUseCase {
	return &InvoicePDFUseCase{saleRepo: saleRepo, settings: settings, renderer: renderer}
}

// DownloadInvoice genera el PDF y el nombre de archivo de descarga.
//
// Retorna:
//   - (pdfBytes, "invoice-<invoice_number>.pdf", nil) si todo sale bien.
//   - domain.ErrNotFound      si la venta no existe.
//   - domain.ErrInvalidInput  si la venta no pasa la validación de factura.
func (uc *InvoicePDFUseCase) DownloadInvoice(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := uc.loadSale(saleID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generate(ctx, sale)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, fmt.Sprintf("invoice-%s.pdf", sale.InvoiceNumber), nil
}

// PrintInvoice genera el PDF para visualización inline (impresión desde el
// visor del navegador). Mismo pipeline que DownloadInvoice, sin filename.
func (uc *InvoicePDFUseCase) PrintInvoice(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.loadSale(saleID)
	if err != nil {
		return nil, err
	}
	return uc.generate(ctx, sale)
}

// loadSale carga la venta con sus líneas y corta ANTES de cualquier trabajo
// de render si falta el número de factura.
func (uc *InvoicePDFUseCase) loadSale(saleID string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, fmt.Errorf("factura: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.InvoiceNumber == "" {
		return nil, fmt.Errorf("%w: la venta no tiene número de factura", domain.ErrInvalidInput)
	}
	items, err := uc.saleRepo.GetItemsBySaleID(saleID)
	if err != nil {
		return nil, fmt.Errorf("factura: obtener líneas: %w", err)
	}
	sale.Items = items
	return sale, nil
}

// generate valida, resuelve empresa/configuración y delega en el Renderer.
func (uc *InvoicePDFUseCase) generate(ctx context.Context, sale *entity.Sale) ([]byte, error) {
	if errs := invoice.ValidateSale(sale); len(errs) > 0 {
		return nil, fmt.Errorf("%w: invalid sale data: %s", domain.ErrInvalidInput, strings.Join(errs, ", "))
	}

	// Empresa y settings son solo presentación: si no se pueden leer se
	// renderiza con los valores cero (la factura sigue siendo válida).
	company, err := uc.settings.CompanyInfo()
	if err != nil {
		log.Warn().Err(err).Msg("factura: company_info no disponible, usando valores por defecto")
		company = entity.CompanyInfo{}
	}
	settings, err := uc.settings.InvoiceSettings()
	if err != nil {
		log.Warn().Err(err).Msg("factura: invoice_settings no disponible, usando valores por defecto")
		settings = entity.InvoiceSettings{}
	}

	pdfBytes, err := uc.renderer.Render(ctx, sale, company, settings)
	if err != nil {
		// El dump de la venta va al log para diagnóstico; al caller solo
		// le llega el error envuelto genérico.
		log.Error().Err(err).Interface("sale", sale).Msg("factura: render fallido")
		return nil, fmt.Errorf("generar PDF de factura: %w", err)
	}
	return pdfBytes, nil
}
