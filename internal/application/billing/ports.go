package billing

import (
	"context"

	"github.com/smartstock/pos-api/internal/domain/entity"
)

// Renderer es la capacidad de producir el PDF de una factura a partir de
// los snapshots (venta, empresa, configuración). Hay dos implementaciones
// intercambiables en infrastructure/pdf: dibujo directo (gofpdf) y árbol
// de layout (maroto). Los callers dependen de esta interfaz, nunca de una
// estrategia concreta.
type Renderer interface {
	Render(ctx context.Context, sale *entity.Sale, company entity.CompanyInfo, settings entity.InvoiceSettings) ([]byte, error)
}

// SettingsReader expone las vistas tipadas de configuración que necesita
// la factura. El use case de settings lo implementa.
type SettingsReader interface {
	CompanyInfo() (entity.CompanyInfo, error)
	InvoiceSettings() (entity.InvoiceSettings, error)
}
