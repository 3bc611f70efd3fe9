package sales

import (
	"context"

	"github.com/smartstock/pos-api/internal/domain/entity"
	"github.com/smartstock/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los
// repos de catálogo, log de movimientos y ventas. Si fn retorna error
// (ej: ErrInsufficientStock), el runner hace rollback: el checkout es
// todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		txnRepo repository.TransactionRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// InvoiceNumberSource expone la configuración de numeración de facturas
// (prefijo y número inicial). El use case de settings lo implementa.
type InvoiceNumberSource interface {
	InvoiceSettings() (entity.InvoiceSettings, error)
}

// Exporter produce el archivo de export de ventas (XLSX).
type Exporter interface {
	ExportSales(sales []*entity.Sale) ([]byte, error)
}
