// Package xlsx produce el export del histórico de ventas en formato Excel.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/smartstock/pos-api/internal/domain/entity"
	"github.com/smartstock/pos-api/internal/domain/money"
)

const sheetName = "Sales"

// SalesExporter implementa sales.Exporter con excelize.
type SalesExporter struct{}

// NewSalesExporter construye el exportador.
func NewSalesExporter() *SalesExporter { return &SalesExporter{} }

// ExportSales escribe una hoja con una fila por venta y devuelve los bytes
// del archivo XLSX.
func (e *SalesExporter) ExportSales(sales []*entity.Sale) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx: eliminar hoja por defecto: %w", err)
	}

	headers := []string{
		"Invoice Number", "Date", "Customer", "Subtotal",
		"Discount", "Tax", "Total", "Payment Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: escribir cabecera: %w", err)
		}
	}

	for row, s := range sales {
		values := []interface{}{
			s.InvoiceNumber,
			s.CreatedAt.Format("01/02/2006"),
			s.CustomerName,
			money.Round(s.Subtotal).InexactFloat64(),
			money.Round(s.DiscountAmount).InexactFloat64(),
			money.Round(s.TaxAmount).InexactFloat64(),
			money.Round(money.FromNull(s.TotalAmount)).InexactFloat64(),
			s.PaymentStatus,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: escribir fila %d: %w", row+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
