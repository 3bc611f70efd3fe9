package xlsx

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/smartstock/pos-api/internal/domain/entity"
)

func TestExportSales_EscribeCabeceraYFilas(t *testing.T) {
	exporter := NewSalesExporter()

	data, err := exporter.ExportSales([]*entity.Sale{
		{
			InvoiceNumber: "INV-1001",
			CustomerName:  "Ana Torres",
			Subtotal:      decimal.NewFromInt(100),
			TotalAmount:   decimal.NewNullDecimal(decimal.NewFromInt(100)),
			PaymentStatus: entity.PaymentStatusPaid,
			CreatedAt:     time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			InvoiceNumber: "INV-1002",
			CustomerName:  "Luis Mora",
			Subtotal:      decimal.NewFromFloat(49.99),
			TotalAmount:   decimal.NewNullDecimal(decimal.NewFromFloat(49.99)),
			PaymentStatus: entity.PaymentStatusPending,
			CreatedAt:     time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	// Solo queda la hoja de ventas; la "Sheet1" por defecto se elimina.
	assert.Equal(t, []string{"Sales"}, f.GetSheetList())

	rows, err := f.GetRows("Sales")
	require.NoError(t, err)
	require.Len(t, rows, 3) // cabecera + 2 ventas

	assert.Equal(t, "Invoice Number", rows[0][0])
	assert.Equal(t, "INV-1001", rows[1][0])
	assert.Equal(t, "Ana Torres", rows[1][2])
	assert.Equal(t, "INV-1002", rows[2][0])
	assert.Equal(t, "pending", rows[2][7])
}

func TestExportSales_SinVentasSoloCabecera(t *testing.T) {
	data, err := NewSalesExporter().ExportSales(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sales")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
