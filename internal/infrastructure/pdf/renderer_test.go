package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/pos-api/internal/application/billing"
	"github.com/smartstock/pos-api/internal/domain/entity"
)

func sampleSale() *entity.Sale {
	return &entity.Sale{
		ID:             "sale-1",
		InvoiceNumber:  "INV-1001",
		CustomerName:   "Ana Torres",
		CustomerEmail:  "ana@ejemplo.com",
		Subtotal:       decimal.NewFromInt(100),
		DiscountAmount: decimal.NewFromInt(5),
		TaxAmount:      decimal.NewFromFloat(8.31),
		TotalAmount:    decimal.NewNullDecimal(decimal.NewFromFloat(103.31)),
		Notes:          "Entrega en tienda",
		CreatedAt:      time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Items: []entity.SaleItem{
			{ItemName: "Widget", ItemSKU: "WID-001", Quantity: 2, UnitPrice: decimal.NewFromInt(50), TotalPrice: decimal.NewFromInt(100)},
		},
	}
}

// Ambas estrategias deben producir un PDF válido con el mismo Document.
func TestRenderers_ProducenPDFValido(t *testing.T) {
	renderers := map[string]billing.Renderer{
		"dibujo directo": NewGofpdfRenderer(),
		"layout":         NewMarotoRenderer(),
	}
	company := entity.DefaultCompanyInfo()
	settings := entity.DefaultInvoiceSettings()

	for name, r := range renderers {
		t.Run(name, func(t *testing.T) {
			data, err := r.Render(context.Background(), sampleSale(), company, settings)
			require.NoError(t, err)
			require.NotEmpty(t, data)
			assert.Equal(t, "%PDF", string(data[:4]), "los bytes deben empezar con la cabecera PDF")
		})
	}
}

// Una venta sin artículos también debe renderizar (fila centinela).
func TestRenderers_VentaSinArticulos(t *testing.T) {
	sale := sampleSale()
	sale.Items = nil

	for _, r := range []billing.Renderer{NewGofpdfRenderer(), NewMarotoRenderer()} {
		data, err := r.Render(context.Background(), sale, entity.CompanyInfo{}, entity.InvoiceSettings{})
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(data[:4]))
	}
}
