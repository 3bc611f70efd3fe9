package invoice_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/pos-api/internal/domain/entity"
	"github.com/smartstock/pos-api/internal/domain/invoice"
)

// venta mínima válida para los tests; los casos la mutan según necesiten.
func validSale() *entity.Sale {
	return &entity.Sale{
		ID:            "sale-1",
		InvoiceNumber: "INV-1001",
		CustomerName:  "Jane Doe",
		Subtotal:      decimal.NewFromInt(100),
		TotalAmount:   decimal.NewNullDecimal(decimal.NewFromInt(100)),
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateSale
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateSale_VentaNula(t *testing.T) {
	errs := invoice.ValidateSale(nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "Sale data is missing", errs[0])
}

// Cada campo requerido ausente produce exactamente un error que lo nombra,
// y los fallos se acumulan (no corta en el primero).
func TestValidateSale_AcumulaTodosLosFallos(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entity.Sale)
		want   []string
	}{
		{
			name:   "sin número de factura",
			mutate: func(s *entity.Sale) { s.InvoiceNumber = "" },
			want:   []string{"Invoice number is missing"},
		},
		{
			name:   "sin total",
			mutate: func(s *entity.Sale) { s.TotalAmount = decimal.NullDecimal{} },
			want:   []string{"Total amount is missing"},
		},
		{
			name:   "sin fecha",
			mutate: func(s *entity.Sale) { s.CreatedAt = time.Time{} },
			want:   []string{"Sale date is missing"},
		},
		{
			name: "los tres ausentes",
			mutate: func(s *entity.Sale) {
				s.InvoiceNumber = ""
				s.TotalAmount = decimal.NullDecimal{}
				s.CreatedAt = time.Time{}
			},
			want: []string{
				"Invoice number is missing",
				"Total amount is missing",
				"Sale date is missing",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sale := validSale()
			tc.mutate(sale)
			assert.Equal(t, tc.want, invoice.ValidateSale(sale))
		})
	}
}

// Un total de cero es válido: cero no es "ausente".
func TestValidateSale_TotalCeroEsValido(t *testing.T) {
	sale := validSale()
	sale.TotalAmount = decimal.NewNullDecimal(decimal.Zero)
	assert.Empty(t, invoice.ValidateSale(sale))
}

func TestValidateSale_VentaCompleta(t *testing.T) {
	assert.Empty(t, invoice.ValidateSale(validSale()))
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildLines
// ──────────────────────────────────────────────────────────────────────────────

// Cadena de fallback del nombre: catálogo → snapshot desnormalizado → "Unknown Item".
func TestBuildLines_FallbackDeNombre(t *testing.T) {
	sale := validSale()
	sale.Items = []entity.SaleItem{
		{CatalogName: "Widget Pro", ItemName: "Widget", Quantity: 1},
		{ItemName: "Widget", Quantity: 1},
		{Quantity: 1},
	}
	lines := invoice.BuildLines(sale)
	require.Len(t, lines, 3)
	assert.Equal(t, "Widget Pro", lines[0].Name, "prefiere el nombre actual del catálogo")
	assert.Equal(t, "Widget", lines[1].Name, "cae al snapshot desnormalizado")
	assert.Equal(t, "Unknown Item", lines[2].Name, "último fallback literal")
}

// Venta sin artículos → exactamente una fila centinela.
func TestBuildLines_VentaVaciaProduceCentinela(t *testing.T) {
	sale := validSale()
	sale.Items = nil

	lines := invoice.BuildLines(sale)
	require.Len(t, lines, 1)
	assert.Equal(t, invoice.Line{
		Name:      "No items",
		Quantity:  "0",
		UnitPrice: "$0.00",
		Total:     "$0.00",
	}, lines[0])
}

func TestBuildLines_FormateaPreciosADosDecimales(t *testing.T) {
	sale := validSale()
	sale.Items = []entity.SaleItem{{
		ItemName:   "Widget",
		Quantity:   2,
		UnitPrice:  decimal.NewFromInt(9),
		TotalPrice: decimal.RequireFromString("18.005"),
	}}
	lines := invoice.BuildLines(sale)
	require.Len(t, lines, 1)
	assert.Equal(t, "$9.00", lines[0].UnitPrice)
	assert.Equal(t, "$18.01", lines[0].Total, "redondeo half-up a dos decimales")
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildDocument
// ──────────────────────────────────────────────────────────────────────────────

// Descuento e impuesto en cero se omiten del bloque de totales;
// con valores positivos aparecen con su formato exacto.
func TestBuildDocument_TotalesCondicionales(t *testing.T) {
	sale := validSale()
	sale.DiscountAmount = decimal.Zero
	sale.TaxAmount = decimal.Zero

	doc := invoice.BuildDocument(sale, entity.CompanyInfo{}, entity.InvoiceSettings{})
	require.Len(t, doc.Totals, 2, "solo Subtotal y Total cuando descuento e impuesto son cero")
	assert.Equal(t, "Subtotal:", doc.Totals[0].Label)
	assert.Equal(t, "Total:", doc.Totals[1].Label)
	assert.True(t, doc.Totals[1].Emphasis)

	sale.DiscountAmount = decimal.NewFromInt(5)
	doc = invoice.BuildDocument(sale, entity.CompanyInfo{}, entity.InvoiceSettings{})
	require.Len(t, doc.Totals, 3)
	assert.Equal(t, invoice.TotalLine{Label: "Discount:", Value: "-$5.00"}, doc.Totals[1])
}

func TestBuildDocument_EmpresaSinNombreUsaFallback(t *testing.T) {
	doc := invoice.BuildDocument(validSale(), entity.CompanyInfo{}, entity.InvoiceSettings{})
	assert.Equal(t, "Your Company", doc.CompanyName)
	assert.Empty(t, doc.CompanyLines, "sin datos de contacto no hay líneas de empresa")
}

func TestBuildDocument_BloqueBillToCondicional(t *testing.T) {
	sale := validSale()
	sale.CustomerName = "Jane Doe"
	sale.CustomerEmail = ""
	sale.CustomerPhone = "555-0101"

	doc := invoice.BuildDocument(sale, entity.CompanyInfo{}, entity.InvoiceSettings{})
	assert.Equal(t, []string{"Jane Doe", "555-0101"}, doc.BillTo,
		"solo los campos presentes, en orden nombre/email/teléfono/dirección")
}

// Escenario de punta a punta del documento (venta INV-2000).
func TestBuildDocument_EscenarioCompleto(t *testing.T) {
	sale := &entity.Sale{
		InvoiceNumber:  "INV-2000",
		CreatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Subtotal:       decimal.NewFromInt(100),
		DiscountAmount: decimal.NewFromInt(10),
		TaxAmount:      decimal.NewFromInt(9),
		TotalAmount:    decimal.NewNullDecimal(decimal.NewFromInt(99)),
		Items: []entity.SaleItem{{
			ItemName:   "Widget",
			Quantity:   2,
			UnitPrice:  decimal.NewFromInt(50),
			TotalPrice: decimal.NewFromInt(100),
		}},
	}
	require.Empty(t, invoice.ValidateSale(sale))

	doc := invoice.BuildDocument(sale, entity.CompanyInfo{Name: "Acme"}, entity.InvoiceSettings{})
	assert.Equal(t, "Acme", doc.CompanyName)
	assert.Equal(t, "INV-2000", doc.InvoiceNumber)
	require.Len(t, doc.Lines, 1)
	assert.Equal(t, invoice.Line{
		Name:      "Widget",
		Quantity:  "2",
		UnitPrice: "$50.00",
		Total:     "$100.00",
	}, doc.Lines[0])

	final := doc.Totals[len(doc.Totals)-1]
	assert.Equal(t, "Total:", final.Label)
	assert.Equal(t, "$99.00", final.Value)
	assert.Equal(t, "Thank you for your business!", doc.Footer)
}
