package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAverageCost_PromedioPonderado(t *testing.T) {
	// 10 unidades a $30 + 10 unidades a $50 → $40
	got := AverageCost(10, decimal.NewFromInt(30), 10, decimal.NewFromInt(50))
	assert.True(t, got.Equal(decimal.NewFromInt(40)), "esperaba 40, obtuvo %s", got)
}

func TestAverageCost_EntradaSobreStockCero(t *testing.T) {
	// Sin stock previo el costo pasa a ser el de la entrada.
	got := AverageCost(0, decimal.Zero, 5, decimal.NewFromFloat(12.5))
	assert.True(t, got.Equal(decimal.NewFromFloat(12.5)), "esperaba 12.5, obtuvo %s", got)
}

func TestAverageCost_SinUnidadesDevuelveCero(t *testing.T) {
	got := AverageCost(0, decimal.NewFromInt(30), 0, decimal.NewFromInt(50))
	assert.True(t, got.IsZero())
}
