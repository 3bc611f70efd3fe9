package inventory

import "github.com/shopspring/decimal"

// AverageCost calcula el costo promedio ponderado tras una entrada de stock
// (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func AverageCost(currentQty int64, currentCost decimal.Decimal, inQty int64, inCost decimal.Decimal) decimal.Decimal {
	qty := decimal.NewFromInt(currentQty)
	in := decimal.NewFromInt(inQty)
	sum := qty.Add(in)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := qty.Mul(currentCost).Add(in.Mul(inCost))
	return num.Div(sum)
}
