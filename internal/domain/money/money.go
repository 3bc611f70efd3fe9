// Package money centraliza el redondeo y formato de montos para que la
// regla (dos decimales, redondeo half-up) sea idéntica en toda la
// aplicación: las dos estrategias de PDF, el checkout y los exports.
package money

import "github.com/shopspring/decimal"

// Round redondea a dos decimales con half-up (9.005 → 9.01).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format devuelve el monto con prefijo de moneda y exactamente dos
// decimales, ej: 9 → "$9.00", 9.005 → "$9.01".
func Format(d decimal.Decimal) string {
	return "$" + Round(d).StringFixed(2)
}

// FormatNegated formatea el monto como descuento: 5 → "-$5.00".
func FormatNegated(d decimal.Decimal) string {
	return "-" + Format(d)
}

// FromNull devuelve el valor o cero si el monto está ausente.
// El render nunca falla por un campo monetario faltante; la validación de
// presencia (invoice.ValidateSale) ocurre antes.
func FromNull(n decimal.NullDecimal) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	return n.Decimal
}
