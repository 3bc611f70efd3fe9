package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/smartstock/pos-api/internal/domain/money"
)

// La regla de formato: siempre dos decimales, redondeo half-up.
func TestFormat_DosDecimalesHalfUp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9", "$9.00"},
		{"9.005", "$9.01"},
		{"9.004", "$9.00"},
		{"0", "$0.00"},
		{"1234.5", "$1234.50"},
		{"0.999", "$1.00"},
	}
	for _, tc := range cases {
		d := decimal.RequireFromString(tc.in)
		assert.Equal(t, tc.want, money.Format(d), "entrada %s", tc.in)
	}
}

func TestFormatNegated(t *testing.T) {
	assert.Equal(t, "-$5.00", money.FormatNegated(decimal.NewFromInt(5)))
}

func TestFromNull(t *testing.T) {
	assert.True(t, money.FromNull(decimal.NullDecimal{}).IsZero(), "ausente → cero")
	d := money.FromNull(decimal.NewNullDecimal(decimal.NewFromInt(7)))
	assert.Equal(t, "7", d.String())
}
