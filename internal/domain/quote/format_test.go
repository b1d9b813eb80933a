package quote_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/funeraria-api/internal/domain/quote"
)

// TestMoneyFormat_CLP valida el formato de referencia chileno: símbolo $,
// miles con punto y sin decimales.
func TestMoneyFormat_CLP(t *testing.T) {
	clp := quote.DefaultConfig().Money

	cases := map[int64]string{
		0:         "$0",
		950:       "$950",
		25_000:    "$25.000",
		500_000:   "$500.000",
		1_000_000: "$1.000.000",
	}
	for in, want := range cases {
		assert.Equal(t, want, clp.Format(decimal.NewFromInt(in)))
	}

	assert.Equal(t, "-$25.000", clp.Format(decimal.NewFromInt(-25_000)))
}

// TestMoneyFormat_ConDecimales: un formato con decimales usa el separador
// decimal configurado y conserva la agrupación de miles.
func TestMoneyFormat_ConDecimales(t *testing.T) {
	f := quote.MoneyFormat{Symbol: "$", ThousandsSep: ".", DecimalSep: ",", Decimals: 2}
	assert.Equal(t, "$1.234.567,89", f.Format(decimal.RequireFromString("1234567.89")))
	assert.Equal(t, "$1.000,50", f.Format(decimal.RequireFromString("1000.5")))
	assert.Equal(t, "$7,00", f.Format(decimal.NewFromInt(7)))
}
