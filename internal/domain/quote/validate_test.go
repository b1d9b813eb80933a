package quote_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/funeraria-api/internal/domain/entity"
	"github.com/jhoicas/funeraria-api/internal/domain/quote"
)

// TestCheckArithmetic_Consistente: una cotización cuadrada no reporta nada.
func TestCheckArithmetic_Consistente(t *testing.T) {
	q, items := testQuote(3)
	assert.Empty(t, quote.CheckArithmetic(q, items))
}

// TestCheckArithmetic_Discrepancias: subtotales de línea y totales de cabecera
// inconsistentes se reportan con el valor esperado y el registrado. El motor
// de layout, en cambio, imprime los valores registrados tal cual.
func TestCheckArithmetic_Discrepancias(t *testing.T) {
	q, items := testQuote(2)
	items[0].Subtotal = items[0].Subtotal.Add(decimal.NewFromInt(1_000))

	out := quote.CheckArithmetic(q, items)
	require.NotEmpty(t, out)
	assert.Equal(t, 0, out[0].Position)
	assert.Equal(t, "subtotal", out[0].Field)

	// El renderer confía en el caller: la fila imprime el subtotal registrado.
	doc, err := quote.Layout(q, items, testProvider(), quote.DefaultConfig())
	require.NoError(t, err)
	row := itemRows(doc)[0]
	assert.Equal(t, quote.DefaultConfig().Money.Format(items[0].Subtotal), row.Cells[4].Lines[0].Text)
}

// TestCheckArithmetic_DescuentoAplicado: el subtotal esperado descuenta el
// porcentaje sobre cant×precio.
func TestCheckArithmetic_DescuentoAplicado(t *testing.T) {
	items := []*entity.QuoteItem{{
		Name:        "Urna de mármol",
		Quantity:    2,
		UnitPrice:   decimal.NewFromInt(100_000),
		DiscountPct: decimal.NewFromInt(10),
		Subtotal:    decimal.NewFromInt(180_000),
	}}
	q := &entity.Quote{
		Subtotal:  decimal.NewFromInt(180_000),
		TaxAmount: decimal.NewFromInt(34_200),
		Total:     decimal.NewFromInt(214_200),
	}
	assert.Empty(t, quote.CheckArithmetic(q, items))
}
