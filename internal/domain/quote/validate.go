package quote

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/funeraria-api/internal/domain/entity"
)

// Inconsistency describe una discrepancia aritmética detectada en una
// cotización: un subtotal de línea que no coincide con cant×precio×(1−desc) o
// totales de cabecera que no cuadran con la suma de las líneas.
type Inconsistency struct {
	Position int             // índice del ítem; -1 para discrepancias de cabecera
	Field    string          // "subtotal", "tax_amount", "total"
	Expected decimal.Decimal
	Actual   decimal.Decimal
}

func (i Inconsistency) String() string {
	if i.Position < 0 {
		return fmt.Sprintf("cabecera %s: esperado %s, registrado %s", i.Field, i.Expected, i.Actual)
	}
	return fmt.Sprintf("ítem %d %s: esperado %s, registrado %s", i.Position, i.Field, i.Expected, i.Actual)
}

// CheckArithmetic verifica la consistencia aritmética de una cotización y
// devuelve las discrepancias encontradas. El renderizador no la invoca jamás:
// imprime los montos del caller tal cual (la capa de presentación no es
// autoridad de cálculo). Está disponible para callers que quieran validar
// antes de renderizar.
func CheckArithmetic(q *entity.Quote, items []*entity.QuoteItem) []Inconsistency {
	var out []Inconsistency

	hundred := decimal.NewFromInt(100)
	sum := decimal.Zero
	for i, it := range items {
		expected := it.UnitPrice.
			Mul(decimal.NewFromInt(int64(it.Quantity))).
			Mul(hundred.Sub(it.DiscountPct)).
			Div(hundred).
			Round(0)
		if !expected.Equal(it.Subtotal) {
			out = append(out, Inconsistency{Position: i, Field: "subtotal", Expected: expected, Actual: it.Subtotal})
		}
		sum = sum.Add(it.Subtotal)
	}

	if !sum.Equal(q.Subtotal) {
		out = append(out, Inconsistency{Position: -1, Field: "subtotal", Expected: sum, Actual: q.Subtotal})
	}
	if expected := q.Subtotal.Add(q.TaxAmount); !expected.Equal(q.Total) {
		out = append(out, Inconsistency{Position: -1, Field: "total", Expected: expected, Actual: q.Total})
	}
	return out
}
