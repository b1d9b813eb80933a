package entity

import "github.com/shopspring/decimal"

// QuoteItem representa una línea de una cotización. El orden de impresión es
// el orden de Position (orden de ingreso).
type QuoteItem struct {
	ID          string
	QuoteID     string
	Name        string
	Description string // texto secundario opcional; vacío = sin línea de descripción
	Quantity    int
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal // 0–100
	Subtotal    decimal.Decimal // calculado por el caso de uso al crear; el renderer lo imprime tal cual
	Position    int
}
