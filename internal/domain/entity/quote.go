package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cotización.
const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"
)

// Quote representa la cabecera de una cotización emitida por una funeraria.
// Los montos (Subtotal, TaxAmount, Total) se calculan al crear la cotización;
// el renderizador del documento nunca los recalcula.
type Quote struct {
	ID         string
	ProviderID string
	CaseID     string // caso/lead asociado; vacío = cotización independiente
	Number     string // identificador de despliegue (ej. COT-2024-0001)
	IssuedAt   time.Time
	ValidUntil *time.Time // nil = sin fecha de validez
	Status     string
	Subtotal   decimal.Decimal
	TaxAmount  decimal.Decimal
	Total      decimal.Decimal
	Notes      string // términos y condiciones; vacío = sin bloque de notas
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
