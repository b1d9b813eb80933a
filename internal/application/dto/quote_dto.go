package dto

import "github.com/shopspring/decimal"

// CreateQuoteRequest body para POST /api/quotes.
// Los montos (subtotal por línea, subtotal, IVA, total) se calculan en el
// servidor; el cliente solo envía cantidades, precios y descuentos.
type CreateQuoteRequest struct {
	CaseID     string             `json:"case_id,omitempty"`
	Number     string             `json:"number,omitempty"` // opcional; vacío = se genera
	ValidDays  int                `json:"valid_days,omitempty"`
	Notes      string             `json:"notes,omitempty"`
	Items      []QuoteItemRequest `json:"items"`
}

// QuoteItemRequest línea de cotización.
type QuoteItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
}

// UpdateQuoteStatusRequest body para PATCH /api/quotes/:id/status.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status"`
}

// QuoteResponse cotización con sus líneas.
type QuoteResponse struct {
	ID         string              `json:"id"`
	ProviderID string              `json:"provider_id"`
	CaseID     string              `json:"case_id,omitempty"`
	Number     string              `json:"number"`
	IssuedAt   string              `json:"issued_at"`
	ValidUntil string              `json:"valid_until,omitempty"`
	Status     string              `json:"status"`
	Subtotal   decimal.Decimal     `json:"subtotal"`
	TaxAmount  decimal.Decimal     `json:"tax_amount"`
	Total      decimal.Decimal     `json:"total"`
	Notes      string              `json:"notes,omitempty"`
	Items      []QuoteItemResponse `json:"items,omitempty"`
}

// QuoteItemResponse línea en respuestas.
type QuoteItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
