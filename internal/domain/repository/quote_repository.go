package repository

import "github.com/jhoicas/funeraria-api/internal/domain/entity"

// QuoteRepository define el puerto de persistencia para cotizaciones.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	CreateItem(item *entity.QuoteItem) error
	GetByID(id string) (*entity.Quote, error)
	// GetItemsByQuoteID devuelve las líneas ordenadas por Position.
	GetItemsByQuoteID(quoteID string) ([]*entity.QuoteItem, error)
	ListByProvider(providerID string, limit, offset int) ([]*entity.Quote, error)
	UpdateStatus(id, status string) error
}
