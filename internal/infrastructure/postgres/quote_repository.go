package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/funeraria-api/internal/domain"
	"github.com/jhoicas/funeraria-api/internal/domain/entity"
	"github.com/jhoicas/funeraria-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación de QuoteRepository (usable con pool o tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persiste la cabecera de la cotización.
func (r *QuoteRepo) Create(q *entity.Quote) error {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	query := `
		INSERT INTO quotes (id, provider_id, case_id, number, issued_at, valid_until, status, subtotal, tax_amount, total, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		q.ID, q.ProviderID, nullIfEmpty(q.CaseID), q.Number, q.IssuedAt, q.ValidUntil,
		q.Status, q.Subtotal, q.TaxAmount, q.Total, nullIfEmpty(q.Notes),
		q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de cotización ya existe", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la cotización.
func (r *QuoteRepo) CreateItem(item *entity.QuoteItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO quote_items (id, quote_id, name, description, quantity, unit_price, discount_pct, subtotal, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.QuoteID, item.Name, nullIfEmpty(item.Description),
		item.Quantity, item.UnitPrice, item.DiscountPct, item.Subtotal, item.Position,
	)
	if err != nil {
		return fmt.Errorf("insert quote item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una cotización.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := quoteSelect + ` WHERE id = $1`
	var q entity.Quote
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.ProviderID, &q.CaseID, &q.Number, &q.IssuedAt, &q.ValidUntil,
		&q.Status, &q.Subtotal, &q.TaxAmount, &q.Total, &q.Notes,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote by id: %w", err)
	}
	return &q, nil
}

// GetItemsByQuoteID devuelve las líneas ordenadas por posición de ingreso.
func (r *QuoteRepo) GetItemsByQuoteID(quoteID string) ([]*entity.QuoteItem, error) {
	query := `
		SELECT id, quote_id, name, COALESCE(description, ''), quantity, unit_price, discount_pct, subtotal, position
		FROM quote_items WHERE quote_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("list quote items: %w", err)
	}
	defer rows.Close()
	var list []*entity.QuoteItem
	for rows.Next() {
		var it entity.QuoteItem
		if err := rows.Scan(&it.ID, &it.QuoteID, &it.Name, &it.Description, &it.Quantity,
			&it.UnitPrice, &it.DiscountPct, &it.Subtotal, &it.Position); err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByProvider lista cotizaciones de una funeraria, más recientes primero.
func (r *QuoteRepo) ListByProvider(providerID string, limit, offset int) ([]*entity.Quote, error) {
	query := quoteSelect + ` WHERE provider_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, providerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	for rows.Next() {
		var q entity.Quote
		if err := rows.Scan(&q.ID, &q.ProviderID, &q.CaseID, &q.Number, &q.IssuedAt, &q.ValidUntil,
			&q.Status, &q.Subtotal, &q.TaxAmount, &q.Total, &q.Notes,
			&q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la cotización.
func (r *QuoteRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE quotes SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update quote status: %w", err)
	}
	return nil
}

const quoteSelect = `
	SELECT id, provider_id, COALESCE(case_id, ''), number, issued_at, valid_until,
	       status, subtotal, tax_amount, total, COALESCE(notes, ''), created_at, updated_at
	FROM quotes`
