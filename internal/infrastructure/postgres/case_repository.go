package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/funeraria-api/internal/domain/entity"
	"github.com/jhoicas/funeraria-api/internal/domain/repository"
)

var _ repository.CaseRepository = (*CaseRepo)(nil)

// CaseRepo implementación de CaseRepository (usable con pool o tx).
type CaseRepo struct {
	q Querier
}

// NewCaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCaseRepository(q Querier) *CaseRepo {
	return &CaseRepo{q: q}
}

// Create persiste un nuevo caso.
func (r *CaseRepo) Create(c *entity.CaseRecord) error {
	query := `
		INSERT INTO cases (id, provider_id, family_name, contact_name, contact_email, contact_phone, service_type, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ProviderID, c.FamilyName, c.ContactName, nullIfEmpty(c.ContactEmail),
		nullIfEmpty(c.ContactPhone), c.ServiceType, c.Status, nullIfEmpty(c.Notes),
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}

// GetByID obtiene un caso por ID.
func (r *CaseRepo) GetByID(id string) (*entity.CaseRecord, error) {
	query := caseSelect + ` WHERE id = $1`
	var c entity.CaseRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ProviderID, &c.FamilyName, &c.ContactName, &c.ContactEmail, &c.ContactPhone,
		&c.ServiceType, &c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get case by id: %w", err)
	}
	return &c, nil
}

// ListByProvider lista casos de una funeraria, opcionalmente filtrados por estado.
func (r *CaseRepo) ListByProvider(providerID string, status string, limit, offset int) ([]*entity.CaseRecord, error) {
	query := caseSelect + ` WHERE provider_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, providerID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()
	var list []*entity.CaseRecord
	for rows.Next() {
		var c entity.CaseRecord
		if err := rows.Scan(&c.ID, &c.ProviderID, &c.FamilyName, &c.ContactName, &c.ContactEmail,
			&c.ContactPhone, &c.ServiceType, &c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado del caso.
func (r *CaseRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cases SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update case status: %w", err)
	}
	return nil
}

const caseSelect = `
	SELECT id, provider_id, family_name, contact_name, COALESCE(contact_email, ''), COALESCE(contact_phone, ''),
	       service_type, status, COALESCE(notes, ''), created_at, updated_at
	FROM cases`
