package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/funeraria-api/internal/domain"
	"github.com/jhoicas/funeraria-api/internal/domain/entity"
	"github.com/jhoicas/funeraria-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación del puerto ProviderRepository sobre PostgreSQL.
type ProviderRepo struct {
	q Querier
}

// NewProviderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{q: q}
}

// Create persiste una nueva funeraria.
func (r *ProviderRepo) Create(p *entity.Provider) error {
	query := `
		INSERT INTO providers (id, name, rut, address, phone, email, logo_png, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.RUT, p.Address, nullIfEmpty(p.Phone), nullIfEmpty(p.Email),
		p.LogoPNG, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}

// GetByID obtiene una funeraria por ID.
func (r *ProviderRepo) GetByID(id string) (*entity.Provider, error) {
	query := `
		SELECT id, name, rut, COALESCE(address, ''), COALESCE(phone, ''), COALESCE(email, ''),
		       logo_png, status, created_at, updated_at
		FROM providers WHERE id = $1`
	var p entity.Provider
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.RUT, &p.Address, &p.Phone, &p.Email,
		&p.LogoPNG, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider by id: %w", err)
	}
	return &p, nil
}

// List lista funerarias con paginación.
func (r *ProviderRepo) List(limit, offset int) ([]*entity.Provider, error) {
	query := `
		SELECT id, name, rut, COALESCE(address, ''), COALESCE(phone, ''), COALESCE(email, ''),
		       logo_png, status, created_at, updated_at
		FROM providers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Provider
	for rows.Next() {
		var p entity.Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.RUT, &p.Address, &p.Phone, &p.Email,
			&p.LogoPNG, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza el perfil de la funeraria (incluye el logo).
func (r *ProviderRepo) Update(p *entity.Provider) error {
	query := `
		UPDATE providers
		SET name = $2, rut = $3, address = $4, phone = $5, email = $6, logo_png = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.RUT, p.Address, nullIfEmpty(p.Phone), nullIfEmpty(p.Email),
		p.LogoPNG, p.Status, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update provider: %w", err)
	}
	return nil
}
