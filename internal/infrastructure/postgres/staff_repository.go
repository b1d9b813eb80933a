package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/funeraria-api/internal/domain/entity"
	"github.com/jhoicas/funeraria-api/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación del puerto StaffRepository sobre PostgreSQL.
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador de persistencia para personal.
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

// Create persiste un nuevo trabajador.
func (r *StaffRepo) Create(s *entity.Staff) error {
	query := `
		INSERT INTO staff (id, provider_id, name, role, email, phone, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ProviderID, s.Name, s.Role, nullIfEmpty(s.Email), nullIfEmpty(s.Phone),
		s.Active, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador por ID.
func (r *StaffRepo) GetByID(id string) (*entity.Staff, error) {
	query := `
		SELECT id, provider_id, name, role, COALESCE(email, ''), COALESCE(phone, ''), active, created_at, updated_at
		FROM staff WHERE id = $1`
	var s entity.Staff
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProviderID, &s.Name, &s.Role, &s.Email, &s.Phone, &s.Active,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff by id: %w", err)
	}
	return &s, nil
}

// ListByProvider lista el personal de una funeraria con paginación.
func (r *StaffRepo) ListByProvider(providerID string, limit, offset int) ([]*entity.Staff, error) {
	query := `
		SELECT id, provider_id, name, role, COALESCE(email, ''), COALESCE(phone, ''), active, created_at, updated_at
		FROM staff WHERE provider_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, providerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()
	var list []*entity.Staff
	for rows.Next() {
		var s entity.Staff
		if err := rows.Scan(&s.ID, &s.ProviderID, &s.Name, &s.Role, &s.Email, &s.Phone,
			&s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un trabajador.
func (r *StaffRepo) Update(s *entity.Staff) error {
	query := `
		UPDATE staff SET name = $2, role = $3, email = $4, phone = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.Role, nullIfEmpty(s.Email), nullIfEmpty(s.Phone), s.Active, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	return nil
}

// Delete elimina un trabajador por ID.
func (r *StaffRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}
