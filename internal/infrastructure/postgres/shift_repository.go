package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/funeraria-api/internal/domain/entity"
	"github.com/jhoicas/funeraria-api/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación del puerto ShiftRepository sobre PostgreSQL.
// Las horas se guardan como texto "HH:MM"; el día calendario como DATE.
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository construye el adaptador de persistencia para turnos.
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

// Create persiste un nuevo turno.
func (r *ShiftRepo) Create(s *entity.Shift) error {
	query := `
		INSERT INTO shifts (id, provider_id, staff_id, date, start_time, end_time, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ProviderID, s.StaffID, s.Date, s.StartTime, s.EndTime, nullIfEmpty(s.Notes),
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

// GetByID obtiene un turno por ID.
func (r *ShiftRepo) GetByID(id string) (*entity.Shift, error) {
	query := shiftSelect + ` WHERE id = $1`
	var s entity.Shift
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProviderID, &s.StaffID, &s.Date, &s.StartTime, &s.EndTime, &s.Notes,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift by id: %w", err)
	}
	return &s, nil
}

// ListByStaffAndDate devuelve los turnos de un trabajador en un día calendario,
// ordenados por hora de inicio.
func (r *ShiftRepo) ListByStaffAndDate(staffID string, date time.Time) ([]*entity.Shift, error) {
	query := shiftSelect + ` WHERE staff_id = $1 AND date = $2 ORDER BY start_time`
	return r.scanMany(query, staffID, date)
}

// ListByProviderAndDate devuelve los turnos de toda la funeraria en un día.
func (r *ShiftRepo) ListByProviderAndDate(providerID string, date time.Time) ([]*entity.Shift, error) {
	query := shiftSelect + ` WHERE provider_id = $1 AND date = $2 ORDER BY start_time`
	return r.scanMany(query, providerID, date)
}

// Update actualiza un turno existente.
func (r *ShiftRepo) Update(s *entity.Shift) error {
	query := `
		UPDATE shifts SET staff_id = $2, date = $3, start_time = $4, end_time = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.StaffID, s.Date, s.StartTime, s.EndTime, nullIfEmpty(s.Notes), s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shift: %w", err)
	}
	return nil
}

// Delete elimina un turno por ID.
func (r *ShiftRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	return nil
}

const shiftSelect = `
	SELECT id, provider_id, staff_id, date, start_time, end_time, COALESCE(notes, ''), created_at, updated_at
	FROM shifts`

func (r *ShiftRepo) scanMany(query string, args ...any) ([]*entity.Shift, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shift
	for rows.Next() {
		var s entity.Shift
		if err := rows.Scan(&s.ID, &s.ProviderID, &s.StaffID, &s.Date, &s.StartTime, &s.EndTime,
			&s.Notes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
