package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/funeraria-api/internal/application/dto"
	"github.com/jhoicas/funeraria-api/internal/domain"
	"github.com/jhoicas/funeraria-api/internal/domain/entity"
	"github.com/jhoicas/funeraria-api/internal/domain/repository"
	domsched "github.com/jhoicas/funeraria-api/internal/domain/schedule"
)

// OverlapPolicy define qué hacer cuando la lectura de turnos existentes falla
// antes de la verificación de solapamiento.
type OverlapPolicy string

const (
	// OverlapFailOpen reproduce el comportamiento de referencia: una lectura
	// fallida se trata como "sin conflicto" y el guardado continúa. Política
	// riesgosa pero deliberada; se mantiene como valor por defecto.
	OverlapFailOpen OverlapPolicy = "fail_open"
	// OverlapFailClosed bloquea el guardado si la lectura falla.
	OverlapFailClosed OverlapPolicy = "fail_closed"
)

// SaveShiftUseCase guarda turnos verificando solapamiento contra los turnos
// existentes del mismo trabajador y día.
//
// La verificación es consultiva, no atómica: dos guardados concurrentes para
// el mismo trabajador/día pueden pasar ambos la verificación y persistirse
// ambos. Es una carrera conocida y aceptada del diseño original; no hay
// constraint de exclusión en la base.
type SaveShiftUseCase struct {
	shiftRepo repository.ShiftRepository
	staffRepo repository.StaffRepository
	policy    OverlapPolicy
}

// NewSaveShiftUseCase construye el caso de uso. policy vacío = fail-open.
func NewSaveShiftUseCase(shiftRepo repository.ShiftRepository, staffRepo repository.StaffRepository, policy OverlapPolicy) *SaveShiftUseCase {
	if policy == "" {
		policy = OverlapFailOpen
	}
	return &SaveShiftUseCase{shiftRepo: shiftRepo, staffRepo: staffRepo, policy: policy}
}

// SaveShift crea o edita (si in.ID viene con valor) un turno. Retorna
// domain.ErrShiftOverlap si el intervalo choca con otro turno del mismo
// trabajador en el mismo día.
func (uc *SaveShiftUseCase) SaveShift(_ context.Context, providerID string, in dto.SaveShiftRequest) (*dto.ShiftResponse, error) {
	if in.StaffID == "" || in.Date == "" || in.StartTime == "" || in.EndTime == "" {
		return nil, fmt.Errorf("%w: staff_id, date, start_time y end_time son obligatorios", domain.ErrInvalidInput)
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
	}

	staff, err := uc.staffRepo.GetByID(in.StaffID)
	if err != nil {
		return nil, fmt.Errorf("turno: obtener trabajador: %w", err)
	}
	if staff == nil {
		return nil, domain.ErrNotFound
	}
	if staff.ProviderID != providerID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	candidate := &entity.Shift{
		ID:         in.ID,
		ProviderID: providerID,
		StaffID:    in.StaffID,
		Date:       date,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Notes:      in.Notes,
	}

	existing, err := uc.shiftRepo.ListByStaffAndDate(in.StaffID, date)
	if err != nil {
		if uc.policy == OverlapFailClosed {
			return nil, fmt.Errorf("turno: leer turnos existentes: %w", err)
		}
		// fail-open: la lectura fallida se trata como "sin conflicto".
		existing = nil
	}
	if c := domsched.Conflicts(candidate, existing); c != nil {
		return nil, fmt.Errorf("%w: choca con %s–%s", domain.ErrShiftOverlap, c.StartTime, c.EndTime)
	}

	if candidate.ID == "" {
		candidate.ID = uuid.New().String()
		candidate.CreatedAt = now
		candidate.UpdatedAt = now
		if err := uc.shiftRepo.Create(candidate); err != nil {
			return nil, fmt.Errorf("turno: crear: %w", err)
		}
	} else {
		current, err := uc.shiftRepo.GetByID(candidate.ID)
		if err != nil {
			return nil, fmt.Errorf("turno: obtener: %w", err)
		}
		if current == nil {
			return nil, domain.ErrNotFound
		}
		if current.ProviderID != providerID {
			return nil, domain.ErrForbidden
		}
		candidate.CreatedAt = current.CreatedAt
		candidate.UpdatedAt = now
		if err := uc.shiftRepo.Update(candidate); err != nil {
			return nil, fmt.Errorf("turno: actualizar: %w", err)
		}
	}

	return toShiftResponse(candidate, staff.Name), nil
}

// ListShifts lista los turnos de la funeraria para un día.
func (uc *SaveShiftUseCase) ListShifts(_ context.Context, providerID string, date time.Time) ([]*dto.ShiftResponse, error) {
	list, err := uc.shiftRepo.ListByProviderAndDate(providerID, date)
	if err != nil {
		return nil, fmt.Errorf("turno: listar: %w", err)
	}
	out := make([]*dto.ShiftResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toShiftResponse(s, ""))
	}
	return out, nil
}

// DeleteShift elimina un turno verificando pertenencia.
func (uc *SaveShiftUseCase) DeleteShift(_ context.Context, providerID, shiftID string) error {
	s, err := uc.shiftRepo.GetByID(shiftID)
	if err != nil {
		return fmt.Errorf("turno: obtener: %w", err)
	}
	if s == nil {
		return domain.ErrNotFound
	}
	if s.ProviderID != providerID {
		return domain.ErrForbidden
	}
	if err := uc.shiftRepo.Delete(shiftID); err != nil {
		return fmt.Errorf("turno: eliminar: %w", err)
	}
	return nil
}

func toShiftResponse(s *entity.Shift, staffName string) *dto.ShiftResponse {
	return &dto.ShiftResponse{
		ID:         s.ID,
		ProviderID: s.ProviderID,
		StaffID:    s.StaffID,
		StaffName:  staffName,
		Date:       s.Date.Format("2006-01-02"),
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		Notes:      s.Notes,
	}
}
