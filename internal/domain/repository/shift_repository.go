package repository

import (
	"time"

	"github.com/jhoicas/funeraria-api/internal/domain/entity"
)

// ShiftRepository define el puerto de persistencia para turnos.
type ShiftRepository interface {
	Create(shift *entity.Shift) error
	GetByID(id string) (*entity.Shift, error)
	// ListByStaffAndDate devuelve los turnos de un trabajador en un día
	// calendario; es la lectura previa a la verificación de solapamiento.
	ListByStaffAndDate(staffID string, date time.Time) ([]*entity.Shift, error)
	ListByProviderAndDate(providerID string, date time.Time) ([]*entity.Shift, error)
	Update(shift *entity.Shift) error
	Delete(id string) error
}
