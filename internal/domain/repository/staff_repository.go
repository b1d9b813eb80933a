package repository

import "github.com/jhoicas/funeraria-api/internal/domain/entity"

// StaffRepository define el puerto de persistencia para el personal de la funeraria.
type StaffRepository interface {
	Create(staff *entity.Staff) error
	GetByID(id string) (*entity.Staff, error)
	ListByProvider(providerID string, limit, offset int) ([]*entity.Staff, error)
	Update(staff *entity.Staff) error
	Delete(id string) error
}
