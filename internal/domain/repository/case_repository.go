package repository

import "github.com/jhoicas/funeraria-api/internal/domain/entity"

// CaseRepository define el puerto de persistencia para casos (leads).
type CaseRepository interface {
	Create(c *entity.CaseRecord) error
	GetByID(id string) (*entity.CaseRecord, error)
	ListByProvider(providerID string, status string, limit, offset int) ([]*entity.CaseRecord, error)
	UpdateStatus(id, status string) error
}
