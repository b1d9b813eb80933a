package repository

import "github.com/jhoicas/funeraria-api/internal/domain/entity"

// ProviderRepository define el puerto de persistencia para Provider (tenant).
type ProviderRepository interface {
	Create(provider *entity.Provider) error
	GetByID(id string) (*entity.Provider, error)
	List(limit, offset int) ([]*entity.Provider, error)
	Update(provider *entity.Provider) error
}
