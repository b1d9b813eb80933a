package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/funeraria-api/internal/application/dto"
	"github.com/jhoicas/funeraria-api/internal/domain"
	"github.com/jhoicas/funeraria-api/internal/domain/repository"
)

// ProviderUseCase gestiona el perfil de la funeraria (identidad que encabeza
// la cotización: nombre, dirección, contacto, logo).
type ProviderUseCase struct {
	providerRepo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(providerRepo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{providerRepo: providerRepo}
}

// GetProvider devuelve el perfil de la funeraria del token.
func (uc *ProviderUseCase) GetProvider(_ context.Context, providerID string) (*dto.ProviderResponse, error) {
	p, err := uc.providerRepo.GetByID(providerID)
	if err != nil {
		return nil, fmt.Errorf("funeraria: obtener: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ProviderResponse{
		ID:      p.ID,
		Name:    p.Name,
		RUT:     p.RUT,
		Address: p.Address,
		Phone:   p.Phone,
		Email:   p.Email,
		HasLogo: len(p.LogoPNG) > 0,
		Status:  p.Status,
	}, nil
}

// UpdateProvider actualiza el perfil. Nombre y dirección son obligatorios
// porque encabezan toda cotización emitida. Un logo en base64 reemplaza al
// actual; vacío lo conserva.
func (uc *ProviderUseCase) UpdateProvider(ctx context.Context, providerID string, in dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return nil, fmt.Errorf("%w: nombre y dirección son obligatorios", domain.ErrMissingRequiredField)
	}

	p, err := uc.providerRepo.GetByID(providerID)
	if err != nil {
		return nil, fmt.Errorf("funeraria: obtener: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	p.Name = in.Name
	p.RUT = in.RUT
	p.Address = in.Address
	p.Phone = in.Phone
	p.Email = in.Email
	if in.LogoB64 != "" {
		logo, err := base64.StdEncoding.DecodeString(in.LogoB64)
		if err != nil {
			return nil, fmt.Errorf("%w: logo_png no es base64 válido", domain.ErrInvalidInput)
		}
		p.LogoPNG = logo
	}
	p.UpdatedAt = time.Now()

	if err := uc.providerRepo.Update(p); err != nil {
		return nil, fmt.Errorf("funeraria: actualizar: %w", err)
	}
	return uc.GetProvider(ctx, providerID)
}
