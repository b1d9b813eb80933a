package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/funeraria-api/internal/application/dto"
	"github.com/jhoicas/funeraria-api/internal/domain"
	"github.com/jhoicas/funeraria-api/internal/domain/entity"
	"github.com/jhoicas/funeraria-api/internal/domain/repository"
)

// StaffUseCase gestiona el personal de la funeraria.
type StaffUseCase struct {
	staffRepo repository.StaffRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(staffRepo repository.StaffRepository) *StaffUseCase {
	return &StaffUseCase{staffRepo: staffRepo}
}

// CreateStaff registra un trabajador activo.
func (uc *StaffUseCase) CreateStaff(_ context.Context, providerID string, in dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: nombre del trabajador", domain.ErrInvalidInput)
	}
	now := time.Now()
	s := &entity.Staff{
		ID:         uuid.New().String(),
		ProviderID: providerID,
		Name:       in.Name,
		Role:       in.Role,
		Email:      in.Email,
		Phone:      in.Phone,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.staffRepo.Create(s); err != nil {
		return nil, fmt.Errorf("personal: crear: %w", err)
	}
	return toStaffResponse(s), nil
}

// ListStaff lista el personal de la funeraria.
func (uc *StaffUseCase) ListStaff(_ context.Context, providerID string, page dto.PageRequest) ([]*dto.StaffResponse, error) {
	page.DefaultPage()
	list, err := uc.staffRepo.ListByProvider(providerID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("personal: listar: %w", err)
	}
	out := make([]*dto.StaffResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toStaffResponse(s))
	}
	return out, nil
}

// DeleteStaff elimina un trabajador verificando pertenencia.
func (uc *StaffUseCase) DeleteStaff(_ context.Context, providerID, staffID string) error {
	s, err := uc.staffRepo.GetByID(staffID)
	if err != nil {
		return fmt.Errorf("personal: obtener: %w", err)
	}
	if s == nil {
		return domain.ErrNotFound
	}
	if s.ProviderID != providerID {
		return domain.ErrForbidden
	}
	if err := uc.staffRepo.Delete(staffID); err != nil {
		return fmt.Errorf("personal: eliminar: %w", err)
	}
	return nil
}

func toStaffResponse(s *entity.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		ID:         s.ID,
		ProviderID: s.ProviderID,
		Name:       s.Name,
		Role:       s.Role,
		Email:      s.Email,
		Phone:      s.Phone,
		Active:     s.Active,
	}
}
