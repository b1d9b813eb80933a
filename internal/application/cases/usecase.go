package cases

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

// CaseUseCase gestiona los casos (leads): ingreso público de una familia y
// seguimiento de estado por parte de la funeraria.
type CaseUseCase struct {
	caseRepo     repository.CaseRepository
	providerRepo repository.ProviderRepository
}

// NewCaseUseCase construye el caso de uso.
func NewCaseUseCase(caseRepo repository.CaseRepository, providerRepo repository.ProviderRepository) *CaseUseCase {
	return &CaseUseCase{caseRepo: caseRepo, providerRepo: providerRepo}
}

// CreateCase registra la solicitud de una familia hacia una funeraria
// existente. Entra en estado "new".
func (uc *CaseUseCase) CreateCase(_ context.Context, in dto.CreateCaseRequest) (*dto.CaseResponse, error) {
	if in.ProviderID == "" || strings.TrimSpace(in.FamilyName) == "" || strings.TrimSpace(in.ContactName) == "" {
		return nil, fmt.Errorf("%w: provider_id, family_name y contact_name son obligatorios", domain.ErrInvalidInput)
	}
	p, err := uc.providerRepo.GetByID(in.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("caso: obtener funeraria: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	c := &entity.CaseRecord{
		ID:           uuid.New().String(),
		ProviderID:   in.ProviderID,
		FamilyName:   in.FamilyName,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		ServiceType:  in.ServiceType,
		Status:       entity.CaseStatusNew,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.caseRepo.Create(c); err != nil {
		return nil, fmt.Errorf("caso: crear: %w", err)
	}
	return toCaseResponse(c), nil
}

// ListCases lista los casos de la funeraria, opcionalmente filtrados por estado.
func (uc *CaseUseCase) ListCases(_ context.Context, providerID, status string, page dto.PageRequest) ([]*dto.CaseResponse, error) {
	page.DefaultPage()
	list, err := uc.caseRepo.ListByProvider(providerID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("caso: listar: %w", err)
	}
	out := make([]*dto.CaseResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCaseResponse(c))
	}
	return out, nil
}

// UpdateCaseStatus cambia el estado de un caso, verificando pertenencia y que
// el estado destino sea válido.
func (uc *CaseUseCase) UpdateCaseStatus(_ context.Context, providerID, caseID, status string) error {
	switch status {
	case entity.CaseStatusNew, entity.CaseStatusContacted, entity.CaseStatusQuoted, entity.CaseStatusClosed:
	default:
		return fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	c, err := uc.caseRepo.GetByID(caseID)
	if err != nil {
		return fmt.Errorf("caso: obtener: %w", err)
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if c.ProviderID != providerID {
		return domain.ErrForbidden
	}
	if err := uc.caseRepo.UpdateStatus(caseID, status); err != nil {
		return fmt.Errorf("caso: actualizar estado: %w", err)
	}
	return nil
}

func toCaseResponse(c *entity.CaseRecord) *dto.CaseResponse {
	return &dto.CaseResponse{
		ID:           c.ID,
		ProviderID:   c.ProviderID,
		FamilyName:   c.FamilyName,
		ContactName:  c.ContactName,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		ServiceType:  c.ServiceType,
		Status:       c.Status,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}
