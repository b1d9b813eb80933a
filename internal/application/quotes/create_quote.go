package quotes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/funeraria-api/internal/application/dto"
	"github.com/jhoicas/funeraria-api/internal/domain"
	"github.com/jhoicas/funeraria-api/internal/domain/entity"
	"github.com/jhoicas/funeraria-api/internal/domain/repository"
)

// Config parámetros de negocio de la creación de cotizaciones.
type Config struct {
	TaxPct int64 // IVA aplicado al subtotal (Chile: 19)
}

// CreateQuoteUseCase crea cotizaciones y resuelve sus consultas. Los montos se
// calculan aquí una sola vez y quedan persistidos; el renderizador del
// documento los imprime tal cual, sin recalcular.
type CreateQuoteUseCase struct {
	txRunner  QuoteTxRunner
	quoteRepo repository.QuoteRepository
	caseRepo  repository.CaseRepository
	cfg       Config
}

// NewCreateQuoteUseCase construye el caso de uso.
func NewCreateQuoteUseCase(
	txRunner QuoteTxRunner,
	quoteRepo repository.QuoteRepository,
	caseRepo repository.CaseRepository,
	cfg Config,
) *CreateQuoteUseCase {
	if cfg.TaxPct <= 0 {
		cfg.TaxPct = 19
	}
	return &CreateQuoteUseCase{txRunner: txRunner, quoteRepo: quoteRepo, caseRepo: caseRepo, cfg: cfg}
}

// CreateQuote valida las líneas, calcula subtotales/IVA/total y persiste la
// cotización con sus líneas en una transacción. Si viene asociada a un caso,
// el caso pasa a estado "quoted" en la misma transacción.
func (uc *CreateQuoteUseCase) CreateQuote(ctx context.Context, providerID string, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la cotización requiere al menos una línea", domain.ErrInvalidInput)
	}
	for i, it := range in.Items {
		if strings.TrimSpace(it.Name) == "" {
			return nil, fmt.Errorf("%w: línea %d sin nombre", domain.ErrInvalidInput, i)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: línea %d con cantidad no positiva", domain.ErrInvalidInput, i)
		}
		if it.DiscountPct.IsNegative() || it.DiscountPct.GreaterThan(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("%w: línea %d con descuento fuera de 0–100", domain.ErrInvalidInput, i)
		}
	}

	if in.CaseID != "" {
		c, err := uc.caseRepo.GetByID(in.CaseID)
		if err != nil {
			return nil, fmt.Errorf("cotización: obtener caso: %w", err)
		}
		if c == nil {
			return nil, domain.ErrNotFound
		}
		if c.ProviderID != providerID {
			return nil, domain.ErrForbidden
		}
	}

	now := time.Now()
	hundred := decimal.NewFromInt(100)
	subtotal := decimal.Zero
	items := make([]*entity.QuoteItem, 0, len(in.Items))
	for i, it := range in.Items {
		lineSubtotal := it.UnitPrice.
			Mul(decimal.NewFromInt(int64(it.Quantity))).
			Mul(hundred.Sub(it.DiscountPct)).
			Div(hundred).
			Round(0)
		items = append(items, &entity.QuoteItem{
			ID:          uuid.New().String(),
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			DiscountPct: it.DiscountPct,
			Subtotal:    lineSubtotal,
			Position:    i,
		})
		subtotal = subtotal.Add(lineSubtotal)
	}
	tax := subtotal.Mul(decimal.NewFromInt(uc.cfg.TaxPct)).Div(hundred).Round(0)

	var validUntil *time.Time
	if in.ValidDays > 0 {
		v := now.AddDate(0, 0, in.ValidDays)
		validUntil = &v
	}

	q := &entity.Quote{
		ID:         uuid.New().String(),
		ProviderID: providerID,
		CaseID:     in.CaseID,
		Number:     quoteNumber(in.Number, now),
		IssuedAt:   now,
		ValidUntil: validUntil,
		Status:     entity.QuoteStatusDraft,
		Subtotal:   subtotal,
		TaxAmount:  tax,
		Total:      subtotal.Add(tax),
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, it := range items {
		it.QuoteID = q.ID
	}

	err := uc.txRunner.RunQuote(ctx, func(quoteRepo repository.QuoteRepository, caseRepo repository.CaseRepository) error {
		if err := quoteRepo.Create(q); err != nil {
			return err
		}
		for _, it := range items {
			if err := quoteRepo.CreateItem(it); err != nil {
				return err
			}
		}
		if q.CaseID != "" {
			return caseRepo.UpdateStatus(q.CaseID, entity.CaseStatusQuoted)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cotización: persistir: %w", err)
	}

	return toQuoteResponse(q, items), nil
}

// GetQuote obtiene una cotización con sus líneas, verificando pertenencia.
func (uc *CreateQuoteUseCase) GetQuote(_ context.Context, providerID, quoteID string) (*dto.QuoteResponse, error) {
	q, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, fmt.Errorf("cotización: obtener: %w", err)
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if q.ProviderID != providerID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.quoteRepo.GetItemsByQuoteID(quoteID)
	if err != nil {
		return nil, fmt.Errorf("cotización: obtener líneas: %w", err)
	}
	return toQuoteResponse(q, items), nil
}

// ListQuotes lista las cotizaciones de la funeraria (sin líneas).
func (uc *CreateQuoteUseCase) ListQuotes(_ context.Context, providerID string, page dto.PageRequest) ([]*dto.QuoteResponse, error) {
	page.DefaultPage()
	list, err := uc.quoteRepo.ListByProvider(providerID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("cotización: listar: %w", err)
	}
	out := make([]*dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		out = append(out, toQuoteResponse(q, nil))
	}
	return out, nil
}

// UpdateQuoteStatus cambia el estado de la cotización (sent, accepted,
// rejected), verificando pertenencia.
func (uc *CreateQuoteUseCase) UpdateQuoteStatus(_ context.Context, providerID, quoteID, status string) error {
	switch status {
	case entity.QuoteStatusDraft, entity.QuoteStatusSent, entity.QuoteStatusAccepted, entity.QuoteStatusRejected:
	default:
		return fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	q, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return fmt.Errorf("cotización: obtener: %w", err)
	}
	if q == nil {
		return domain.ErrNotFound
	}
	if q.ProviderID != providerID {
		return domain.ErrForbidden
	}
	if err := uc.quoteRepo.UpdateStatus(quoteID, status); err != nil {
		return fmt.Errorf("cotización: actualizar estado: %w", err)
	}
	return nil
}

// quoteNumber devuelve el número de despliegue: el indicado por el cliente o
// uno generado ("COT-20240510-3F2A9C1B").
func quoteNumber(requested string, now time.Time) string {
	if requested != "" {
		return requested
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return "COT-" + now.Format("20060102") + "-" + suffix
}

func toQuoteResponse(q *entity.Quote, items []*entity.QuoteItem) *dto.QuoteResponse {
	resp := &dto.QuoteResponse{
		ID:         q.ID,
		ProviderID: q.ProviderID,
		CaseID:     q.CaseID,
		Number:     q.Number,
		IssuedAt:   q.IssuedAt.Format(time.RFC3339),
		Status:     q.Status,
		Subtotal:   q.Subtotal,
		TaxAmount:  q.TaxAmount,
		Total:      q.Total,
		Notes:      q.Notes,
	}
	if q.ValidUntil != nil {
		resp.ValidUntil = q.ValidUntil.Format(time.RFC3339)
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.QuoteItemResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			DiscountPct: it.DiscountPct,
			Subtotal:    it.Subtotal,
		})
	}
	return resp
}
