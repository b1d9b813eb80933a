package quotes

import (
	"context"
	"fmt"

	"github.com/jhoicas/funeraria-api/internal/domain"
	"github.com/jhoicas/funeraria-api/internal/domain/entity"
	"github.com/jhoicas/funeraria-api/internal/domain/quote"
	"github.com/jhoicas/funeraria-api/internal/domain/repository"
)

// PDFUseCase genera los artefactos descargables de una cotización: el PDF
// paginado y la imagen JPEG continua. Ante cualquier fallo de generación no se
// entrega artefacto parcial: bytes nil y error.
type PDFUseCase struct {
	quoteRepo    repository.QuoteRepository
	providerRepo repository.ProviderRepository
	emitter      PDFEmitter
	rasterizer   Rasterizer
	layoutCfg    quote.Config
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	quoteRepo repository.QuoteRepository,
	providerRepo repository.ProviderRepository,
	emitter PDFEmitter,
	rasterizer Rasterizer,
	layoutCfg quote.Config,
) *PDFUseCase {
	return &PDFUseCase{
		quoteRepo:    quoteRepo,
		providerRepo: providerRepo,
		emitter:      emitter,
		rasterizer:   rasterizer,
		layoutCfg:    layoutCfg,
	}
}

// DownloadQuotePDF carga la cotización, la diagrama en páginas A4 y emite el
// PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)        si todo sale bien.
//   - domain.ErrNotFound               si la cotización no existe.
//   - domain.ErrForbidden              si no pertenece a la funeraria del token.
//   - domain.ErrMissingRequiredField   si el perfil no tiene nombre o dirección.
func (uc *PDFUseCase) DownloadQuotePDF(ctx context.Context, providerID, quoteID string) (pdfBytes []byte, filename string, err error) {
	q, items, p, err := uc.load(providerID, quoteID)
	if err != nil {
		return nil, "", err
	}

	doc, err := quote.Layout(q, items, p, uc.layoutCfg)
	if err != nil {
		return nil, "", fmt.Errorf("cotización pdf: diagramar: %w", err)
	}
	pdfBytes, err = uc.emitter.Emit(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("cotización pdf: generación fallida: %w", err)
	}
	return pdfBytes, doc.Filename, nil
}

// DownloadQuoteImage diagrama la cotización en una sola página continua, la
// emite a PDF y la rasteriza a una imagen JPEG alta (sin paginación).
func (uc *PDFUseCase) DownloadQuoteImage(ctx context.Context, providerID, quoteID string) (jpegBytes []byte, filename string, err error) {
	q, items, p, err := uc.load(providerID, quoteID)
	if err != nil {
		return nil, "", err
	}

	doc, err := quote.LayoutContinuous(q, items, p, uc.layoutCfg)
	if err != nil {
		return nil, "", fmt.Errorf("cotización imagen: diagramar: %w", err)
	}
	pdfBytes, err := uc.emitter.Emit(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("cotización imagen: generación fallida: %w", err)
	}
	jpegBytes, err = uc.rasterizer.Rasterize(ctx, pdfBytes)
	if err != nil {
		return nil, "", fmt.Errorf("cotización imagen: rasterizar: %w", err)
	}
	return jpegBytes, doc.Filename, nil
}

func (uc *PDFUseCase) load(providerID, quoteID string) (*entity.Quote, []*entity.QuoteItem, *entity.Provider, error) {
	quoteRow, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cotización: obtener: %w", err)
	}
	if quoteRow == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	if quoteRow.ProviderID != providerID {
		return nil, nil, nil, domain.ErrForbidden
	}

	itemRows, err := uc.quoteRepo.GetItemsByQuoteID(quoteID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cotización: obtener líneas: %w", err)
	}

	provider, err := uc.providerRepo.GetByID(providerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cotización: obtener funeraria: %w", err)
	}
	if provider == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	return quoteRow, itemRows, provider, nil
}
