package quotes

import (
	"context"

	"github.com/jhoicas/funeraria-api/internal/domain/quote"
	"github.com/jhoicas/funeraria-api/internal/domain/repository"
)

// PDFEmitter emite un documento ya diagramado a bytes PDF.
type PDFEmitter interface {
	Emit(ctx context.Context, doc *quote.Document) ([]byte, error)
}

// Rasterizer convierte un PDF de página única en una imagen JPEG sobre fondo
// blanco (export a imagen de la cotización).
type Rasterizer interface {
	Rasterize(ctx context.Context, pdf []byte) ([]byte, error)
}

// QuoteTxRunner ejecuta una función dentro de una transacción con los repos de
// cotizaciones y casos (creación atómica de cabecera + líneas + estado del caso).
type QuoteTxRunner interface {
	RunQuote(ctx context.Context, fn func(
		quoteRepo repository.QuoteRepository,
		caseRepo repository.CaseRepository,
	) error) error
}
