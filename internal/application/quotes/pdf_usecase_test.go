package quotes_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appquotes "github.com/jhoicas/funeraria-api/internal/application/quotes"
	"github.com/jhoicas/funeraria-api/internal/domain"
	"github.com/jhoicas/funeraria-api/internal/domain/entity"
	"github.com/jhoicas/funeraria-api/internal/domain/quote"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeQuoteRepo struct {
	quotes map[string]*entity.Quote
	items  map[string][]*entity.QuoteItem
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{
		quotes: map[string]*entity.Quote{},
		items:  map[string][]*entity.QuoteItem{},
	}
}

func (r *fakeQuoteRepo) Create(q *entity.Quote) error {
	cp := *q
	r.quotes[q.ID] = &cp
	return nil
}

func (r *fakeQuoteRepo) CreateItem(it *entity.QuoteItem) error {
	cp := *it
	r.items[it.QuoteID] = append(r.items[it.QuoteID], &cp)
	return nil
}

func (r *fakeQuoteRepo) GetByID(id string) (*entity.Quote, error) {
	q, ok := r.quotes[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *fakeQuoteRepo) GetItemsByQuoteID(quoteID string) ([]*entity.QuoteItem, error) {
	return r.items[quoteID], nil
}

func (r *fakeQuoteRepo) ListByProvider(providerID string, limit, offset int) ([]*entity.Quote, error) {
	var out []*entity.Quote
	for _, q := range r.quotes {
		if q.ProviderID == providerID {
			cp := *q
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeQuoteRepo) UpdateStatus(id, status string) error {
	if q, ok := r.quotes[id]; ok {
		q.Status = status
	}
	return nil
}

type fakeProviderRepo struct {
	providers map[string]*entity.Provider
}

func (r *fakeProviderRepo) Create(p *entity.Provider) error { r.providers[p.ID] = p; return nil }
func (r *fakeProviderRepo) GetByID(id string) (*entity.Provider, error) {
	return r.providers[id], nil
}
func (r *fakeProviderRepo) List(limit, offset int) ([]*entity.Provider, error) { return nil, nil }
func (r *fakeProviderRepo) Update(p *entity.Provider) error                    { return nil }

// fakeEmitter devuelve bytes fijos y captura el documento emitido.
type fakeEmitter struct {
	lastDoc *quote.Document
	err     error
}

func (e *fakeEmitter) Emit(_ context.Context, doc *quote.Document) ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.lastDoc = doc
	return []byte("%PDF-fake"), nil
}

type fakeRasterizer struct {
	err error
}

func (r *fakeRasterizer) Rasterize(_ context.Context, pdf []byte) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	return []byte{0xFF, 0xD8, 0xFF}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func seedPDFFixture() (*fakeQuoteRepo, *fakeProviderRepo) {
	quoteRepo := newFakeQuoteRepo()
	providerRepo := &fakeProviderRepo{providers: map[string]*entity.Provider{}}

	providerRepo.providers["prov-1"] = &entity.Provider{
		ID:      "prov-1",
		Name:    "Funeraria San José",
		RUT:     "76.543.210-K",
		Address: "Av. Recoleta 1234, Santiago",
		Status:  "active",
	}
	_ = quoteRepo.Create(&entity.Quote{
		ID:         "q-1",
		ProviderID: "prov-1",
		Number:     "Q-2024-001",
		IssuedAt:   time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Status:     entity.QuoteStatusDraft,
		Subtotal:   decimal.NewFromInt(500000),
		TaxAmount:  decimal.NewFromInt(95000),
		Total:      decimal.NewFromInt(595000),
	})
	_ = quoteRepo.CreateItem(&entity.QuoteItem{
		ID: "it-1", QuoteID: "q-1", Name: "Servicio funeral completo",
		Quantity: 1, UnitPrice: decimal.NewFromInt(500000),
		DiscountPct: decimal.Zero, Subtotal: decimal.NewFromInt(500000),
	})
	return quoteRepo, providerRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestDownloadQuotePDF_EmiteConNombreDeArchivo(t *testing.T) {
	quoteRepo, providerRepo := seedPDFFixture()
	emitter := &fakeEmitter{}
	uc := appquotes.NewPDFUseCase(quoteRepo, providerRepo, emitter, &fakeRasterizer{}, quote.DefaultConfig())

	pdfBytes, filename, err := uc.DownloadQuotePDF(context.Background(), "prov-1", "q-1")
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), pdfBytes)
	assert.Equal(t, "Quote-Q-2024-001.pdf", filename)
	require.NotNil(t, emitter.lastDoc, "el emisor debe recibir el documento diagramado")
	assert.Len(t, emitter.lastDoc.Pages, 1, "una cotización corta cabe en una página")
}

func TestDownloadQuoteImage_RasterizaElPDFContinuo(t *testing.T) {
	quoteRepo, providerRepo := seedPDFFixture()
	emitter := &fakeEmitter{}
	uc := appquotes.NewPDFUseCase(quoteRepo, providerRepo, emitter, &fakeRasterizer{}, quote.DefaultConfig())

	jpegBytes, filename, err := uc.DownloadQuoteImage(context.Background(), "prov-1", "q-1")
	require.NoError(t, err)

	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, jpegBytes)
	assert.Equal(t, "Quote-Q-2024-001.jpg", filename)
	require.NotNil(t, emitter.lastDoc)
	assert.Empty(t, emitter.lastDoc.Pages[0].Footer,
		"el modo continuo no lleva pie de página")
}

func TestDownloadQuotePDF_CotizacionInexistente(t *testing.T) {
	quoteRepo, providerRepo := seedPDFFixture()
	uc := appquotes.NewPDFUseCase(quoteRepo, providerRepo, &fakeEmitter{}, &fakeRasterizer{}, quote.DefaultConfig())

	_, _, err := uc.DownloadQuotePDF(context.Background(), "prov-1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadQuotePDF_OtraFuneraria(t *testing.T) {
	quoteRepo, providerRepo := seedPDFFixture()
	providerRepo.providers["prov-2"] = &entity.Provider{
		ID: "prov-2", Name: "Otra Funeraria", Address: "Otra dirección 1",
	}
	uc := appquotes.NewPDFUseCase(quoteRepo, providerRepo, &fakeEmitter{}, &fakeRasterizer{}, quote.DefaultConfig())

	_, _, err := uc.DownloadQuotePDF(context.Background(), "prov-2", "q-1")
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"una funeraria no puede descargar cotizaciones de otra")
}

func TestDownloadQuotePDF_PerfilIncompleto(t *testing.T) {
	quoteRepo, providerRepo := seedPDFFixture()
	providerRepo.providers["prov-1"].Address = "" // perfil sin dirección

	uc := appquotes.NewPDFUseCase(quoteRepo, providerRepo, &fakeEmitter{}, &fakeRasterizer{}, quote.DefaultConfig())

	pdfBytes, _, err := uc.DownloadQuotePDF(context.Background(), "prov-1", "q-1")
	assert.ErrorIs(t, err, domain.ErrMissingRequiredField)
	assert.Nil(t, pdfBytes, "no se entrega artefacto parcial")
}

func TestDownloadQuotePDF_FalloDelEmisor(t *testing.T) {
	quoteRepo, providerRepo := seedPDFFixture()
	emitter := &fakeEmitter{err: errors.New("sin memoria")}
	uc := appquotes.NewPDFUseCase(quoteRepo, providerRepo, emitter, &fakeRasterizer{}, quote.DefaultConfig())

	pdfBytes, _, err := uc.DownloadQuotePDF(context.Background(), "prov-1", "q-1")
	require.Error(t, err)
	assert.Nil(t, pdfBytes)
}

func TestDownloadQuoteImage_FalloDelRasterizador(t *testing.T) {
	quoteRepo, providerRepo := seedPDFFixture()
	uc := appquotes.NewPDFUseCase(quoteRepo, providerRepo, &fakeEmitter{},
		&fakeRasterizer{err: errors.New("mupdf no disponible")}, quote.DefaultConfig())

	jpegBytes, _, err := uc.DownloadQuoteImage(context.Background(), "prov-1", "q-1")
	require.Error(t, err)
	assert.Nil(t, jpegBytes)
}
