package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/funeraria-api/internal/application/dto"
	"github.com/jhoicas/funeraria-api/internal/application/quotes"
	"github.com/jhoicas/funeraria-api/internal/domain"
)

// QuoteHandler maneja las peticiones HTTP de cotizaciones (protegido).
type QuoteHandler struct {
	createUC *quotes.CreateQuoteUseCase
	pdfUC    *quotes.PDFUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(createUC *quotes.CreateQuoteUseCase, pdfUC *quotes.PDFUseCase) *QuoteHandler {
	return &QuoteHandler{createUC: createUC, pdfUC: pdfUC}
}

// Create crea una cotización con sus líneas y marca el caso como cotizado.
// POST /api/quotes
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	providerID := GetProviderID(c)
	if providerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.CreateQuote(c.Context(), providerID, in)
	if err != nil {
		return quoteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una cotización con sus líneas.
// GET /api/quotes/:id
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	providerID := GetProviderID(c)
	if providerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.createUC.GetQuote(c.Context(), providerID, c.Params("id"))
	if err != nil {
		return quoteError(c, err)
	}
	return c.JSON(out)
}

// List lista las cotizaciones de la funeraria.
// GET /api/quotes
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	providerID := GetProviderID(c)
	if providerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.createUC.ListQuotes(c.Context(), providerID, page)
	if err != nil {
		return quoteError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF genera y descarga el PDF paginado de la cotización.
// GET /api/quotes/:id/pdf
func (h *QuoteHandler) DownloadPDF(c *fiber.Ctx) error {
	providerID := GetProviderID(c)
	if providerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	pdfBytes, filename, err := h.pdfUC.DownloadQuotePDF(c.Context(), providerID, c.Params("id"))
	if err != nil {
		return quoteError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// DownloadImage genera y descarga la cotización como imagen JPEG continua.
// GET /api/quotes/:id/image
func (h *QuoteHandler) DownloadImage(c *fiber.Ctx) error {
	providerID := GetProviderID(c)
	if providerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	jpegBytes, filename, err := h.pdfUC.DownloadQuoteImage(c.Context(), providerID, c.Params("id"))
	if err != nil {
		return quoteError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(jpegBytes)
}

// UpdateStatus cambia el estado de la cotización (sent, accepted, rejected).
// PATCH /api/quotes/:id/status
func (h *QuoteHandler) UpdateStatus(c *fiber.Ctx) error {
	providerID := GetProviderID(c)
	if providerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateQuoteStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.createUC.UpdateQuoteStatus(c.Context(), providerID, c.Params("id"), in.Status); err != nil {
		return quoteError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// quoteError traduce errores de dominio a respuestas HTTP.
func quoteError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrMissingRequiredField):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INCOMPLETE_PROFILE", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
