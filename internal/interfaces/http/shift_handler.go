package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/funeraria-api/internal/application/dto"
	"github.com/jhoicas/funeraria-api/internal/application/schedule"
	"github.com/jhoicas/funeraria-api/internal/domain"
)

// ShiftHandler maneja los turnos del personal (protegido).
type ShiftHandler struct {
	uc *schedule.SaveShiftUseCase
}

// NewShiftHandler construye el handler.
func NewShiftHandler(uc *schedule.SaveShiftUseCase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

// Save crea o edita un turno. Si el turno se solapa con otro del mismo
// trabajador responde 409 con el detalle del choque.
// POST /api/shifts
func (h *ShiftHandler) Save(c *fiber.Ctx) error {
	providerID := GetProviderID(c)
	if providerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.SaveShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SaveShift(c.Context(), providerID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrShiftOverlap):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SHIFT_OVERLAP", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "trabajador o turno no encontrado"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista los turnos de la funeraria para un día (?date=2006-01-02; hoy por defecto).
// GET /api/shifts
func (h *ShiftHandler) List(c *fiber.Ctx) error {
	providerID := GetProviderID(c)
	if providerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	date := time.Now().Truncate(24 * time.Hour)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe tener formato 2006-01-02"})
		}
		date = parsed
	}
	out, err := h.uc.ListShifts(c.Context(), providerID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete elimina un turno.
// DELETE /api/shifts/:id
func (h *ShiftHandler) Delete(c *fiber.Ctx) error {
	providerID := GetProviderID(c)
	if providerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	err := h.uc.DeleteShift(c.Context(), providerID, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "turno no encontrado"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
