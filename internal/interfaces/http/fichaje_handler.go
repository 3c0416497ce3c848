package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hipnotik-level/ventas-api/internal/application/dto"
	"github.com/hipnotik-level/ventas-api/internal/application/usecase"
	"github.com/hipnotik-level/ventas-api/internal/domain"
)

// FichajeHandler maneja el control horario. Las vistas de administración son
// de SuperAdmin (se exige en el router).
type FichajeHandler struct {
	uc *usecase.FichajeUseCase
}

// NewFichajeHandler construye el handler.
func NewFichajeHandler(uc *usecase.FichajeUseCase) *FichajeHandler {
	return &FichajeHandler{uc: uc}
}

// Check POST /api/fichajes
func (h *FichajeHandler) Check(c *fiber.Ctx) error {
	var in dto.CreateFichajeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fichaje, err := h.uc.Check(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser Entrada o Salida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fichaje)
}

// List GET /api/fichajes
func (h *FichajeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetUserID(c), GetRole(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// TodaySummary GET /api/fichajes/admin/today
func (h *FichajeHandler) TodaySummary(c *fiber.Ctx) error {
	summary, err := h.uc.TodaySummary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// History GET /api/fichajes/admin/history/:userId?days=30
func (h *FichajeHandler) History(c *fiber.Ctx) error {
	history, err := h.uc.History(c.Params("userId"), c.QueryInt("days", 30))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(history)
}
