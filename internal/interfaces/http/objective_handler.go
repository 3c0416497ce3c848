package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hipnotik-level/ventas-api/internal/application/dto"
	"github.com/hipnotik-level/ventas-api/internal/application/usecase"
	"github.com/hipnotik-level/ventas-api/internal/domain"
)

// ObjectiveHandler maneja objetivos mensuales. La creación es de SuperAdmin
// (se exige en el router).
type ObjectiveHandler struct {
	uc *usecase.ObjectiveUseCase
}

// NewObjectiveHandler construye el handler.
func NewObjectiveHandler(uc *usecase.ObjectiveUseCase) *ObjectiveHandler {
	return &ObjectiveHandler{uc: uc}
}

// Create POST /api/objectives
func (h *ObjectiveHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateObjectiveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	objective, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month (1-12), year y team_target > 0 son requeridos"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un objetivo para ese mes"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(objective)
}

// List GET /api/objectives
func (h *ObjectiveHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Current GET /api/objectives/current
func (h *ObjectiveHandler) Current(c *fiber.Ctx) error {
	objective, err := h.uc.Current(time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay objetivo para el mes actual"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(objective)
}
