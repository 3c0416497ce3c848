package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hipnotik-level/ventas-api/internal/application/dto"
	"github.com/hipnotik-level/ventas-api/internal/application/usecase"
	"github.com/hipnotik-level/ventas-api/internal/domain"
)

// CalculatorHandler maneja el recomendador y el configurador de packs.
type CalculatorHandler struct {
	uc *usecase.CalculatorUseCase
}

// NewCalculatorHandler construye el handler.
func NewCalculatorHandler(uc *usecase.CalculatorUseCase) *CalculatorHandler {
	return &CalculatorHandler{uc: uc}
}

// Recommend GET /api/calculator/recommendations?pack_type=&origin_company=
func (h *CalculatorHandler) Recommend(c *fiber.Ctx) error {
	var in dto.RecommendRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.Recommend(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pack_type válido es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Configure POST /api/calculator/configure
func (h *CalculatorHandler) Configure(c *fiber.Ctx) error {
	var in dto.ConfigureRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Configure(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pack_type y priority válidos son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
