package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/hipnotik-level/ventas-api/internal/application/analytics"
	"github.com/hipnotik-level/ventas-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetKPIs devuelve los indicadores del dashboard.
// GET /api/dashboard/kpis
//
// Respuesta: DashboardKPIsDTO (ventas de hoy/ayer/mes/mes pasado, tendencias,
// desglose por operadora y estado, backlog de incidencias y progreso del
// objetivo mensual). Las ventanas temporales se calculan en el servidor.
func (h *DashboardHandler) GetKPIs(c *fiber.Ctx) error {
	kpis, err := h.uc.GetKPIs(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(kpis)
}

// GetRanking devuelve el ranking de empleados por ventas del mes.
// GET /api/dashboard/ranking
func (h *DashboardHandler) GetRanking(c *fiber.Ctx) error {
	ranking, err := h.uc.GetRanking(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(ranking)
}
