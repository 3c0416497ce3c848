package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hipnotik-level/ventas-api/internal/application/dto"
	"github.com/hipnotik-level/ventas-api/internal/application/export"
)

// ExportHandler maneja las descargas administrativas de ventas (SuperAdmin,
// se exige en el router).
type ExportHandler struct {
	uc *export.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// SalesCSV GET /api/export/sales/csv
func (h *ExportHandler) SalesCSV(c *fiber.Ctx) error {
	data, err := h.uc.SalesCSV()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ventas.csv"`)
	return c.Send(data)
}

// SalesPDF GET /api/export/sales/pdf
func (h *ExportHandler) SalesPDF(c *fiber.Ctx) error {
	data, err := h.uc.SalesPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte_ventas.pdf"`)
	return c.Send(data)
}
