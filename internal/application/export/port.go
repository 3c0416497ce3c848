package export

import (
	"context"

	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
)

// SalesReportGenerator define el puerto de salida para el informe PDF de
// ventas. La aplicación solo conoce este contrato, no el motor concreto.
type SalesReportGenerator interface {
	GenerateSalesReport(ctx context.Context, sales []*entity.Sale) ([]byte, error)
}
