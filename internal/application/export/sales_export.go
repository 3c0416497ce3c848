// Package export genera las descargas administrativas de ventas: CSV plano
// y un informe PDF.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

const (
	csvMaxRows = 10000
	pdfMaxRows = 100
)

// ExportUseCase exportaciones de ventas (solo SuperAdmin, se exige en HTTP).
type ExportUseCase struct {
	sales  repository.SaleRepository
	pdfGen SalesReportGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(sales repository.SaleRepository, pdfGen SalesReportGenerator) *ExportUseCase {
	return &ExportUseCase{sales: sales, pdfGen: pdfGen}
}

// SalesCSV vuelca todas las ventas a CSV con las columnas del informe
// clásico: id, client_id, company, pack_type, status, created_at.
func (uc *ExportUseCase) SalesCSV() ([]byte, error) {
	sales, err := uc.sales.List(repository.SaleFilter{}, csvMaxRows, 0)
	if err != nil {
		return nil, fmt.Errorf("export csv: listar ventas: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "client_id", "company", "pack_type", "status", "created_at"}); err != nil {
		return nil, fmt.Errorf("export csv: cabecera: %w", err)
	}
	for _, s := range sales {
		record := []string{
			s.ID,
			s.ClientID,
			s.Company,
			s.PackType,
			s.Status,
			s.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export csv: fila %s: %w", s.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return buf.Bytes(), nil
}

// SalesPDF genera el informe PDF con las ventas más recientes.
func (uc *ExportUseCase) SalesPDF(ctx context.Context) ([]byte, error) {
	sales, err := uc.sales.List(repository.SaleFilter{}, pdfMaxRows, 0)
	if err != nil {
		return nil, fmt.Errorf("export pdf: listar ventas: %w", err)
	}
	return uc.pdfGen.GenerateSalesReport(ctx, sales)
}
