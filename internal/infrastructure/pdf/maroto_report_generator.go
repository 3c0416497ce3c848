// Package pdf implementa el informe de ventas descargable en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del informe + Fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Compañía | Tipo | Estado | Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Total de ventas incluidas                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Máximo de filas de la tabla; el resto se resume en el pie.
const maxTableRows = 20

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa export.SalesReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSalesReport genera el informe y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesReport(_ context.Context, sales []*entity.Sale) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ventas", true).
		WithAuthor("HIPNOTIK LEVEL Stand", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	shown := sales
	if len(shown) > maxTableRows {
		shown = shown[:maxTableRows]
	}
	for _, r := range tableSaleRows(shown) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(shown), len(sales)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del informe.
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("Reporte de Ventas - HIPNOTIK LEVEL Stand", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
				Align: align.Center,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ventas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 2, align.Left),
		h("Compañía", 3, align.Left),
		h("Tipo", 3, align.Left),
		h("Estado", 2, align.Left),
		h("Fecha", 2, align.Right),
	)
}

// tableSaleRows: una fila por venta, ID truncado a 8 caracteres.
func tableSaleRows(sales []*entity.Sale) []core.Row {
	result := make([]core.Row, 0, len(sales))
	for _, s := range sales {
		id := s.ID
		if len(id) > 8 {
			id = id[:8]
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(id, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(s.Company, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(s.PackType, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(s.Status, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(s.CreatedAt.Format("2006-01-02"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// footerRow: resumen de filas incluidas.
func footerRow(shown, total int) core.Row {
	summary := fmt.Sprintf("Total de ventas: %d", total)
	if shown < total {
		summary = fmt.Sprintf("Mostrando %d de %d ventas", shown, total)
	}
	return row.New(8).Add(
		col.New(12).Add(text.New(summary, props.Text{
			Size: 8, Color: colorGray, Top: 2, Align: align.Right, Right: 1,
		})),
	)
}
