// Package sales contiene la lógica de dominio de las ventas: el cálculo de la
// puntuación de calidad y la regla de actualización tipada de una venta.
package sales

import (
	"github.com/shopspring/decimal"

	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
)

// Puntos por estado. Un estado desconocido aporta 0.
var statusScores = map[string]int{
	entity.StatusFinalizado: 10,
	entity.StatusInstalado:  8,
	entity.StatusEnProceso:  5,
	entity.StatusModificado: 4,
	entity.StatusRegistrado: 3,
	entity.StatusIncidencia: -5,
	entity.StatusCancelado:  -10,
}

// Score calcula la puntuación de calidad de una venta en [0,100].
//
// Función pura y total: los campos opcionales ausentes cuentan como cero y
// nunca produce error. Suma de cuatro bloques y recorte final a [0,100]:
//   - velocidad de fibra (0-40), tramo más alto que aplique
//   - líneas móviles (0-30): min(nº líneas × 5, 15) + tramo por GB totales
//   - precio del pack (0-20)
//   - estado (−10..+10) según tabla
func Score(s entity.Sale) int {
	score := 0

	// Fibra (0-40): solo cuenta el tramo más alto
	var fiberSpeed int
	if s.Fiber != nil {
		fiberSpeed = s.Fiber.SpeedMbps
	}
	switch {
	case fiberSpeed >= 1000:
		score += 40
	case fiberSpeed >= 600:
		score += 30
	case fiberSpeed >= 300:
		score += 20
	case fiberSpeed >= 100:
		score += 10
	}

	// Líneas móviles (0-30): dos subcomponentes independientes
	linePoints := len(s.MobileLines) * 5
	if linePoints > 15 {
		linePoints = 15
	}
	score += linePoints

	totalGB := 0
	for _, line := range s.MobileLines {
		totalGB += line.GBData
	}
	switch {
	case totalGB >= 100:
		score += 15
	case totalGB >= 50:
		score += 10
	case totalGB >= 20:
		score += 5
	}

	// Precio del pack (0-20)
	price := s.PackPrice
	switch {
	case price.GreaterThanOrEqual(decimal.NewFromInt(70)):
		score += 20
	case price.GreaterThanOrEqual(decimal.NewFromInt(50)):
		score += 15
	case price.GreaterThanOrEqual(decimal.NewFromInt(30)):
		score += 10
	case price.GreaterThanOrEqual(decimal.NewFromInt(15)):
		score += 5
	}

	// Estado (−10..+10)
	score += statusScores[s.Status]

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
