// Package analytics contiene los casos de uso de lectura del dashboard:
// KPIs de ventas e incidencias, progreso de objetivo y ranking del equipo.
package analytics

import (
	"math"
	"time"

	"github.com/hipnotik-level/ventas-api/internal/application/dto"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

// daysInMonth mes fijo de 30 días para el ritmo esperado y la proyección.
// Es una aproximación deliberada, no un cálculo de calendario.
const daysInMonth = 30

// Windows ventanas temporales del dashboard, derivadas de now truncado a día.
type Windows struct {
	Now            time.Time
	TodayStart     time.Time
	YesterdayStart time.Time
	MonthStart     time.Time
	LastMonthStart time.Time
	// LastMonthSameDay límite superior de la ventana comparable del mes
	// anterior: lastMonthStart + (día actual − 1) días.
	LastMonthSameDay time.Time
}

// NewWindows calcula las ventanas del dashboard a partir de now.
func NewWindows(now time.Time) Windows {
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)
	return Windows{
		Now:              now,
		TodayStart:       todayStart,
		YesterdayStart:   todayStart.AddDate(0, 0, -1),
		MonthStart:       monthStart,
		LastMonthStart:   lastMonthStart,
		LastMonthSameDay: lastMonthStart.AddDate(0, 0, now.Day()-1),
	}
}

// Trend compara estrictamente la ventana actual con la anterior equivalente.
func Trend(current, previous int) string {
	switch {
	case current > previous:
		return "up"
	case current < previous:
		return "down"
	default:
		return "stable"
	}
}

// CompanyBreakdown anota cada operadora con su porcentaje sobre el total,
// redondeado a 1 decimal; 0 para todas si el total es 0.
func CompanyBreakdown(counts []repository.CompanyCount) []dto.CompanyBreakdownDTO {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	out := make([]dto.CompanyBreakdownDTO, 0, len(counts))
	for _, c := range counts {
		var pct float64
		if total > 0 {
			pct = round1(float64(c.Count) / float64(total) * 100)
		}
		out = append(out, dto.CompanyBreakdownDTO{Company: c.Company, Count: c.Count, Percentage: pct})
	}
	return out
}

// StatusBreakdown mapea los recuentos por estado a su DTO.
func StatusBreakdown(counts []repository.StatusCount) []dto.StatusBreakdownDTO {
	out := make([]dto.StatusBreakdownDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.StatusBreakdownDTO{Status: c.Status, Count: c.Count})
	}
	return out
}

// ObjectiveProgress calcula el progreso del objetivo del mes: porcentaje,
// ritmo diario esperado (objetivo/30), semáforo y proyección lineal a fin de
// mes. Devuelve nil si no hay objetivo.
func ObjectiveProgress(objective *entity.Objective, salesMonth int, now time.Time) *dto.ObjectiveProgressDTO {
	if objective == nil {
		return nil
	}
	target := objective.TeamTarget
	currentDay := now.Day()

	expectedDaily := float64(target) / daysInMonth
	expectedNow := expectedDaily * float64(currentDay)

	var progressPct, expectedPct float64
	if target > 0 {
		progressPct = float64(salesMonth) / float64(target) * 100
		expectedPct = expectedNow / float64(target) * 100
	}

	status := "red"
	switch {
	case progressPct >= expectedPct:
		status = "green"
	case progressPct >= expectedPct*0.8:
		status = "yellow"
	}

	var projection *dto.ObjectiveProjectionDTO
	if currentDay > 0 {
		projected := int(math.Round(float64(salesMonth) / float64(currentDay) * daysInMonth))
		projection = &dto.ObjectiveProjectionDTO{
			ProjectedTotal: projected,
			ProjectedGap:   projected - target,
			WillMeet:       projected >= target,
		}
	}

	return &dto.ObjectiveProgressDTO{
		Target:        target,
		Current:       salesMonth,
		ProgressPct:   round1(progressPct),
		ExpectedDaily: round1(expectedDaily),
		Status:        status,
		Projection:    projection,
	}
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
