package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

var kpiNow = time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)

// ──── Ventanas temporales ────────────────────────────────────────────────────

func TestNewWindows_TruncaADia(t *testing.T) {
	w := NewWindows(kpiNow)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), w.TodayStart)
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), w.YesterdayStart)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), w.MonthStart)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), w.LastMonthStart)
	// Mismo tramo del mes anterior: día 1 + (15-1) días.
	assert.Equal(t, time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC), w.LastMonthSameDay)
}

func TestNewWindows_PrimeroDeMes(t *testing.T) {
	w := NewWindows(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, w.MonthStart, w.TodayStart)
	// Ventana comparable vacía: [1 feb, 1 feb).
	assert.Equal(t, w.LastMonthStart, w.LastMonthSameDay)
}

// ──── Tendencias ─────────────────────────────────────────────────────────────

func TestTrend_ComparacionEstricta(t *testing.T) {
	assert.Equal(t, "up", Trend(5, 3))
	assert.Equal(t, "down", Trend(3, 5))
	assert.Equal(t, "stable", Trend(4, 4))
	assert.Equal(t, "stable", Trend(0, 0))
}

// ──── Desglose por operadora ─────────────────────────────────────────────────

func TestCompanyBreakdown_Porcentajes(t *testing.T) {
	counts := []repository.CompanyCount{
		{Company: "Movistar", Count: 6},
		{Company: "Vodafone", Count: 3},
		{Company: "Orange", Count: 1},
	}
	out := CompanyBreakdown(counts)

	require.Len(t, out, 3)
	assert.Equal(t, 60.0, out[0].Percentage)
	assert.Equal(t, 30.0, out[1].Percentage)
	assert.Equal(t, 10.0, out[2].Percentage)

	var sum float64
	for _, c := range out {
		sum += c.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.11)
}

func TestCompanyBreakdown_RedondeoAUnDecimal(t *testing.T) {
	counts := []repository.CompanyCount{
		{Company: "Movistar", Count: 1},
		{Company: "Vodafone", Count: 2},
	}
	out := CompanyBreakdown(counts)

	assert.Equal(t, 33.3, out[0].Percentage)
	assert.Equal(t, 66.7, out[1].Percentage)
}

func TestCompanyBreakdown_TotalCeroDaPorcentajeCero(t *testing.T) {
	counts := []repository.CompanyCount{
		{Company: "Movistar", Count: 0},
		{Company: "Vodafone", Count: 0},
	}
	for _, c := range CompanyBreakdown(counts) {
		assert.Zero(t, c.Percentage)
	}
}

func TestCompanyBreakdown_Vacio(t *testing.T) {
	assert.Empty(t, CompanyBreakdown(nil))
}

// ──── Progreso de objetivo ───────────────────────────────────────────────────

func objetivo(target int) *entity.Objective {
	return &entity.Objective{ID: "obj-1", Month: 6, Year: 2025, TeamTarget: target}
}

func TestObjectiveProgress_SinObjetivoDevuelveNil(t *testing.T) {
	assert.Nil(t, ObjectiveProgress(nil, 10, kpiNow))
}

func TestObjectiveProgress_EnRitmoEsVerde(t *testing.T) {
	// Objetivo 30, día 15: esperado 15. Con 15 ventas vamos al ritmo exacto.
	p := ObjectiveProgress(objetivo(30), 15, kpiNow)

	require.NotNil(t, p)
	assert.Equal(t, 30, p.Target)
	assert.Equal(t, 15, p.Current)
	assert.Equal(t, 50.0, p.ProgressPct)
	assert.Equal(t, 1.0, p.ExpectedDaily)
	assert.Equal(t, "green", p.Status)

	require.NotNil(t, p.Projection)
	assert.Equal(t, 30, p.Projection.ProjectedTotal)
	assert.Equal(t, 0, p.Projection.ProjectedGap)
	assert.True(t, p.Projection.WillMeet)
}

func TestObjectiveProgress_PorDebajoDelRitmoEsAmarillo(t *testing.T) {
	// Esperado al día 15: 50%. Con 13 ventas: 43.3% >= 40% (0.8×50).
	p := ObjectiveProgress(objetivo(30), 13, kpiNow)

	require.NotNil(t, p)
	assert.Equal(t, "yellow", p.Status)
	assert.Equal(t, 43.3, p.ProgressPct)

	require.NotNil(t, p.Projection)
	assert.Equal(t, 26, p.Projection.ProjectedTotal)
	assert.Equal(t, -4, p.Projection.ProjectedGap)
	assert.False(t, p.Projection.WillMeet)
}

func TestObjectiveProgress_MuyPorDebajoEsRojo(t *testing.T) {
	// 10/30 = 33.3% < 40%.
	p := ObjectiveProgress(objetivo(30), 10, kpiNow)

	require.NotNil(t, p)
	assert.Equal(t, "red", p.Status)
}

func TestObjectiveProgress_ObjetivoCeroNoDividePorCero(t *testing.T) {
	p := ObjectiveProgress(objetivo(0), 5, kpiNow)

	require.NotNil(t, p)
	assert.Zero(t, p.ProgressPct)
	assert.Equal(t, "green", p.Status)
}

func TestObjectiveProgress_ProyeccionRedondeada(t *testing.T) {
	// 7 ventas al día 15: 7/15×30 = 14.
	p := ObjectiveProgress(objetivo(40), 7, kpiNow)

	require.NotNil(t, p)
	require.NotNil(t, p.Projection)
	assert.Equal(t, 14, p.Projection.ProjectedTotal)
}
