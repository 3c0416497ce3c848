package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fichajeDay = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return fichajeDay.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func event(tipo string, hour, minute int) *entity.Fichaje {
	return &entity.Fichaje{Type: tipo, Timestamp: at(hour, minute)}
}

// ──────────────────────────────────────────────────────────────────────────────
// workedHours — horas de hoy con intervalo abierto
// ──────────────────────────────────────────────────────────────────────────────

func TestWorkedHours_ParCompleto(t *testing.T) {
	events := []*entity.Fichaje{
		event(entity.FichajeEntrada, 9, 0),
		event(entity.FichajeSalida, 13, 30),
	}
	assert.InDelta(t, 4.5, workedHours(events, at(15, 0), false), 0.001)
}

func TestWorkedHours_DosTurnos(t *testing.T) {
	events := []*entity.Fichaje{
		event(entity.FichajeEntrada, 9, 0),
		event(entity.FichajeSalida, 13, 0),
		event(entity.FichajeEntrada, 16, 0),
		event(entity.FichajeSalida, 20, 0),
	}
	assert.InDelta(t, 8, workedHours(events, at(21, 0), false), 0.001)
}

func TestWorkedHours_IntervaloAbiertoCuentaHastaAhora(t *testing.T) {
	events := []*entity.Fichaje{
		event(entity.FichajeEntrada, 9, 0),
		event(entity.FichajeSalida, 13, 0),
		event(entity.FichajeEntrada, 16, 0),
	}
	// Sigue fichado: el turno abierto suma hasta now (17:00).
	assert.InDelta(t, 5, workedHours(events, at(17, 0), true), 0.001)
}

func TestWorkedHours_EntradaSinSalidaNoCuentaSiNoFichado(t *testing.T) {
	events := []*entity.Fichaje{
		event(entity.FichajeEntrada, 9, 0),
	}
	assert.InDelta(t, 0, workedHours(events, at(17, 0), false), 0.001)
}

func TestWorkedHours_SinEventos(t *testing.T) {
	assert.InDelta(t, 0, workedHours(nil, at(17, 0), true), 0.001)
}

// ──────────────────────────────────────────────────────────────────────────────
// pairedHoursHHMM — historial diario con precisión de minuto
// ──────────────────────────────────────────────────────────────────────────────

func TestPairedHoursHHMM_ParesCompletos(t *testing.T) {
	hours := pairedHoursHHMM(
		[]string{"09:00", "16:00"},
		[]string{"13:15", "20:00"},
	)
	assert.InDelta(t, 8.25, hours, 0.001)
}

func TestPairedHoursHHMM_EntradaSobranteSeIgnora(t *testing.T) {
	hours := pairedHoursHHMM(
		[]string{"09:00", "16:00"},
		[]string{"13:00"},
	)
	assert.InDelta(t, 4, hours, 0.001)
}

func TestPairedHoursHHMM_Vacio(t *testing.T) {
	assert.InDelta(t, 0, pairedHoursHHMM(nil, nil), 0.001)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.33, round2(4.3333))
	assert.Equal(t, 4.34, round2(4.336))
}
