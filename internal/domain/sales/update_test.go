package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hipnotik-level/ventas-api/internal/domain"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/sales"
)

func strPtr(s string) *string { return &s }

func baseSale() entity.Sale {
	return entity.Sale{
		ID:        "sale-1",
		ClientID:  "client-1",
		Company:   "Jazztel",
		PackType:  entity.PackTypeFibraMovil,
		PackPrice: decimal.NewFromInt(45),
		Status:    entity.StatusRegistrado,
	}
}

// Parche con campos pero sin estado explícito → el estado pasa a "Modificado".
func TestApply_SinEstadoExplicitoFuerzaModificado(t *testing.T) {
	next, err := sales.Apply(baseSale(), sales.Update{Company: strPtr("MásMóvil")})
	require.NoError(t, err)

	assert.Equal(t, "MásMóvil", next.Company)
	assert.Equal(t, entity.StatusModificado, next.Status)
}

// Parche con estado explícito → se respeta el estado pedido.
func TestApply_EstadoExplicitoSeRespeta(t *testing.T) {
	next, err := sales.Apply(baseSale(), sales.Update{
		Company: strPtr("MásMóvil"),
		Status:  strPtr(entity.StatusInstalado),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInstalado, next.Status)
}

// Parche vacío → no hay cambios y el estado se conserva.
func TestApply_ParcheVacioConservaEstado(t *testing.T) {
	next, err := sales.Apply(baseSale(), sales.Update{})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRegistrado, next.Status)
	assert.Equal(t, "Jazztel", next.Company)
}

// Estado fuera de la enumeración → ErrInvalidStatus.
func TestApply_EstadoInvalidoRechazado(t *testing.T) {
	_, err := sales.Apply(baseSale(), sales.Update{Status: strPtr("Subido a compañía")})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

// Apply no muta la venta original (valor nuevo, no in place).
func TestApply_NoMutaLaVentaActual(t *testing.T) {
	current := baseSale()
	_, err := sales.Apply(current, sales.Update{
		Company: strPtr("Pepephone"),
		Fiber:   &entity.FiberInfo{SpeedMbps: 600},
	})
	require.NoError(t, err)

	assert.Equal(t, "Jazztel", current.Company)
	assert.Nil(t, current.Fiber)
	assert.Equal(t, entity.StatusRegistrado, current.Status)
}

// El parche se aplica sobre el estado persistido y el resultado completo es
// el que se puntúa: fibra nueva + líneas existentes suman juntas.
func TestApply_PuntuaElResultadoFusionado(t *testing.T) {
	current := baseSale()
	current.MobileLines = []entity.MobileLine{{Number: "600000001", Type: entity.LineTypePostpago, GBData: 50}}

	next, err := sales.Apply(current, sales.Update{Fiber: &entity.FiberInfo{SpeedMbps: 1000}})
	require.NoError(t, err)

	// 40 (fibra) + 5 (1 línea) + 10 (50GB) + 10 (precio 45) + 4 (Modificado) = 69
	assert.Equal(t, 69, sales.Score(next))
}

func TestChangeStatus_Valido(t *testing.T) {
	next, err := sales.ChangeStatus(baseSale(), entity.StatusFinalizado)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusFinalizado, next.Status)
}

func TestChangeStatus_InvalidoRechazado(t *testing.T) {
	_, err := sales.ChangeStatus(baseSale(), "Pendiente")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
