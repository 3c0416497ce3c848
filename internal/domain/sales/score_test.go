package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/sales"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func saleWith(speed int, lines []entity.MobileLine, price float64, status string) entity.Sale {
	s := entity.Sale{
		Status:      status,
		PackPrice:   decimal.NewFromFloat(price),
		MobileLines: lines,
	}
	if speed > 0 {
		s.Fiber = &entity.FiberInfo{SpeedMbps: speed}
	}
	return s
}

func nLines(n, gbEach int) []entity.MobileLine {
	lines := make([]entity.MobileLine, n)
	for i := range lines {
		lines[i] = entity.MobileLine{Number: "600000000", Type: entity.LineTypePostpago, GBData: gbEach}
	}
	return lines
}

// ──────────────────────────────────────────────────────────────────────────────
// Vectores exactos del modelo de puntuación
// ──────────────────────────────────────────────────────────────────────────────

// Fibra 1000 + 3 líneas × 50GB + precio 80 + Registrado = 40+15+15+20+3 = 93.
func TestScore_VectorVentaCompleta(t *testing.T) {
	s := saleWith(1000, nLines(3, 50), 80, entity.StatusRegistrado)
	assert.Equal(t, 93, sales.Score(s))
}

// Sin fibra + 1 línea × 5GB + precio 10 + Registrado = 0+5+0+0+3 = 8.
func TestScore_VectorVentaMinima(t *testing.T) {
	s := saleWith(0, nLines(1, 5), 10, entity.StatusRegistrado)
	assert.Equal(t, 8, sales.Score(s))
}

// Venta vacía en estado Cancelado: −10 recortado a 0.
func TestScore_NuncaNegativo(t *testing.T) {
	s := entity.Sale{Status: entity.StatusCancelado}
	assert.Equal(t, 0, sales.Score(s))
}

// Máximo posible: 40+15+15+20+10 = 100, nunca más de 100.
func TestScore_NuncaMayorQueCien(t *testing.T) {
	s := saleWith(2000, nLines(10, 100), 500, entity.StatusFinalizado)
	assert.Equal(t, 100, sales.Score(s))
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades: rango, monotonía, idempotencia
// ──────────────────────────────────────────────────────────────────────────────

func TestScore_SiempreEnRango(t *testing.T) {
	statuses := append([]string{"estado-desconocido", ""}, entity.SaleStatuses...)
	for _, st := range statuses {
		for _, speed := range []int{0, 99, 100, 299, 300, 599, 600, 999, 1000, 10000} {
			for _, price := range []float64{0, 14.99, 15, 29, 30, 49, 50, 69, 70, 999} {
				s := saleWith(speed, nLines(4, 30), price, st)
				score := sales.Score(s)
				assert.GreaterOrEqual(t, score, 0, "score nunca por debajo de 0")
				assert.LessOrEqual(t, score, 100, "score nunca por encima de 100")
			}
		}
	}
}

// Subir de tramo de fibra nunca baja la puntuación (resto de campos fijos).
func TestScore_MonotonoEnVelocidadFibra(t *testing.T) {
	prev := -1
	for _, speed := range []int{0, 100, 300, 600, 1000} {
		score := sales.Score(saleWith(speed, nLines(2, 40), 40, entity.StatusEnProceso))
		assert.GreaterOrEqual(t, score, prev, "tramo de fibra superior no debe bajar el score")
		prev = score
	}
}

// Subir de tramo de GB totales nunca baja la puntuación.
func TestScore_MonotonoEnGB(t *testing.T) {
	prev := -1
	for _, gb := range []int{0, 20, 50, 100} {
		score := sales.Score(saleWith(600, nLines(1, gb), 40, entity.StatusEnProceso))
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

// Subir de tramo de precio nunca baja la puntuación.
func TestScore_MonotonoEnPrecio(t *testing.T) {
	prev := -1
	for _, price := range []float64{0, 15, 30, 50, 70} {
		score := sales.Score(saleWith(600, nLines(1, 10), price, entity.StatusEnProceso))
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

// Delta entre estados: Finalizado (+10) − Registrado (+3) = 7.
func TestScore_DeltaFinalizadoRegistrado(t *testing.T) {
	base := saleWith(600, nLines(2, 30), 40, entity.StatusRegistrado)
	final := base
	final.Status = entity.StatusFinalizado
	assert.Equal(t, 7, sales.Score(final)-sales.Score(base))
}

// Re-puntuar una venta sin cambios produce el mismo score (idempotente).
func TestScore_Idempotente(t *testing.T) {
	s := saleWith(1000, nLines(3, 50), 80, entity.StatusInstalado)
	first := sales.Score(s)
	s.Score = first
	assert.Equal(t, first, sales.Score(s))
}

// Las líneas con GB ausente cuentan como 0 GB y no fallan.
func TestScore_GBAusenteEsCero(t *testing.T) {
	lines := []entity.MobileLine{
		{Number: "600000001", Type: entity.LineTypePrepago},
		{Number: "600000002", Type: entity.LineTypePostpago, GBData: 19},
	}
	// 2 líneas → 10 pts; 19 GB < 20 → 0 pts; Registrado → 3
	s := saleWith(0, lines, 0, entity.StatusRegistrado)
	assert.Equal(t, 13, sales.Score(s))
}

// El tramo de líneas se satura en 15 puntos a partir de la tercera línea.
func TestScore_LineasSaturanEnQuince(t *testing.T) {
	tres := sales.Score(saleWith(0, nLines(3, 0), 0, entity.StatusRegistrado))
	cinco := sales.Score(saleWith(0, nLines(5, 0), 0, entity.StatusRegistrado))
	assert.Equal(t, tres, cinco, "más de 3 líneas no añade puntos de línea")
}
