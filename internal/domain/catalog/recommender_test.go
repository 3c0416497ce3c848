package catalog_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hipnotik-level/ventas-api/internal/domain/catalog"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
)

func pack(id, company string, price float64, observations string) entity.Pack {
	return entity.Pack{
		ID:           id,
		Company:      company,
		Name:         id,
		Type:         entity.PackTypeFibraMovil,
		Price:        decimal.NewFromFloat(price),
		Observations: observations,
		Active:       true,
		CreatedAt:    time.Now().AddDate(0, -6, 0),
	}
}

func TestRecommend_CatalogoVacioDevuelveListaVacia(t *testing.T) {
	recs := catalog.Recommend(nil, "Digi")
	assert.Empty(t, recs, "sin candidatos debe devolver lista vacía, no error")
}

func TestRecommend_AfinidadPorObservaciones(t *testing.T) {
	packs := []entity.Pack{
		pack("normal", "Jazztel", 40, "promoción general"),
		pack("afin", "MásMóvil", 30, "Especial para clientes que vienen de DIGI"),
	}
	recs := catalog.Recommend(packs, "Digi")
	require.Len(t, recs, 2)

	assert.Equal(t, "afin", recs[0].Pack.ID, "el pack con afinidad debe ir primero")
	assert.Equal(t, 10, recs[0].Score)
	assert.Equal(t, 0, recs[1].Score)
}

// Desempate explícito: a igual score gana el pack más caro.
func TestRecommend_EmpateGanaElMasCaro(t *testing.T) {
	packs := []entity.Pack{
		pack("barato", "Jazztel", 25, ""),
		pack("caro", "Jazztel", 60, ""),
		pack("medio", "Jazztel", 40, ""),
	}
	recs := catalog.Recommend(packs, "")
	require.Len(t, recs, 3)

	assert.Equal(t, "caro", recs[0].Pack.ID)
	assert.Equal(t, "medio", recs[1].Pack.ID)
	assert.Equal(t, "barato", recs[2].Pack.ID)
}

func TestRecommend_DevuelveComoMaximoTres(t *testing.T) {
	packs := []entity.Pack{
		pack("p1", "Jazztel", 10, ""),
		pack("p2", "Jazztel", 20, ""),
		pack("p3", "Jazztel", 30, ""),
		pack("p4", "Jazztel", 40, ""),
		pack("p5", "Jazztel", 50, ""),
	}
	recs := catalog.Recommend(packs, "")
	assert.Len(t, recs, 3)
}

func TestRecommend_SinCompaniaOrigenTodoScoreCero(t *testing.T) {
	packs := []entity.Pack{
		pack("p1", "Jazztel", 10, "Especial para Digi"),
	}
	recs := catalog.Recommend(packs, "")
	require.Len(t, recs, 1)
	assert.Equal(t, 0, recs[0].Score, "sin compañía de origen no hay afinidad")
}
