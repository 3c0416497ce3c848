package catalog_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hipnotik-level/ventas-api/internal/domain/catalog"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// bundlePack pack de bundle con edad de 6 meses (no "Nueva").
func bundlePack(id string, price float64, gb, speed int) entity.Pack {
	return entity.Pack{
		ID:             id,
		Company:        "MásMóvil",
		Name:           id,
		Type:           entity.PackTypeFibraMovil,
		Price:          decimal.NewFromFloat(price),
		Active:         true,
		CreatedAt:      testNow.AddDate(0, -6, 0),
		MobileGB:       gb,
		FiberSpeedMbps: speed,
	}
}

func balancedReq() catalog.Requirement {
	return catalog.Requirement{
		PackType:            entity.PackTypeFibraMovil,
		Priority:            catalog.PriorityEquilibrado,
		RespectRestrictions: true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros duros
// ──────────────────────────────────────────────────────────────────────────────

func TestConfigure_CatalogoVacioDevuelveListaVacia(t *testing.T) {
	result := catalog.Configure(nil, balancedReq(), testNow)
	assert.Empty(t, result, "catálogo vacío devuelve lista vacía, no error")
}

// Un pack "solo clientes de Digi" queda excluido para quien viene de Movistar,
// pero no para quien viene de Digi.
func TestConfigure_RestriccionSoloExcluyePorOrigen(t *testing.T) {
	restricted := bundlePack("restringido", 38, 40, 300)
	restricted.Restrictions = "Solo clientes que vienen de Digi"

	req := balancedReq()
	req.OriginCompany = "Movistar"
	result := catalog.Configure([]entity.Pack{restricted}, req, testNow)
	assert.Empty(t, result, "pack con restricción 'solo' a otra compañía debe excluirse")

	req.OriginCompany = "Digi"
	result = catalog.Configure([]entity.Pack{restricted}, req, testNow)
	assert.Len(t, result, 1, "la compañía mencionada en la restricción sí pasa el filtro")
}

// Con respect_restrictions desactivado la restricción se ignora.
func TestConfigure_RestriccionIgnoradaSiNoSeRespeta(t *testing.T) {
	restricted := bundlePack("restringido", 38, 40, 300)
	restricted.Restrictions = "Solo clientes que vienen de Digi"

	req := balancedReq()
	req.OriginCompany = "Movistar"
	req.RespectRestrictions = false

	result := catalog.Configure([]entity.Pack{restricted}, req, testNow)
	assert.Len(t, result, 1)
}

func TestConfigure_TVRequeridaExcluyeSinTV(t *testing.T) {
	sinTV := bundlePack("sin-tv", 40, 50, 600)
	conTV := bundlePack("con-tv", 55, 50, 600)
	conTV.TVSupported = true
	conTV.TVPackageType = "sports"

	req := balancedReq()
	req.TVRequired = true

	result := catalog.Configure([]entity.Pack{sinTV, conTV}, req, testNow)
	require.Len(t, result, 1)
	assert.Equal(t, "con-tv", result[0].Pack.ID)
	assert.Contains(t, result[0].FitDetails, "TV: sports")
}

// ──────────────────────────────────────────────────────────────────────────────
// Puntuación blanda
// ──────────────────────────────────────────────────────────────────────────────

// Pack con menos GB de los pedidos: penalización plana de −10 con cualquier
// prioridad (no se multiplica por el peso).
func TestConfigure_GBInsuficientesPenalizacionPlana(t *testing.T) {
	short := bundlePack("corto", 40, 20, 0)

	req := balancedReq()
	req.MobileGB = 50

	for _, priority := range []string{
		catalog.PriorityAhorrar, catalog.PriorityEquilibrado, catalog.PriorityMaximaCalidad,
	} {
		req.Priority = priority
		withGB := catalog.Configure([]entity.Pack{short}, req, testNow)
		require.Len(t, withGB, 1)

		reqNoGB := req
		reqNoGB.MobileGB = 0
		without := catalog.Configure([]entity.Pack{short}, reqNoGB, testNow)
		require.Len(t, without, 1)

		assert.InDelta(t, -10, withGB[0].Score-without[0].Score, 0.001,
			"la penalización por GB insuficientes debe ser plana con prioridad %s", priority)
	}
}

// Con prioridad Ahorrar el precio pesa ×3: el pack barato supera al de más GB.
func TestConfigure_PrioridadAhorrarFavoreceBarato(t *testing.T) {
	cheap := bundlePack("barato", 25, 50, 300)
	premium := bundlePack("premium", 80, 120, 1000)

	req := balancedReq()
	req.Priority = catalog.PriorityAhorrar
	req.MobileGB = 40
	req.FiberSpeedMbps = 300

	result := catalog.Configure([]entity.Pack{premium, cheap}, req, testNow)
	require.Len(t, result, 2)
	assert.Equal(t, "barato", result[0].Pack.ID)
}

// Con Máxima calidad el encaje pesa ×3: el premium que cumple lo pedido
// adelanta al barato que se queda corto.
func TestConfigure_PrioridadCalidadFavorecePremium(t *testing.T) {
	cheap := bundlePack("barato", 25, 45, 300)
	premium := bundlePack("premium", 80, 120, 1000)

	req := balancedReq()
	req.Priority = catalog.PriorityMaximaCalidad
	req.MobileGB = 100
	req.FiberSpeedMbps = 1000

	result := catalog.Configure([]entity.Pack{cheap, premium}, req, testNow)
	require.Len(t, result, 2)
	assert.Equal(t, "premium", result[0].Pack.ID)
}

// La fórmula de precio no se recorta: un pack de más de 100 € resta puntos.
func TestConfigure_PrecioMayorQueCienPuntuaNegativo(t *testing.T) {
	expensive := bundlePack("carisimo", 150, 0, 0)

	req := balancedReq()
	result := catalog.Configure([]entity.Pack{expensive}, req, testNow)
	require.Len(t, result, 1)
	// ((100-150)/100*20)*2 = -20
	assert.InDelta(t, -20, result[0].Score, 0.001)
}

func TestConfigure_BonoNovedadYLineasAdicionales(t *testing.T) {
	fresh := bundlePack("nuevo", 40, 50, 600)
	fresh.CreatedAt = testNow.AddDate(0, 0, -10)
	fresh.AdditionalLinesSupported = true

	req := balancedReq()
	req.AdditionalLines = 2

	result := catalog.Configure([]entity.Pack{fresh}, req, testNow)
	require.Len(t, result, 1)

	assert.True(t, result[0].IsNew)
	assert.Contains(t, result[0].Badges, catalog.BadgeNew)
	assert.Contains(t, result[0].FitDetails, "Líneas adicionales soportadas")
	// precio 40 → 12*2=24; +10 líneas; +5 novedad = 39
	assert.InDelta(t, 39, result[0].Score, 0.001)
}

func TestConfigure_AfinidadOrigenEnObservaciones(t *testing.T) {
	afin := bundlePack("afin", 40, 0, 0)
	afin.Observations = "Portabilidad especial para DIGI"

	req := balancedReq()
	req.OriginCompany = "digi"

	result := catalog.Configure([]entity.Pack{afin}, req, testNow)
	require.Len(t, result, 1)
	assert.Contains(t, result[0].FitDetails, "Especial para digi")
	// precio 40 → 24; +10 afinidad = 34
	assert.InDelta(t, 34, result[0].Score, 0.001)
}

// ──────────────────────────────────────────────────────────────────────────────
// Insignias
// ──────────────────────────────────────────────────────────────────────────────

func TestConfigure_InsigniaMejorValorSiempreAlPrimero(t *testing.T) {
	packs := []entity.Pack{
		bundlePack("a", 30, 40, 300),
		bundlePack("b", 50, 80, 600),
		bundlePack("c", 70, 120, 1000),
	}
	result := catalog.Configure(packs, balancedReq(), testNow)
	require.Len(t, result, 3)
	assert.Contains(t, result[0].Badges, catalog.BadgeBestValue)
}

func TestConfigure_InsigniaMasBaratoAlDeMenorPrecio(t *testing.T) {
	packs := []entity.Pack{
		bundlePack("caro", 70, 120, 1000),
		bundlePack("medio", 50, 80, 600),
		bundlePack("barato", 30, 40, 300),
	}
	result := catalog.Configure(packs, balancedReq(), testNow)
	require.Len(t, result, 3)

	var cheapest *catalog.ScoredPack
	for i := range result {
		if result[i].Pack.ID == "barato" {
			cheapest = &result[i]
		}
	}
	require.NotNil(t, cheapest)
	assert.Contains(t, cheapest.Badges, catalog.BadgeCheapest)
}

// "Más completo" nunca se asigna al puesto 0, aunque sea el de más
// características (comportamiento observado que debe conservarse).
func TestConfigure_MasCompletoNuncaAlPrimero(t *testing.T) {
	loaded := bundlePack("completo", 20, 120, 1000)
	loaded.TVSupported = true
	loaded.AdditionalLinesSupported = true
	simpleA := bundlePack("simple-a", 60, 10, 100)
	simpleB := bundlePack("simple-b", 80, 10, 100)

	// Con prioridad Ahorrar el pack barato y completo queda primero
	req := balancedReq()
	req.Priority = catalog.PriorityAhorrar

	result := catalog.Configure([]entity.Pack{loaded, simpleA, simpleB}, req, testNow)
	require.Len(t, result, 3)
	require.Equal(t, "completo", result[0].Pack.ID)

	for _, sp := range result {
		if sp.Pack.ID == "completo" {
			assert.NotContains(t, sp.Badges, catalog.BadgeMostComplete,
				"el puesto 0 nunca recibe 'Más completo'")
		}
	}
}

// Cuando el de más características queda en un puesto distinto de 0, sí la recibe.
func TestConfigure_MasCompletoEnPuestoDistintoDeCero(t *testing.T) {
	loaded := bundlePack("completo", 90, 120, 1000)
	loaded.TVSupported = true
	loaded.AdditionalLinesSupported = true
	cheapA := bundlePack("barato-a", 20, 10, 100)
	cheapB := bundlePack("barato-b", 25, 10, 100)

	req := balancedReq()
	req.Priority = catalog.PriorityAhorrar

	result := catalog.Configure([]entity.Pack{loaded, cheapA, cheapB}, req, testNow)
	require.Len(t, result, 3)
	require.NotEqual(t, "completo", result[0].Pack.ID)

	found := false
	for _, sp := range result {
		if sp.Pack.ID == "completo" {
			found = true
			assert.Contains(t, sp.Badges, catalog.BadgeMostComplete)
		}
	}
	require.True(t, found)
}

// Con menos de 3 candidatos no se asigna "Más completo" (guardas del origen).
func TestConfigure_MasCompletoRequiereTresCandidatos(t *testing.T) {
	loaded := bundlePack("completo", 90, 120, 1000)
	loaded.TVSupported = true
	cheap := bundlePack("barato", 20, 10, 100)

	req := balancedReq()
	req.Priority = catalog.PriorityAhorrar

	result := catalog.Configure([]entity.Pack{loaded, cheap}, req, testNow)
	require.Len(t, result, 2)
	for _, sp := range result {
		assert.NotContains(t, sp.Badges, catalog.BadgeMostComplete)
	}
}

func TestConfigure_DevuelveComoMaximoTres(t *testing.T) {
	var packs []entity.Pack
	for i := 0; i < 6; i++ {
		packs = append(packs, bundlePack("p"+strconv.Itoa(i), float64(30+i), 40, 300))
	}
	result := catalog.Configure(packs, balancedReq(), testNow)
	assert.Len(t, result, 3)
}
