package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
)

// Prioridades del configurador.
const (
	PriorityAhorrar       = "Ahorrar"
	PriorityEquilibrado   = "Equilibrado"
	PriorityMaximaCalidad = "Máxima calidad"
)

// ValidPriority verifica pertenencia a la enumeración de prioridades.
func ValidPriority(p string) bool {
	return p == PriorityAhorrar || p == PriorityEquilibrado || p == PriorityMaximaCalidad
}

// Insignias asignadas al top 3 del configurador.
const (
	BadgeBestValue    = "Mejor valor"
	BadgeCheapest     = "Más barato"
	BadgeMostComplete = "Más completo"
	BadgeNew          = "Nueva"
)

// Requirement requisito estructurado del cliente para el configurador.
type Requirement struct {
	PackType            string
	OriginCompany       string
	Priority            string // Ahorrar, Equilibrado, Máxima calidad
	MobileGB            int
	FiberSpeedMbps      int
	MinutesType         string
	AdditionalLines     int
	TVRequired          bool
	TVPackageType       string
	RespectRestrictions bool
}

// ScoredPack un pack candidato anotado con su puntuación, el detalle de
// encaje y las insignias asignadas.
type ScoredPack struct {
	Pack       entity.Pack
	Score      float64 // redondeado a 2 decimales
	FitDetails []string
	IsNew      bool // menos de 30 días en catálogo
	Badges     []string
}

// Configure puntúa los packs candidatos (ya filtrados por tipo y activos)
// contra el requisito y devuelve el top 3 anotado con insignias.
//
// Pipeline: filtros duros (restricciones "solo ..." contra la compañía de
// origen, TV requerida) → puntuación blanda ponderada por prioridad → orden
// por score descendente (estable) → top 3 → insignias. Un catálogo vacío o
// totalmente filtrado devuelve lista vacía, nunca error.
func Configure(packs []entity.Pack, req Requirement, now time.Time) []ScoredPack {
	priceWeight, qualityWeight := priorityWeights(req.Priority)

	var scored []ScoredPack
	for _, pack := range packs {
		// Filtro duro: restricciones de procedencia. Un pack con "solo" en su
		// texto de restricciones queda excluido salvo que mencione la compañía
		// de origen del cliente.
		if req.RespectRestrictions && req.OriginCompany != "" && pack.Restrictions != "" {
			restrictions := strings.ToLower(pack.Restrictions)
			if !strings.Contains(restrictions, strings.ToLower(req.OriginCompany)) &&
				strings.Contains(restrictions, "solo") {
				continue
			}
		}

		// Filtro duro: TV requerida
		if req.TVRequired && !pack.TVSupported {
			continue
		}

		score := 0.0
		var fitDetails []string

		// Encaje de GB móviles: solo puntúa si requisito y pack informan GB.
		// Por debajo de lo pedido, penalización plana de 10 sin ponderar.
		if req.MobileGB > 0 && pack.MobileGB > 0 {
			gbDiff := math.Abs(float64(pack.MobileGB - req.MobileGB))
			if pack.MobileGB >= req.MobileGB {
				gbScore := math.Max(0, 20-gbDiff/10)
				score += gbScore * qualityWeight
				fitDetails = append(fitDetails, fmt.Sprintf("GB: %dGB (pedido: %dGB)", pack.MobileGB, req.MobileGB))
			} else {
				score -= 10
			}
		}

		// Encaje de velocidad de fibra: misma regla con divisor 100
		if req.FiberSpeedMbps > 0 && pack.FiberSpeedMbps > 0 {
			speedDiff := math.Abs(float64(pack.FiberSpeedMbps - req.FiberSpeedMbps))
			if pack.FiberSpeedMbps >= req.FiberSpeedMbps {
				speedScore := math.Max(0, 20-speedDiff/100)
				score += speedScore * qualityWeight
				fitDetails = append(fitDetails, fmt.Sprintf("Fibra: %dMbps", pack.FiberSpeedMbps))
			} else {
				score -= 10
			}
		}

		// Precio: inverso, mejor cuanto más barato. La fórmula puede ser
		// negativa para precios por encima de 100 y no se recorta.
		const maxPrice = 100.0
		priceScore := (maxPrice - pack.Price.InexactFloat64()) / maxPrice * 20
		score += priceScore * priceWeight

		// Bono TV
		if req.TVRequired && pack.TVSupported {
			score += 15
			tvLabel := pack.TVPackageType
			if tvLabel == "" {
				tvLabel = "incluida"
			}
			fitDetails = append(fitDetails, "TV: "+tvLabel)
		}

		// Bono líneas adicionales
		if req.AdditionalLines > 0 && pack.AdditionalLinesSupported {
			score += 10
			fitDetails = append(fitDetails, "Líneas adicionales soportadas")
		}

		// Bono novedad (umbral de 30 días, distinto del listado de catálogo)
		isNew := pack.IsFresh(now)
		if isNew {
			score += 5
		}

		// Bono afinidad con la compañía de origen
		if req.OriginCompany != "" && containsFold(pack.Observations, req.OriginCompany) {
			score += 10
			fitDetails = append(fitDetails, "Especial para "+req.OriginCompany)
		}

		scored = append(scored, ScoredPack{
			Pack:       pack,
			Score:      math.Round(score*100) / 100,
			FitDetails: fitDetails,
			IsNew:      isNew,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	top := scored
	if len(top) > topRecommendations {
		top = top[:topRecommendations]
	}
	assignBadges(top, len(scored))
	return top
}

// priorityWeights devuelve los pesos (precio, calidad) de la prioridad.
func priorityWeights(priority string) (priceWeight, qualityWeight float64) {
	switch priority {
	case PriorityAhorrar:
		return 3, 1
	case PriorityEquilibrado:
		return 2, 2
	default: // Máxima calidad
		return 1, 3
	}
}

// assignBadges anota el top 3 in place. total es el número de candidatos
// puntuados antes del recorte: las insignias de precio y completitud solo se
// asignan cuando hubo más de 1 y más de 2 candidatos respectivamente.
func assignBadges(top []ScoredPack, total int) {
	if len(top) == 0 {
		return
	}
	top[0].Badges = append(top[0].Badges, BadgeBestValue)

	// Más barato entre el top. La comprobación de insignia repetida mantiene
	// la asignación idempotente si se reordena la lógica.
	if total > 1 {
		cheapest := 0
		for i := range top {
			if top[i].Pack.Price.LessThan(top[cheapest].Pack.Price) {
				cheapest = i
			}
		}
		if !hasBadge(top[cheapest], BadgeCheapest) {
			top[cheapest].Badges = append(top[cheapest].Badges, BadgeCheapest)
		}
	}

	// Más completo: máximo estricto de características, primero visto gana.
	// El índice 0 nunca la recibe: el acumulador arranca en 0 y solo se asigna
	// con índice mayor que cero (comportamiento observado, se conserva).
	if total > 2 {
		mostComplete := 0
		maxFeatures := 0
		for i := range top {
			count := featureCount(top[i].Pack)
			if count > maxFeatures {
				maxFeatures = count
				mostComplete = i
			}
		}
		if mostComplete > 0 {
			top[mostComplete].Badges = append(top[mostComplete].Badges, BadgeMostComplete)
		}
	}

	for i := range top {
		if top[i].IsNew {
			top[i].Badges = append(top[i].Badges, BadgeNew)
		}
	}
}

// featureCount riqueza de características de un pack para la insignia
// "Más completo".
func featureCount(p entity.Pack) int {
	count := 0
	if p.MobileGB > 20 {
		count++
	}
	if p.FiberSpeedMbps > 500 {
		count++
	}
	if p.TVSupported {
		count++
	}
	if p.AdditionalLinesSupported {
		count++
	}
	return count
}

func hasBadge(sp ScoredPack, badge string) bool {
	for _, b := range sp.Badges {
		if b == badge {
			return true
		}
	}
	return false
}
