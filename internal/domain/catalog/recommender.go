// Package catalog contiene los motores de recomendación sobre el catálogo de
// packs: el recomendador simple por compañía de origen y el configurador por
// requisitos del cliente.
package catalog

import (
	"sort"
	"strings"

	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
)

// topRecommendations tamaño del resultado de ambos motores.
const topRecommendations = 3

// originAffinityScore puntos cuando la compañía de origen aparece en las
// observaciones del pack.
const originAffinityScore = 10

// Recommendation un pack con su puntuación de afinidad.
type Recommendation struct {
	Pack  entity.Pack
	Score int
}

// Recommend ordena los packs candidatos (ya filtrados por tipo y activos) por
// afinidad con la compañía de origen y devuelve los 3 primeros.
//
// Puntuación: 10 si originCompany no está vacía y aparece (sin distinguir
// mayúsculas) en las observaciones del pack; 0 en caso contrario. El orden es
// score descendente y, a igual score, precio descendente: el pack más caro
// gana el desempate. Sin candidatos devuelve lista vacía, nunca error.
func Recommend(packs []entity.Pack, originCompany string) []Recommendation {
	recs := make([]Recommendation, 0, len(packs))
	for _, p := range packs {
		score := 0
		if originCompany != "" && containsFold(p.Observations, originCompany) {
			score = originAffinityScore
		}
		recs = append(recs, Recommendation{Pack: p, Score: score})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Pack.Price.GreaterThan(recs[j].Pack.Price)
	})

	if len(recs) > topRecommendations {
		recs = recs[:topRecommendations]
	}
	return recs
}

// containsFold búsqueda de substring sin distinguir mayúsculas/minúsculas.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
