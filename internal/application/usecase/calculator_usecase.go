package usecase

import (
	"time"

	"github.com/hipnotik-level/ventas-api/internal/application/dto"
	"github.com/hipnotik-level/ventas-api/internal/domain"
	"github.com/hipnotik-level/ventas-api/internal/domain/catalog"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

// CalculatorUseCase recomendador simple y configurador de packs. Ambos son
// lecturas puras sobre el catálogo activo, sin efectos de persistencia.
type CalculatorUseCase struct {
	packs repository.PackRepository
}

// NewCalculatorUseCase construye el caso de uso.
func NewCalculatorUseCase(packs repository.PackRepository) *CalculatorUseCase {
	return &CalculatorUseCase{packs: packs}
}

// Recommend devuelve hasta 3 packs activos del tipo pedido, ordenados por
// afinidad con la compañía de origen y precio.
func (uc *CalculatorUseCase) Recommend(in dto.RecommendRequest) ([]dto.RecommendationDTO, error) {
	if !entity.ValidPackType(in.PackType) {
		return nil, domain.ErrInvalidInput
	}
	packs, err := uc.activePacks(in.PackType)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	recs := catalog.Recommend(packs, in.OriginCompany)
	out := make([]dto.RecommendationDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.RecommendationDTO{
			PackResponse: *toPackResponse(&r.Pack, now),
			Score:        r.Score,
		})
	}
	return out, nil
}

// Configure puntúa el catálogo activo contra el requisito estructurado y
// devuelve el top 3 con detalle de encaje e insignias.
func (uc *CalculatorUseCase) Configure(in dto.ConfigureRequest) ([]dto.ConfiguredPackDTO, error) {
	if !entity.ValidPackType(in.PackType) || !catalog.ValidPriority(in.Priority) {
		return nil, domain.ErrInvalidInput
	}
	packs, err := uc.activePacks(in.PackType)
	if err != nil {
		return nil, err
	}

	respect := true
	if in.RespectRestrictions != nil {
		respect = *in.RespectRestrictions
	}
	req := catalog.Requirement{
		PackType:            in.PackType,
		OriginCompany:       in.OriginCompany,
		Priority:            in.Priority,
		MobileGB:            in.MobileGB,
		FiberSpeedMbps:      in.FiberSpeedMbps,
		MinutesType:         in.MinutesType,
		AdditionalLines:     in.AdditionalLines,
		TVRequired:          in.TVRequired,
		TVPackageType:       in.TVPackageType,
		RespectRestrictions: respect,
	}

	now := time.Now().UTC()
	scored := catalog.Configure(packs, req, now)
	out := make([]dto.ConfiguredPackDTO, 0, len(scored))
	for _, sp := range scored {
		resp := *toPackResponse(&sp.Pack, now)
		// En el configurador la novedad usa el umbral de 30 días, no el del
		// listado de catálogo.
		resp.IsNew = sp.IsNew
		out = append(out, dto.ConfiguredPackDTO{
			PackResponse: resp,
			Score:        sp.Score,
			FitDetails:   sp.FitDetails,
			Badges:       sp.Badges,
		})
	}
	return out, nil
}

func (uc *CalculatorUseCase) activePacks(packType string) ([]entity.Pack, error) {
	list, err := uc.packs.FindActiveByType(packType)
	if err != nil {
		return nil, err
	}
	packs := make([]entity.Pack, 0, len(list))
	for _, p := range list {
		packs = append(packs, *p)
	}
	return packs, nil
}
