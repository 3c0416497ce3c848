package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/hipnotik-level/ventas-api/internal/application/dto"
	"github.com/hipnotik-level/ventas-api/internal/domain"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

// PackUseCase gestión del catálogo de packs (admin).
type PackUseCase struct {
	packs repository.PackRepository
}

// NewPackUseCase construye el caso de uso.
func NewPackUseCase(packs repository.PackRepository) *PackUseCase {
	return &PackUseCase{packs: packs}
}

// Create da de alta un pack en el catálogo.
func (uc *PackUseCase) Create(in dto.CreatePackRequest) (*dto.PackResponse, error) {
	if in.Company == "" || in.Name == "" || !entity.ValidPackType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now().UTC()
	pack := &entity.Pack{
		ID:            uuid.New().String(),
		Company:       in.Company,
		Name:          in.Name,
		Type:          in.Type,
		Price:         in.Price,
		Features:      in.Features,
		ValidityStart: in.ValidityStart,
		ValidityEnd:   in.ValidityEnd,
		Active:        active,
		Observations:  in.Observations,
		CreatedAt:     now,

		Category:                 in.Category,
		FiberSpeedMbps:           in.FiberSpeedMbps,
		MobileGB:                 in.MobileGB,
		MinutesType:              in.MinutesType,
		LinesIncluded:            in.LinesIncluded,
		AdditionalLinesSupported: in.AdditionalLinesSupported,
		TVSupported:              in.TVSupported,
		TVPackageType:            in.TVPackageType,
		Restrictions:             in.Restrictions,
	}
	if err := uc.packs.Create(pack); err != nil {
		return nil, err
	}
	return toPackResponse(pack, now), nil
}

// List lista el catálogo; con activeOnly solo los packs activos. IsNew se
// deriva con el umbral de 7 días del listado.
func (uc *PackUseCase) List(activeOnly bool) ([]*dto.PackResponse, error) {
	packs, err := uc.packs.List(activeOnly)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	out := make([]*dto.PackResponse, 0, len(packs))
	for _, p := range packs {
		out = append(out, toPackResponse(p, now))
	}
	return out, nil
}

// Get obtiene un pack por ID.
func (uc *PackUseCase) Get(id string) (*dto.PackResponse, error) {
	pack, err := uc.packs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pack == nil {
		return nil, domain.ErrNotFound
	}
	return toPackResponse(pack, time.Now().UTC()), nil
}

// Update aplica una actualización parcial sobre un pack.
func (uc *PackUseCase) Update(id string, in dto.UpdatePackRequest) (*dto.PackResponse, error) {
	pack, err := uc.packs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pack == nil {
		return nil, domain.ErrNotFound
	}
	if in.Type != nil && !entity.ValidPackType(*in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	if in.Company != nil {
		pack.Company = *in.Company
	}
	if in.Name != nil {
		pack.Name = *in.Name
	}
	if in.Type != nil {
		pack.Type = *in.Type
	}
	if in.Price != nil {
		pack.Price = *in.Price
	}
	if in.Features != nil {
		pack.Features = *in.Features
	}
	if in.ValidityStart != nil {
		pack.ValidityStart = in.ValidityStart
	}
	if in.ValidityEnd != nil {
		pack.ValidityEnd = in.ValidityEnd
	}
	if in.Active != nil {
		pack.Active = *in.Active
	}
	if in.Observations != nil {
		pack.Observations = *in.Observations
	}
	if in.Category != nil {
		pack.Category = *in.Category
	}
	if in.FiberSpeedMbps != nil {
		pack.FiberSpeedMbps = *in.FiberSpeedMbps
	}
	if in.MobileGB != nil {
		pack.MobileGB = *in.MobileGB
	}
	if in.MinutesType != nil {
		pack.MinutesType = *in.MinutesType
	}
	if in.LinesIncluded != nil {
		pack.LinesIncluded = *in.LinesIncluded
	}
	if in.AdditionalLinesSupported != nil {
		pack.AdditionalLinesSupported = *in.AdditionalLinesSupported
	}
	if in.TVSupported != nil {
		pack.TVSupported = *in.TVSupported
	}
	if in.TVPackageType != nil {
		pack.TVPackageType = *in.TVPackageType
	}
	if in.Restrictions != nil {
		pack.Restrictions = *in.Restrictions
	}

	if err := uc.packs.Update(pack); err != nil {
		return nil, err
	}
	return toPackResponse(pack, time.Now().UTC()), nil
}

// Delete elimina un pack del catálogo.
func (uc *PackUseCase) Delete(id string) error {
	pack, err := uc.packs.GetByID(id)
	if err != nil {
		return err
	}
	if pack == nil {
		return domain.ErrNotFound
	}
	return uc.packs.Delete(id)
}

func toPackResponse(p *entity.Pack, now time.Time) *dto.PackResponse {
	if p == nil {
		return nil
	}
	return &dto.PackResponse{
		ID:            p.ID,
		Company:       p.Company,
		Name:          p.Name,
		Type:          p.Type,
		Price:         p.Price,
		Features:      p.Features,
		ValidityStart: p.ValidityStart,
		ValidityEnd:   p.ValidityEnd,
		Active:        p.Active,
		Observations:  p.Observations,
		CreatedAt:     p.CreatedAt,
		IsNew:         p.IsNewInCatalog(now),

		Category:                 p.Category,
		FiberSpeedMbps:           p.FiberSpeedMbps,
		MobileGB:                 p.MobileGB,
		MinutesType:              p.MinutesType,
		LinesIncluded:            p.LinesIncluded,
		AdditionalLinesSupported: p.AdditionalLinesSupported,
		TVSupported:              p.TVSupported,
		TVPackageType:            p.TVPackageType,
		Restrictions:             p.Restrictions,
	}
}
