package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/hipnotik-level/ventas-api/internal/application/dto"
	"github.com/hipnotik-level/ventas-api/internal/domain"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

// ObjectiveUseCase gestión de objetivos mensuales (admin).
type ObjectiveUseCase struct {
	objectives repository.ObjectiveRepository
}

// NewObjectiveUseCase construye el caso de uso.
func NewObjectiveUseCase(objectives repository.ObjectiveRepository) *ObjectiveUseCase {
	return &ObjectiveUseCase{objectives: objectives}
}

// Create crea el objetivo de un mes. La unicidad por (month, year) se
// comprueba aquí, en escritura; devuelve ErrDuplicate si ya existe.
func (uc *ObjectiveUseCase) Create(in dto.CreateObjectiveRequest) (*dto.ObjectiveResponse, error) {
	if in.Month < 1 || in.Month > 12 || in.Year < 2020 || in.TeamTarget <= 0 {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.objectives.ExistsForMonth(in.Month, in.Year)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	objective := &entity.Objective{
		ID:              uuid.New().String(),
		Month:           in.Month,
		Year:            in.Year,
		TeamTarget:      in.TeamTarget,
		EmployeeTargets: in.EmployeeTargets,
		CompanyTargets:  in.CompanyTargets,
		CreatedAt:       time.Now().UTC(),
	}
	if err := uc.objectives.Create(objective); err != nil {
		return nil, err
	}
	return toObjectiveResponse(objective), nil
}

// List lista todos los objetivos.
func (uc *ObjectiveUseCase) List() ([]*dto.ObjectiveResponse, error) {
	list, err := uc.objectives.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ObjectiveResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toObjectiveResponse(o))
	}
	return out, nil
}

// Current devuelve el objetivo del mes en curso, o nil si no existe.
func (uc *ObjectiveUseCase) Current(now time.Time) (*dto.ObjectiveResponse, error) {
	objective, err := uc.objectives.GetByMonthYear(int(now.Month()), now.Year())
	if err != nil {
		return nil, err
	}
	return toObjectiveResponse(objective), nil
}

func toObjectiveResponse(o *entity.Objective) *dto.ObjectiveResponse {
	if o == nil {
		return nil
	}
	return &dto.ObjectiveResponse{
		ID:              o.ID,
		Month:           o.Month,
		Year:            o.Year,
		TeamTarget:      o.TeamTarget,
		EmployeeTargets: o.EmployeeTargets,
		CompanyTargets:  o.CompanyTargets,
		CreatedAt:       o.CreatedAt,
	}
}
