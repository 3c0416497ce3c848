package repository

import "github.com/hipnotik-level/ventas-api/internal/domain/entity"

// ObjectiveRepository define el puerto de persistencia para Objective.
// La unicidad por (month, year) la garantiza el use case vía ExistsForMonth.
type ObjectiveRepository interface {
	Create(objective *entity.Objective) error
	GetByID(id string) (*entity.Objective, error)
	GetByMonthYear(month, year int) (*entity.Objective, error)
	ExistsForMonth(month, year int) (bool, error)
	List() ([]*entity.Objective, error)
	Update(objective *entity.Objective) error
	Delete(id string) error
}
