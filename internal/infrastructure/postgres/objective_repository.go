package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hipnotik-level/ventas-api/internal/domain"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

var _ repository.ObjectiveRepository = (*ObjectiveRepo)(nil)

// ObjectiveRepo implementación de ObjectiveRepository. Los objetivos por
// empleado y por operadora se guardan como documentos JSONB.
type ObjectiveRepo struct {
	q Querier
}

// NewObjectiveRepository construye el adaptador.
func NewObjectiveRepository(q Querier) *ObjectiveRepo {
	return &ObjectiveRepo{q: q}
}

const objectiveColumns = `id, month, year, team_target, employee_targets, company_targets, created_at`

// Create persiste un objetivo mensual.
func (r *ObjectiveRepo) Create(objective *entity.Objective) error {
	empTargets, compTargets, err := marshalTargets(objective)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO objectives (id, month, year, team_target, employee_targets, company_targets, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		objective.ID, objective.Month, objective.Year, objective.TeamTarget,
		empTargets, compTargets, objective.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert objective: %w", err)
	}
	return nil
}

// GetByID obtiene un objetivo por ID.
func (r *ObjectiveRepo) GetByID(id string) (*entity.Objective, error) {
	query := `SELECT ` + objectiveColumns + ` FROM objectives WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByMonthYear obtiene el objetivo de un mes concreto, o nil si no existe.
func (r *ObjectiveRepo) GetByMonthYear(month, year int) (*entity.Objective, error) {
	query := `SELECT ` + objectiveColumns + ` FROM objectives WHERE month = $1 AND year = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, month, year))
}

// ExistsForMonth indica si ya hay objetivo definido para el mes.
func (r *ObjectiveRepo) ExistsForMonth(month, year int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM objectives WHERE month = $1 AND year = $2)`
	if err := r.q.QueryRow(context.Background(), query, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists objective: %w", err)
	}
	return exists, nil
}

// List objetivos ordenados del más reciente al más antiguo.
func (r *ObjectiveRepo) List() ([]*entity.Objective, error) {
	query := `SELECT ` + objectiveColumns + ` FROM objectives ORDER BY year DESC, month DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list objectives: %w", err)
	}
	defer rows.Close()

	var objectives []*entity.Objective
	for rows.Next() {
		objective, err := scanObjective(rows)
		if err != nil {
			return nil, fmt.Errorf("scan objective: %w", err)
		}
		objectives = append(objectives, objective)
	}
	return objectives, rows.Err()
}

// Update reemplaza los campos mutables del objetivo.
func (r *ObjectiveRepo) Update(objective *entity.Objective) error {
	empTargets, compTargets, err := marshalTargets(objective)
	if err != nil {
		return err
	}
	query := `
		UPDATE objectives SET team_target = $2, employee_targets = $3, company_targets = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		objective.ID, objective.TeamTarget, empTargets, compTargets,
	)
	if err != nil {
		return fmt.Errorf("update objective: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un objetivo.
func (r *ObjectiveRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM objectives WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete objective: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ObjectiveRepo) scanOne(row pgx.Row) (*entity.Objective, error) {
	objective, err := scanObjective(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get objective: %w", err)
	}
	return objective, nil
}

func scanObjective(row pgx.Row) (*entity.Objective, error) {
	var (
		o           entity.Objective
		empTargets  []byte
		compTargets []byte
	)
	err := row.Scan(&o.ID, &o.Month, &o.Year, &o.TeamTarget, &empTargets, &compTargets, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(empTargets) > 0 {
		if err := json.Unmarshal(empTargets, &o.EmployeeTargets); err != nil {
			return nil, fmt.Errorf("unmarshal employee targets: %w", err)
		}
	}
	if len(compTargets) > 0 {
		if err := json.Unmarshal(compTargets, &o.CompanyTargets); err != nil {
			return nil, fmt.Errorf("unmarshal company targets: %w", err)
		}
	}
	return &o, nil
}

func marshalTargets(objective *entity.Objective) (empTargets, compTargets []byte, err error) {
	if len(objective.EmployeeTargets) > 0 {
		empTargets, err = json.Marshal(objective.EmployeeTargets)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal employee targets: %w", err)
		}
	}
	if len(objective.CompanyTargets) > 0 {
		compTargets, err = json.Marshal(objective.CompanyTargets)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal company targets: %w", err)
		}
	}
	return empTargets, compTargets, nil
}
