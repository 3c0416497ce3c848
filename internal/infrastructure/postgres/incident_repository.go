package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hipnotik-level/ventas-api/internal/domain"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

var _ repository.IncidentRepository = (*IncidentRepo)(nil)

// IncidentRepo implementación de IncidentRepository.
type IncidentRepo struct {
	q Querier
}

// NewIncidentRepository construye el adaptador.
func NewIncidentRepository(q Querier) *IncidentRepo {
	return &IncidentRepo{q: q}
}

const incidentColumns = `id, client_id, title, description, priority, type, status,
	assigned_to, created_by, created_at, updated_at, is_demo`

// Create persiste una nueva incidencia.
func (r *IncidentRepo) Create(incident *entity.Incident) error {
	query := `
		INSERT INTO incidents (id, client_id, title, description, priority, type, status,
			assigned_to, created_by, created_at, updated_at, is_demo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		incident.ID, incident.ClientID, incident.Title, incident.Description, incident.Priority,
		incident.Type, incident.Status, incident.AssignedTo, incident.CreatedBy,
		incident.CreatedAt, incident.UpdatedAt, incident.IsDemo,
	)
	if err != nil {
		return fmt.Errorf("insert incident: %w", err)
	}
	return nil
}

// GetByID obtiene una incidencia por ID.
func (r *IncidentRepo) GetByID(id string) (*entity.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`
	incident, err := scanIncident(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get incident: %w", err)
	}
	return incident, nil
}

// List lista incidencias, más recientes primero. InvolvedUser limita a las
// creadas por o asignadas a ese usuario.
func (r *IncidentRepo) List(filter repository.IncidentFilter, limit, offset int) ([]*entity.Incident, error) {
	query := `
		SELECT ` + incidentColumns + ` FROM incidents
		WHERE ($1 = '' OR created_by = $1 OR assigned_to = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, filter.InvolvedUser, filter.Status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	defer rows.Close()

	var incidents []*entity.Incident
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("scan incident: %w", err)
		}
		incidents = append(incidents, incident)
	}
	return incidents, rows.Err()
}

// Update reemplaza los campos mutables de la incidencia.
func (r *IncidentRepo) Update(incident *entity.Incident) error {
	query := `
		UPDATE incidents SET title = $2, description = $3, priority = $4, status = $5,
			assigned_to = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		incident.ID, incident.Title, incident.Description, incident.Priority,
		incident.Status, incident.AssignedTo, incident.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update incident: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una incidencia y sus comentarios (FK en cascada).
func (r *IncidentRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM incidents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete incident: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddComment persiste un comentario de incidencia.
func (r *IncidentRepo) AddComment(comment *entity.IncidentComment) error {
	query := `
		INSERT INTO incident_comments (id, incident_id, comment, user_id, user_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		comment.ID, comment.IncidentID, comment.Comment, comment.UserID, comment.UserName, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert incident comment: %w", err)
	}
	return nil
}

// ListComments comentarios de una incidencia en orden cronológico.
func (r *IncidentRepo) ListComments(incidentID string) ([]*entity.IncidentComment, error) {
	query := `
		SELECT id, incident_id, comment, user_id, user_name, created_at
		FROM incident_comments WHERE incident_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("list incident comments: %w", err)
	}
	defer rows.Close()

	var comments []*entity.IncidentComment
	for rows.Next() {
		var c entity.IncidentComment
		if err := rows.Scan(&c.ID, &c.IncidentID, &c.Comment, &c.UserID, &c.UserName, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan incident comment: %w", err)
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

// ListIDsInvolving devuelve solo los IDs de las incidencias creadas por o
// asignadas al usuario.
func (r *IncidentRepo) ListIDsInvolving(userID string, limit int) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id FROM incidents WHERE created_by = $1 OR assigned_to = $1 LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list incident ids: %w", err)
	}
	defer rows.Close()
	return scanIDs(rows)
}

func scanIncident(row pgx.Row) (*entity.Incident, error) {
	var i entity.Incident
	err := row.Scan(&i.ID, &i.ClientID, &i.Title, &i.Description, &i.Priority, &i.Type,
		&i.Status, &i.AssignedTo, &i.CreatedBy, &i.CreatedAt, &i.UpdatedAt, &i.IsDemo)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
