package repository

import "github.com/hipnotik-level/ventas-api/internal/domain/entity"

// IncidentFilter filtros opcionales del listado de incidencias.
// InvolvedUser limita a las creadas por o asignadas a ese usuario.
type IncidentFilter struct {
	InvolvedUser string
	Status       string
}

// IncidentRepository define el puerto de persistencia para Incident.
type IncidentRepository interface {
	Create(incident *entity.Incident) error
	GetByID(id string) (*entity.Incident, error)
	List(filter IncidentFilter, limit, offset int) ([]*entity.Incident, error)
	Update(incident *entity.Incident) error
	Delete(id string) error

	AddComment(comment *entity.IncidentComment) error
	ListComments(incidentID string) ([]*entity.IncidentComment, error)

	// ListIDsInvolving solo los IDs de las incidencias creadas por o asignadas
	// al usuario (visibilidad de notificaciones).
	ListIDsInvolving(userID string, limit int) ([]string, error)
}
