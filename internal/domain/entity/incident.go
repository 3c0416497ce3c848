package entity

import "time"

// Estados válidos de una incidencia.
const (
	IncidentOpen       = "Abierta"
	IncidentInProgress = "En Proceso"
	IncidentClosed     = "Cerrada"
)

// Prioridades válidas de una incidencia.
const (
	PriorityBaja    = "Baja"
	PriorityMedia   = "Media"
	PriorityAlta    = "Alta"
	PriorityCritica = "Crítica"
)

// Incident representa una incidencia abierta sobre un cliente.
type Incident struct {
	ID          string
	ClientID    string
	Title       string
	Description string
	Priority    string
	Type        string
	Status      string
	AssignedTo  string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	IsDemo      bool
}

// IncidentComment comentario sobre una incidencia.
type IncidentComment struct {
	ID         string
	IncidentID string
	Comment    string
	UserID     string
	UserName   string
	CreatedAt  time.Time
}
