package entity

import "time"

// Tipos de notificación.
const (
	NotifNewSale          = "new_sale"
	NotifIncidentOpened   = "incident_opened"
	NotifIncidentResolved = "incident_resolved"
	NotifGoalAchieved     = "goal_achieved"
)

// NotificationBroadcast destinatario especial: visible para los SuperAdmin y,
// a través de la entidad relacionada, para el empleado implicado.
const NotificationBroadcast = "all"

// Tipos de entidad relacionada de una notificación.
const (
	RelatedSale     = "sale"
	RelatedIncident = "incident"
)

// Notification aviso interno generado por eventos de ventas e incidencias.
type Notification struct {
	ID          string
	UserID      string // "all" para difusión, o user_id concreto
	Title       string
	Message     string
	Type        string
	RelatedID   string // id de la entidad relacionada (venta, incidencia)
	RelatedType string // "sale" | "incident"
	Read        bool
	CreatedAt   time.Time
}
