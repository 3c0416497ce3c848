package repository

import (
	"slices"

	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
)

// NotificationScope ámbito de visibilidad de notificaciones de un actor.
// Un SuperAdmin ve todas (All). Un Empleado ve las dirigidas a su user_id y
// las relacionadas con sus propias ventas (SaleIDs) e incidencias creadas por
// él o asignadas a él (IncidentIDs); el use case resuelve esas listas antes de
// consultar.
type NotificationScope struct {
	UserID      string
	All         bool
	SaleIDs     []string
	IncidentIDs []string
}

// Matches indica si una notificación es visible dentro del ámbito. Las
// implementaciones SQL del puerto aplican este mismo predicado.
func (s NotificationScope) Matches(n *entity.Notification) bool {
	if s.All || n.UserID == s.UserID {
		return true
	}
	switch n.RelatedType {
	case entity.RelatedSale:
		return slices.Contains(s.SaleIDs, n.RelatedID)
	case entity.RelatedIncident:
		return slices.Contains(s.IncidentIDs, n.RelatedID)
	}
	return false
}

// NotificationRepository define el puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListVisible(scope NotificationScope, limit int) ([]*entity.Notification, error)
	CountUnread(scope NotificationScope) (int, error)
	MarkRead(id string) error
	MarkAllRead(scope NotificationScope) error
}
