package usecase

import (
	"github.com/hipnotik-level/ventas-api/internal/application/dto"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

// relatedScanLimit tope de ventas/incidencias consultadas para resolver la
// visibilidad de un empleado.
const relatedScanLimit = 1000

// NotificationUseCase lectura y marcado de notificaciones. La visibilidad
// depende del rol: un SuperAdmin ve todas; un Empleado ve las dirigidas a su
// user_id y las relacionadas con sus propias ventas e incidencias (creadas
// por él o asignadas a él), lo que incluye las de difusión ("all") sobre esas
// entidades.
type NotificationUseCase struct {
	notifs    repository.NotificationRepository
	sales     repository.SaleRepository
	incidents repository.IncidentRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(
	notifs repository.NotificationRepository,
	sales repository.SaleRepository,
	incidents repository.IncidentRepository,
) *NotificationUseCase {
	return &NotificationUseCase{notifs: notifs, sales: sales, incidents: incidents}
}

// List devuelve las notificaciones visibles para el actor, más recientes
// primero.
func (uc *NotificationUseCase) List(actorID, actorRole string, limit int) ([]*dto.NotificationResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	scope, err := uc.visibilityScope(actorID, actorRole)
	if err != nil {
		return nil, err
	}
	list, err := uc.notifs.ListVisible(scope, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNotificationResponse(n))
	}
	return out, nil
}

// UnreadCount recuento de no leídas visibles para el actor.
func (uc *NotificationUseCase) UnreadCount(actorID, actorRole string) (*dto.UnreadCountResponse, error) {
	scope, err := uc.visibilityScope(actorID, actorRole)
	if err != nil {
		return nil, err
	}
	count, err := uc.notifs.CountUnread(scope)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

// MarkRead marca una notificación como leída.
func (uc *NotificationUseCase) MarkRead(id string) error {
	return uc.notifs.MarkRead(id)
}

// MarkAllRead marca como leídas todas las visibles para el actor.
func (uc *NotificationUseCase) MarkAllRead(actorID, actorRole string) error {
	scope, err := uc.visibilityScope(actorID, actorRole)
	if err != nil {
		return err
	}
	return uc.notifs.MarkAllRead(scope)
}

// visibilityScope resuelve el ámbito de visibilidad del actor. Para un
// Empleado recupera los IDs de sus ventas e incidencias implicadas.
func (uc *NotificationUseCase) visibilityScope(actorID, actorRole string) (repository.NotificationScope, error) {
	scope := repository.NotificationScope{UserID: actorID}
	if actorRole == entity.RoleSuperAdmin {
		scope.All = true
		return scope, nil
	}
	saleIDs, err := uc.sales.ListIDsByCreator(actorID, relatedScanLimit)
	if err != nil {
		return scope, err
	}
	incidentIDs, err := uc.incidents.ListIDsInvolving(actorID, relatedScanLimit)
	if err != nil {
		return scope, err
	}
	scope.SaleIDs = saleIDs
	scope.IncidentIDs = incidentIDs
	return scope, nil
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:          n.ID,
		UserID:      n.UserID,
		Title:       n.Title,
		Message:     n.Message,
		Type:        n.Type,
		RelatedID:   n.RelatedID,
		RelatedType: n.RelatedType,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
	}
}
