package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hipnotik-level/ventas-api/internal/application/dto"
	"github.com/hipnotik-level/ventas-api/internal/domain"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

// IncidentUseCase casos de uso de incidencias y sus comentarios.
type IncidentUseCase struct {
	incidents repository.IncidentRepository
	clients   repository.ClientRepository
	notifs    repository.NotificationRepository
}

// NewIncidentUseCase construye el caso de uso.
func NewIncidentUseCase(
	incidents repository.IncidentRepository,
	clients repository.ClientRepository,
	notifs repository.NotificationRepository,
) *IncidentUseCase {
	return &IncidentUseCase{incidents: incidents, clients: clients, notifs: notifs}
}

var incidentPriorities = map[string]bool{
	entity.PriorityBaja:    true,
	entity.PriorityMedia:   true,
	entity.PriorityAlta:    true,
	entity.PriorityCritica: true,
}

var incidentStatuses = map[string]bool{
	entity.IncidentOpen:       true,
	entity.IncidentInProgress: true,
	entity.IncidentClosed:     true,
}

// Create abre una incidencia sobre un cliente y emite una notificación de
// difusión (visible para los SuperAdmin y para los empleados implicados).
func (uc *IncidentUseCase) Create(actorID, actorName string, in dto.CreateIncidentRequest) (*dto.IncidentResponse, error) {
	if in.Title == "" || !incidentPriorities[in.Priority] {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clients.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	incident := &entity.Incident{
		ID:          uuid.New().String(),
		ClientID:    in.ClientID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Type:        in.Type,
		Status:      entity.IncidentOpen,
		AssignedTo:  in.AssignedTo,
		CreatedBy:   actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.incidents.Create(incident); err != nil {
		return nil, err
	}

	notif := &entity.Notification{
		ID:          uuid.New().String(),
		UserID:      entity.NotificationBroadcast,
		Title:       "Nueva incidencia abierta",
		Message:     fmt.Sprintf("%s ha abierto una incidencia: %s", actorName, incident.Title),
		Type:        entity.NotifIncidentOpened,
		RelatedID:   incident.ID,
		RelatedType: entity.RelatedIncident,
		CreatedAt:   now,
	}
	_ = uc.notifs.Create(notif)

	return toIncidentResponse(incident), nil
}

// List lista incidencias. Un Empleado solo ve las creadas por él o asignadas
// a él; el filtro por estado es opcional.
func (uc *IncidentUseCase) List(actorID, actorRole, status string, page dto.PageRequest) ([]*dto.IncidentResponse, error) {
	page.DefaultPage()
	filter := repository.IncidentFilter{Status: status}
	if actorRole == entity.RoleEmpleado {
		filter.InvolvedUser = actorID
	}
	list, err := uc.incidents.List(filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.IncidentResponse, 0, len(list))
	for _, i := range list {
		out = append(out, toIncidentResponse(i))
	}
	return out, nil
}

// Update aplica una actualización parcial. Al cerrar la incidencia se emite
// la notificación de resolución.
func (uc *IncidentUseCase) Update(actorName, id string, in dto.UpdateIncidentRequest) (*dto.IncidentResponse, error) {
	incident, err := uc.incidents.GetByID(id)
	if err != nil {
		return nil, err
	}
	if incident == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil && !incidentStatuses[*in.Status] {
		return nil, domain.ErrInvalidStatus
	}
	if in.Priority != nil && !incidentPriorities[*in.Priority] {
		return nil, domain.ErrInvalidInput
	}

	wasClosed := incident.Status == entity.IncidentClosed
	if in.Title != nil {
		incident.Title = *in.Title
	}
	if in.Description != nil {
		incident.Description = *in.Description
	}
	if in.Priority != nil {
		incident.Priority = *in.Priority
	}
	if in.Status != nil {
		incident.Status = *in.Status
	}
	if in.AssignedTo != nil {
		incident.AssignedTo = *in.AssignedTo
	}
	incident.UpdatedAt = time.Now().UTC()

	if err := uc.incidents.Update(incident); err != nil {
		return nil, err
	}

	if !wasClosed && incident.Status == entity.IncidentClosed {
		notif := &entity.Notification{
			ID:          uuid.New().String(),
			UserID:      entity.NotificationBroadcast,
			Title:       "Incidencia resuelta",
			Message:     fmt.Sprintf("%s ha cerrado la incidencia: %s", actorName, incident.Title),
			Type:        entity.NotifIncidentResolved,
			RelatedID:   incident.ID,
			RelatedType: entity.RelatedIncident,
			CreatedAt:   incident.UpdatedAt,
		}
		_ = uc.notifs.Create(notif)
	}

	return toIncidentResponse(incident), nil
}

// AddComment añade un comentario a la incidencia.
func (uc *IncidentUseCase) AddComment(actorID, actorName, incidentID string, in dto.AddCommentRequest) (*dto.CommentResponse, error) {
	if in.Comment == "" {
		return nil, domain.ErrInvalidInput
	}
	incident, err := uc.incidents.GetByID(incidentID)
	if err != nil {
		return nil, err
	}
	if incident == nil {
		return nil, domain.ErrNotFound
	}
	comment := &entity.IncidentComment{
		ID:         uuid.New().String(),
		IncidentID: incidentID,
		Comment:    in.Comment,
		UserID:     actorID,
		UserName:   actorName,
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.incidents.AddComment(comment); err != nil {
		return nil, err
	}
	return toCommentResponse(comment), nil
}

// ListComments lista los comentarios de la incidencia en orden cronológico.
func (uc *IncidentUseCase) ListComments(incidentID string) ([]*dto.CommentResponse, error) {
	comments, err := uc.incidents.ListComments(incidentID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}
	return out, nil
}

func toIncidentResponse(i *entity.Incident) *dto.IncidentResponse {
	if i == nil {
		return nil
	}
	return &dto.IncidentResponse{
		ID:          i.ID,
		ClientID:    i.ClientID,
		Title:       i.Title,
		Description: i.Description,
		Priority:    i.Priority,
		Type:        i.Type,
		Status:      i.Status,
		AssignedTo:  i.AssignedTo,
		CreatedBy:   i.CreatedBy,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func toCommentResponse(c *entity.IncidentComment) *dto.CommentResponse {
	if c == nil {
		return nil
	}
	return &dto.CommentResponse{
		ID:         c.ID,
		IncidentID: c.IncidentID,
		Comment:    c.Comment,
		UserID:     c.UserID,
		UserName:   c.UserName,
		CreatedAt:  c.CreatedAt,
	}
}
