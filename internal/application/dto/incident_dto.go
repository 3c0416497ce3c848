package dto

import "time"

// CreateIncidentRequest entrada para abrir una incidencia.
type CreateIncidentRequest struct {
	ClientID    string `json:"client_id" validate:"required"`
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Priority    string `json:"priority" validate:"required,oneof=Baja Media Alta Crítica"`
	Type        string `json:"type"`
	AssignedTo  string `json:"assigned_to"`
}

// UpdateIncidentRequest actualización parcial; nil = sin cambio.
type UpdateIncidentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	AssignedTo  *string `json:"assigned_to"`
}

// IncidentResponse salida de una incidencia.
type IncidentResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority"`
	Type        string    `json:"type,omitempty"`
	Status      string    `json:"status"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AddCommentRequest entrada para comentar una incidencia.
type AddCommentRequest struct {
	Comment string `json:"comment" validate:"required,min=1,max=2000"`
}

// CommentResponse salida de un comentario de incidencia.
type CommentResponse struct {
	ID         string    `json:"id"`
	IncidentID string    `json:"incident_id"`
	Comment    string    `json:"comment"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	CreatedAt  time.Time `json:"created_at"`
}
