package dto

import "time"

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Type        string    `json:"type"`
	RelatedID   string    `json:"related_id,omitempty"`
	RelatedType string    `json:"related_type,omitempty"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

// UnreadCountResponse recuento de notificaciones no leídas.
type UnreadCountResponse struct {
	Count int `json:"count"`
}
