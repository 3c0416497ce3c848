package dto

import "time"

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Phone         string `json:"phone" validate:"required,min=6,max=20"`
	Email         string `json:"email" validate:"omitempty,email"`
	City          string `json:"city" validate:"omitempty,max=100"`
	Address       string `json:"address" validate:"omitempty,max=300"`
	DNI           string `json:"dni" validate:"omitempty,max=20"`
	InternalNotes string `json:"internal_notes" validate:"omitempty,max=2000"`
}

// UpdateClientRequest actualización parcial; nil = sin cambio.
type UpdateClientRequest struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	City          *string `json:"city"`
	Address       *string `json:"address"`
	DNI           *string `json:"dni"`
	InternalNotes *string `json:"internal_notes"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	City          string    `json:"city,omitempty"`
	Address       string    `json:"address,omitempty"`
	DNI           string    `json:"dni,omitempty"`
	InternalNotes string    `json:"internal_notes,omitempty"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ClientSalesResponse ventas de un cliente con agregados.
type ClientSalesResponse struct {
	Sales      []SaleResponse `json:"sales"`
	TotalScore int            `json:"total_score"`
	Count      int            `json:"count"`
}
