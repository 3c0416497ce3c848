package dto

import "time"

// CreateContactRequest entrada para crear un contacto de la agenda.
type CreateContactRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email" validate:"omitempty,email"`
	Notes    string `json:"notes"`
}

// ContactResponse salida de un contacto.
type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	WhatsApp  string    `json:"whatsapp,omitempty"`
	Email     string    `json:"email,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
