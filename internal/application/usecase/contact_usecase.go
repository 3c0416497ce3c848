package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/hipnotik-level/ventas-api/internal/application/dto"
	"github.com/hipnotik-level/ventas-api/internal/domain"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

// ContactUseCase agenda de contactos externos.
type ContactUseCase struct {
	contacts repository.ContactRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(contacts repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{contacts: contacts}
}

// Create da de alta un contacto.
func (uc *ContactUseCase) Create(actorID string, in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	contact := &entity.Contact{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Company:   in.Company,
		Phone:     in.Phone,
		WhatsApp:  in.WhatsApp,
		Email:     in.Email,
		Notes:     in.Notes,
		CreatedBy: actorID,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.contacts.Create(contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// List lista la agenda ordenada por nombre, con búsqueda opcional.
func (uc *ContactUseCase) List(search string) ([]*dto.ContactResponse, error) {
	list, err := uc.contacts.List(search)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContactResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toContactResponse(c))
	}
	return out, nil
}

// Delete elimina un contacto (admin).
func (uc *ContactUseCase) Delete(id string) error {
	contact, err := uc.contacts.GetByID(id)
	if err != nil {
		return err
	}
	if contact == nil {
		return domain.ErrNotFound
	}
	return uc.contacts.Delete(id)
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	if c == nil {
		return nil
	}
	return &dto.ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Company:   c.Company,
		Phone:     c.Phone,
		WhatsApp:  c.WhatsApp,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
	}
}
