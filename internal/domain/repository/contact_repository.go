package repository

import "github.com/hipnotik-level/ventas-api/internal/domain/entity"

// ContactRepository define el puerto de persistencia para Contact (agenda).
type ContactRepository interface {
	Create(contact *entity.Contact) error
	GetByID(id string) (*entity.Contact, error)
	List(search string) ([]*entity.Contact, error)
	Update(contact *entity.Contact) error
	Delete(id string) error
}
