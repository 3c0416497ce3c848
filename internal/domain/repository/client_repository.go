package repository

import "github.com/hipnotik-level/ventas-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	// GetByPhone búsqueda exacta por teléfono, usada para deduplicar al crear.
	GetByPhone(phone string) (*entity.Client, error)
	List(search string, limit, offset int) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
