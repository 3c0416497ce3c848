package repository

import "github.com/hipnotik-level/ventas-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	List() ([]*entity.User, error)
	ListByRole(role string) ([]*entity.User, error)
	// CountAll usado para aplicar el límite de cuentas en el registro.
	CountAll() (int, error)
}
