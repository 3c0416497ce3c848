package repository

import (
	"time"

	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
)

// SaleFilter filtros opcionales del listado de ventas. Campos vacíos no filtran.
type SaleFilter struct {
	CreatedBy string // scoping por empleado (rol Empleado)
	Status    string
	Company   string
	ClientID  string
	From      time.Time
	To        time.Time
}

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(filter SaleFilter, limit, offset int) ([]*entity.Sale, error)
	Update(sale *entity.Sale) error
	Delete(id string) error

	// ListIDsByCreator solo los IDs de las ventas de un autor (visibilidad
	// de notificaciones).
	ListIDsByCreator(createdBy string, limit int) ([]string, error)
}
