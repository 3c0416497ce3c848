package repository

import "github.com/hipnotik-level/ventas-api/internal/domain/entity"

// PackRepository define el puerto de persistencia para Pack.
type PackRepository interface {
	Create(pack *entity.Pack) error
	GetByID(id string) (*entity.Pack, error)
	// List devuelve el catálogo; con activeOnly solo los packs activos.
	List(activeOnly bool) ([]*entity.Pack, error)
	// FindActiveByType packs activos de un tipo dado, para el recomendador
	// y el configurador. Con packType vacío devuelve todos los activos.
	FindActiveByType(packType string) ([]*entity.Pack, error)
	Update(pack *entity.Pack) error
	Delete(id string) error
}
