package repository

import (
	"time"

	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
)

// FichajeRepository define el puerto de persistencia para Fichaje.
type FichajeRepository interface {
	Create(fichaje *entity.Fichaje) error
	// ListByUser fichajes de un usuario en [from, to), en orden cronológico.
	ListByUser(userID string, from, to time.Time) ([]*entity.Fichaje, error)
	// ListAll fichajes de todos los usuarios en [from, to), en orden cronológico.
	ListAll(from, to time.Time) ([]*entity.Fichaje, error)
	// LastByUser último fichaje registrado del usuario, o nil si no tiene.
	LastByUser(userID string) (*entity.Fichaje, error)
}
