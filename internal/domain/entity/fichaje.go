package entity

import "time"

// Tipos de fichaje.
const (
	FichajeEntrada = "Entrada"
	FichajeSalida  = "Salida"
)

// Fichaje evento de control horario de un empleado.
type Fichaje struct {
	ID        string
	UserID    string
	Type      string // Entrada, Salida
	Timestamp time.Time
}
