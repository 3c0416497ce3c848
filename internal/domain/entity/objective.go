package entity

import "time"

// Objective objetivo mensual de ventas del equipo.
// Como máximo existe un Objective por par (month, year); la unicidad se
// comprueba al escribir, no es una restricción de esquema.
type Objective struct {
	ID              string
	Month           int
	Year            int
	TeamTarget      int
	EmployeeTargets map[string]int // opcional, por user_id
	CompanyTargets  map[string]int // opcional, por operadora
	CreatedAt       time.Time
}
