package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin = "SuperAdmin"
	RoleEmpleado   = "Empleado"
)

// MaxUsers límite de cuentas del sistema: 1 SuperAdmin + 4 Empleados.
const MaxUsers = 5

// User representa un usuario del equipo de ventas.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // SuperAdmin, Empleado
	Language     string // es, ca, en
	CreatedAt    time.Time
	IsDemo       bool
}
