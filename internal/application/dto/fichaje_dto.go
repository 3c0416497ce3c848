package dto

import "time"

// CreateFichajeRequest entrada de un evento de fichaje.
type CreateFichajeRequest struct {
	Type string `json:"type" validate:"required,oneof=Entrada Salida"`
}

// FichajeResponse salida de un evento de fichaje.
type FichajeResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// EmployeeFichajeSummary estado y horas de hoy de un empleado (vista admin).
// Status es "Fichado" si su último evento de hoy es una Entrada, si no
// "No fichado". HoursToday incluye el intervalo abierto en curso.
type EmployeeFichajeSummary struct {
	UserID             string     `json:"user_id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Status             string     `json:"status"`
	HoursToday         float64    `json:"hours_today"`
	EntryTime          *time.Time `json:"entry_time"`
	FichajesCountToday int        `json:"fichajes_count_today"`
}

// FichajeHistoryDay resumen de fichajes de un día concreto.
type FichajeHistoryDay struct {
	Date       string   `json:"date"` // YYYY-MM-DD
	Entries    []string `json:"entries"`
	Exits      []string `json:"exits"`
	TotalHours float64  `json:"total_hours"`
}

// FichajeHistoryResponse historial diario de un empleado (vista admin).
type FichajeHistoryResponse struct {
	Employee         UserResponse        `json:"employee"`
	PeriodDays       int                 `json:"period_days"`
	History          []FichajeHistoryDay `json:"history"`
	TotalHoursPeriod float64             `json:"total_hours_period"`
}
