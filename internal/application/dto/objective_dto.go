package dto

import "time"

// CreateObjectiveRequest entrada para crear el objetivo de un mes. Solo puede
// existir un objetivo por par (month, year).
type CreateObjectiveRequest struct {
	Month           int            `json:"month" validate:"required,min=1,max=12"`
	Year            int            `json:"year" validate:"required,min=2020,max=2100"`
	TeamTarget      int            `json:"team_target" validate:"required,min=1"`
	EmployeeTargets map[string]int `json:"employee_targets"`
	CompanyTargets  map[string]int `json:"company_targets"`
}

// ObjectiveResponse salida de un objetivo mensual.
type ObjectiveResponse struct {
	ID              string         `json:"id"`
	Month           int            `json:"month"`
	Year            int            `json:"year"`
	TeamTarget      int            `json:"team_target"`
	EmployeeTargets map[string]int `json:"employee_targets,omitempty"`
	CompanyTargets  map[string]int `json:"company_targets,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}
