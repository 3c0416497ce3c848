package dto

// CompanyBreakdownDTO ventas por operadora con porcentaje sobre el total
// (0 si el total es 0, redondeado a 1 decimal).
type CompanyBreakdownDTO struct {
	Company    string  `json:"company"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// StatusBreakdownDTO ventas por estado.
type StatusBreakdownDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// IncidentBacklogDTO recuento de incidencias. Over48h cuenta las abiertas o
// en proceso creadas hace más de 48 horas.
type IncidentBacklogDTO struct {
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Closed     int `json:"closed"`
	Over48h    int `json:"over_48h"`
}

// ObjectiveProjectionDTO proyección lineal a fin de mes (mes fijo de 30 días).
type ObjectiveProjectionDTO struct {
	ProjectedTotal int  `json:"projected_total"`
	ProjectedGap   int  `json:"projected_gap"`
	WillMeet       bool `json:"will_meet"`
}

// ObjectiveProgressDTO progreso del objetivo del mes en curso.
// Status es el semáforo: green / yellow / red.
type ObjectiveProgressDTO struct {
	Target        int                     `json:"target"`
	Current       int                     `json:"current"`
	ProgressPct   float64                 `json:"progress_pct"`
	ExpectedDaily float64                 `json:"expected_daily"`
	Status        string                  `json:"status"`
	Projection    *ObjectiveProjectionDTO `json:"projection"`
}

// DashboardKPIsDTO respuesta de GET /api/dashboard/kpis. Se recalcula entera
// en cada petición; no hay caché ni mantenimiento incremental.
type DashboardKPIsDTO struct {
	SalesToday           int                   `json:"sales_today"`
	SalesTodayTrend      string                `json:"sales_today_trend"`
	SalesYesterday       int                   `json:"sales_yesterday"`
	SalesMonth           int                   `json:"sales_month"`
	SalesMonthTrend      string                `json:"sales_month_trend"`
	SalesLastMonthPeriod int                   `json:"sales_last_month_period"`
	SalesByCompany       []CompanyBreakdownDTO `json:"sales_by_company"`
	SalesByStatus        []StatusBreakdownDTO  `json:"sales_by_status"`
	Incidents            IncidentBacklogDTO    `json:"incidents"`
	Objective            *ObjectiveProgressDTO `json:"objective"`
}

// CompanyCountDTO ventas por operadora, sin porcentaje (ranking).
type CompanyCountDTO struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// RankingEntryDTO posición de un empleado en el ranking mensual.
type RankingEntryDTO struct {
	UserID           string            `json:"user_id"`
	Name             string            `json:"name"`
	SalesMonth       int               `json:"sales_month"`
	SalesToday       int               `json:"sales_today"`
	CompanyBreakdown []CompanyCountDTO `json:"company_breakdown"`
}
