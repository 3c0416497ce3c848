package repository

import (
	"context"
	"time"
)

// CompanyCount ventas agrupadas por operadora.
type CompanyCount struct {
	Company string
	Count   int
}

// StatusCount ventas agrupadas por estado.
type StatusCount struct {
	Status string
	Count  int
}

// IncidentCounts recuento de incidencias por estado. OpenOver48h cuenta las
// abiertas o en proceso con más de 48 horas de antigüedad.
type IncidentCounts struct {
	Open        int
	InProgress  int
	Closed      int
	OpenOver48h int
}

// AnalyticsRepository define las consultas de lectura del dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// CountSales número de ventas creadas en [from, to).
	CountSales(ctx context.Context, from, to time.Time) (int, error)

	// CountSalesByEmployee ventas creadas en [from, to) agrupadas por autor.
	CountSalesByEmployee(ctx context.Context, from, to time.Time) (map[string]int, error)

	// SalesByCompany todas las ventas agrupadas por operadora (sin ventana:
	// el desglose del dashboard es histórico completo).
	SalesByCompany(ctx context.Context) ([]CompanyCount, error)

	// SalesByCompanyForEmployee desglose histórico por operadora de un autor.
	SalesByCompanyForEmployee(ctx context.Context, userID string) ([]CompanyCount, error)

	// SalesByStatus todas las ventas agrupadas por estado.
	SalesByStatus(ctx context.Context) ([]StatusCount, error)

	// IncidentSummary recuentos de incidencias por estado a fecha now.
	IncidentSummary(ctx context.Context, now time.Time) (IncidentCounts, error)
}
