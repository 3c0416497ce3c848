package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de lectura del dashboard. Solo hace SELECT.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountSales número de ventas creadas en [from, to). Un to cero deja el
// intervalo abierto por arriba.
func (r *AnalyticsRepo) CountSales(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM sales
		WHERE created_at >= $1 AND ($2::timestamptz IS NULL OR created_at < $2)`
	if err := r.q.QueryRow(ctx, query, from, nullableTime(to)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return count, nil
}

// CountSalesByEmployee ventas creadas en [from, to) agrupadas por autor.
func (r *AnalyticsRepo) CountSalesByEmployee(ctx context.Context, from, to time.Time) (map[string]int, error) {
	query := `
		SELECT created_by, COUNT(*) FROM sales
		WHERE created_at >= $1 AND ($2::timestamptz IS NULL OR created_at < $2)
		GROUP BY created_by`
	rows, err := r.q.Query(ctx, query, from, nullableTime(to))
	if err != nil {
		return nil, fmt.Errorf("count sales by employee: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			userID string
			count  int
		)
		if err := rows.Scan(&userID, &count); err != nil {
			return nil, fmt.Errorf("scan employee count: %w", err)
		}
		counts[userID] = count
	}
	return counts, rows.Err()
}

// SalesByCompany desglose histórico de ventas por operadora.
func (r *AnalyticsRepo) SalesByCompany(ctx context.Context) ([]repository.CompanyCount, error) {
	query := `SELECT company, COUNT(*) FROM sales GROUP BY company ORDER BY COUNT(*) DESC`
	return r.companyCounts(ctx, query)
}

// SalesByCompanyForEmployee desglose histórico por operadora de un autor.
func (r *AnalyticsRepo) SalesByCompanyForEmployee(ctx context.Context, userID string) ([]repository.CompanyCount, error) {
	query := `
		SELECT company, COUNT(*) FROM sales
		WHERE created_by = $1 GROUP BY company ORDER BY COUNT(*) DESC`
	return r.companyCounts(ctx, query, userID)
}

// SalesByStatus desglose histórico de ventas por estado.
func (r *AnalyticsRepo) SalesByStatus(ctx context.Context) ([]repository.StatusCount, error) {
	query := `SELECT status, COUNT(*) FROM sales GROUP BY status ORDER BY COUNT(*) DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sales by status: %w", err)
	}
	defer rows.Close()

	var counts []repository.StatusCount
	for rows.Next() {
		var sc repository.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

// IncidentSummary recuentos de incidencias por estado. Las abiertas o en
// proceso creadas hace más de 48 horas cuentan además como OpenOver48h.
func (r *AnalyticsRepo) IncidentSummary(ctx context.Context, now time.Time) (repository.IncidentCounts, error) {
	var counts repository.IncidentCounts
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3),
			COUNT(*) FILTER (WHERE status IN ($1, $2) AND created_at < $4)
		FROM incidents`
	err := r.q.QueryRow(ctx, query,
		entity.IncidentOpen, entity.IncidentInProgress, entity.IncidentClosed,
		now.Add(-48*time.Hour),
	).Scan(&counts.Open, &counts.InProgress, &counts.Closed, &counts.OpenOver48h)
	if err != nil {
		return repository.IncidentCounts{}, fmt.Errorf("incident summary: %w", err)
	}
	return counts, nil
}

func (r *AnalyticsRepo) companyCounts(ctx context.Context, query string, args ...any) ([]repository.CompanyCount, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sales by company: %w", err)
	}
	defer rows.Close()

	var counts []repository.CompanyCount
	for rows.Next() {
		var cc repository.CompanyCount
		if err := rows.Scan(&cc.Company, &cc.Count); err != nil {
			return nil, fmt.Errorf("scan company count: %w", err)
		}
		counts = append(counts, cc)
	}
	return counts, rows.Err()
}
