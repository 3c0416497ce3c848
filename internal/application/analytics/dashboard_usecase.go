package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hipnotik-level/ventas-api/internal/application/dto"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

// DashboardUseCase construye los KPIs y el ranking del equipo. Todo se
// recalcula en cada petición a partir del estado persistido: sin caché y sin
// transacción entre consultas (una instantánea rota es aceptable).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	objectiveRepo repository.ObjectiveRepository
	userRepo      repository.UserRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	objectiveRepo repository.ObjectiveRepository,
	userRepo repository.UserRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		objectiveRepo: objectiveRepo,
		userRepo:      userRepo,
	}
}

// GetKPIs construye el DashboardKPIsDTO.
//
// Consultas en paralelo:
//  1. recuentos por ventana (hoy, ayer, mes, mismo tramo del mes anterior)
//  2. desglose por operadora (histórico)
//  3. desglose por estado (histórico)
//  4. resumen de incidencias
func (uc *DashboardUseCase) GetKPIs(ctx context.Context) (*dto.DashboardKPIsDTO, error) {
	w := NewWindows(time.Now().UTC())

	type countsResult struct {
		today, yesterday, month, lastMonthPeriod int
		err                                      error
	}
	type companyResult struct {
		counts []repository.CompanyCount
		err    error
	}
	type statusResult struct {
		counts []repository.StatusCount
		err    error
	}
	type incidentsResult struct {
		counts repository.IncidentCounts
		err    error
	}

	countsCh := make(chan countsResult, 1)
	companyCh := make(chan companyResult, 1)
	statusCh := make(chan statusResult, 1)
	incidentsCh := make(chan incidentsResult, 1)

	go func() {
		var r countsResult
		windows := []struct {
			from, to time.Time
			dst      *int
		}{
			{w.TodayStart, time.Time{}, &r.today},
			{w.YesterdayStart, w.TodayStart, &r.yesterday},
			{w.MonthStart, time.Time{}, &r.month},
			{w.LastMonthStart, w.LastMonthSameDay, &r.lastMonthPeriod},
		}
		for _, win := range windows {
			count, err := uc.analyticsRepo.CountSales(ctx, win.from, win.to)
			if err != nil {
				r.err = err
				break
			}
			*win.dst = count
		}
		countsCh <- r
	}()
	go func() {
		counts, err := uc.analyticsRepo.SalesByCompany(ctx)
		companyCh <- companyResult{counts, err}
	}()
	go func() {
		counts, err := uc.analyticsRepo.SalesByStatus(ctx)
		statusCh <- statusResult{counts, err}
	}()
	go func() {
		counts, err := uc.analyticsRepo.IncidentSummary(ctx, w.Now)
		incidentsCh <- incidentsResult{counts, err}
	}()

	counts := <-countsCh
	company := <-companyCh
	status := <-statusCh
	incidents := <-incidentsCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: recuentos de ventas: %w", counts.err)
	}
	if company.err != nil {
		return nil, fmt.Errorf("dashboard: ventas por operadora: %w", company.err)
	}
	if status.err != nil {
		return nil, fmt.Errorf("dashboard: ventas por estado: %w", status.err)
	}
	if incidents.err != nil {
		return nil, fmt.Errorf("dashboard: incidencias: %w", incidents.err)
	}

	objective, err := uc.objectiveRepo.GetByMonthYear(int(w.Now.Month()), w.Now.Year())
	if err != nil {
		return nil, fmt.Errorf("dashboard: objetivo del mes: %w", err)
	}

	return &dto.DashboardKPIsDTO{
		SalesToday:           counts.today,
		SalesTodayTrend:      Trend(counts.today, counts.yesterday),
		SalesYesterday:       counts.yesterday,
		SalesMonth:           counts.month,
		SalesMonthTrend:      Trend(counts.month, counts.lastMonthPeriod),
		SalesLastMonthPeriod: counts.lastMonthPeriod,
		SalesByCompany:       CompanyBreakdown(company.counts),
		SalesByStatus:        StatusBreakdown(status.counts),
		Incidents: dto.IncidentBacklogDTO{
			Open:       incidents.counts.Open,
			InProgress: incidents.counts.InProgress,
			Closed:     incidents.counts.Closed,
			Over48h:    incidents.counts.OpenOver48h,
		},
		Objective: ObjectiveProgress(objective, counts.month, w.Now),
	}, nil
}

// GetRanking ordena a los empleados por ventas del mes en curso, de forma
// estable y descendente, con su desglose histórico por operadora.
func (uc *DashboardUseCase) GetRanking(ctx context.Context) ([]dto.RankingEntryDTO, error) {
	w := NewWindows(time.Now().UTC())

	employees, err := uc.userRepo.ListByRole(entity.RoleEmpleado)
	if err != nil {
		return nil, fmt.Errorf("ranking: empleados: %w", err)
	}
	monthCounts, err := uc.analyticsRepo.CountSalesByEmployee(ctx, w.MonthStart, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("ranking: ventas del mes: %w", err)
	}
	todayCounts, err := uc.analyticsRepo.CountSalesByEmployee(ctx, w.TodayStart, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("ranking: ventas de hoy: %w", err)
	}

	ranking := make([]dto.RankingEntryDTO, 0, len(employees))
	for _, emp := range employees {
		breakdown, err := uc.analyticsRepo.SalesByCompanyForEmployee(ctx, emp.ID)
		if err != nil {
			return nil, fmt.Errorf("ranking: desglose de %s: %w", emp.ID, err)
		}
		companies := make([]dto.CompanyCountDTO, 0, len(breakdown))
		for _, c := range breakdown {
			companies = append(companies, dto.CompanyCountDTO{Company: c.Company, Count: c.Count})
		}
		ranking = append(ranking, dto.RankingEntryDTO{
			UserID:           emp.ID,
			Name:             emp.Name,
			SalesMonth:       monthCounts[emp.ID],
			SalesToday:       todayCounts[emp.ID],
			CompanyBreakdown: companies,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].SalesMonth > ranking[j].SalesMonth
	})
	return ranking, nil
}
