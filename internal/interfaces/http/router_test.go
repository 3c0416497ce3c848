package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/hipnotik-level/ventas-api/internal/application/analytics"
	"github.com/hipnotik-level/ventas-api/internal/application/usecase"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
	apphttp "github.com/hipnotik-level/ventas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de lectura para el dashboard y los objetivos
// ──────────────────────────────────────────────────────────────────────────────

type stubAnalyticsRepo struct{}

func (stubAnalyticsRepo) CountSales(context.Context, time.Time, time.Time) (int, error) {
	return 0, nil
}
func (stubAnalyticsRepo) CountSalesByEmployee(context.Context, time.Time, time.Time) (map[string]int, error) {
	return nil, nil
}
func (stubAnalyticsRepo) SalesByCompany(context.Context) ([]repository.CompanyCount, error) {
	return nil, nil
}
func (stubAnalyticsRepo) SalesByCompanyForEmployee(context.Context, string) ([]repository.CompanyCount, error) {
	return nil, nil
}
func (stubAnalyticsRepo) SalesByStatus(context.Context) ([]repository.StatusCount, error) {
	return nil, nil
}
func (stubAnalyticsRepo) IncidentSummary(context.Context, time.Time) (repository.IncidentCounts, error) {
	return repository.IncidentCounts{}, nil
}

type stubObjectiveRepo struct{}

func (stubObjectiveRepo) Create(*entity.Objective) error { return nil }
func (stubObjectiveRepo) GetByID(string) (*entity.Objective, error) { return nil, nil }
func (stubObjectiveRepo) GetByMonthYear(int, int) (*entity.Objective, error) { return nil, nil }
func (stubObjectiveRepo) ExistsForMonth(int, int) (bool, error) { return false, nil }
func (stubObjectiveRepo) List() ([]*entity.Objective, error) { return nil, nil }
func (stubObjectiveRepo) Update(*entity.Objective) error { return nil }
func (stubObjectiveRepo) Delete(string) error { return nil }

type stubUserRepo struct{}

func (stubUserRepo) Create(*entity.User) error { return nil }
func (stubUserRepo) GetByID(string) (*entity.User, error) { return nil, nil }
func (stubUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (stubUserRepo) Update(*entity.User) error { return nil }
func (stubUserRepo) Delete(string) error { return nil }
func (stubUserRepo) List() ([]*entity.User, error) { return nil, nil }
func (stubUserRepo) ListByRole(string) ([]*entity.User, error) { return nil, nil }
func (stubUserRepo) CountAll() (int, error) { return 0, nil }

// buildRouterApp registra el router real con dobles de lectura. Solo se
// ejercitan las rutas de dashboard y objetivos; el resto de handlers queda
// registrado pero sin invocar.
func buildRouterApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ObjectiveUC: usecase.NewObjectiveUseCase(stubObjectiveRepo{}),
		DashboardUC: appanalytics.NewDashboardUseCase(stubAnalyticsRepo{}, stubObjectiveRepo{}, stubUserRepo{}),
		JWTSecret:   testJWTSecret,
	})
	return app
}

func getWithRole(t *testing.T, app *fiber.App, path, role string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardas de rol por ruta
// ──────────────────────────────────────────────────────────────────────────────

// El dashboard es de cualquier usuario autenticado, no solo de SuperAdmin.
func TestRouter_DashboardAccesibleParaEmpleado(t *testing.T) {
	app := buildRouterApp()

	resp := getWithRole(t, app, "/api/dashboard/kpis", entity.RoleEmpleado)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un Empleado debe poder consultar los KPIs del dashboard")

	resp2 := getWithRole(t, app, "/api/dashboard/ranking", entity.RoleEmpleado)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode,
		"un Empleado debe poder consultar el ranking")
}

// El listado de objetivos es de SuperAdmin.
func TestRouter_ObjetivosListadoSoloSuperAdmin(t *testing.T) {
	app := buildRouterApp()

	resp := getWithRole(t, app, "/api/objectives", entity.RoleEmpleado)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un Empleado no debe poder listar los objetivos")

	resp2 := getWithRole(t, app, "/api/objectives", entity.RoleSuperAdmin)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

// El objetivo del mes en curso sigue abierto a cualquier autenticado.
func TestRouter_ObjetivoActualAccesibleParaEmpleado(t *testing.T) {
	app := buildRouterApp()

	resp := getWithRole(t, app, "/api/objectives/current", entity.RoleEmpleado)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
