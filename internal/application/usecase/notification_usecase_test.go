package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hipnotik-level/ventas-api/internal/domain"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memNotificationRepo aplica NotificationScope.Matches, el mismo predicado que
// la implementación SQL traduce a su cláusula WHERE.
type memNotificationRepo struct {
	items []*entity.Notification
}

func (m *memNotificationRepo) Create(n *entity.Notification) error {
	m.items = append(m.items, n)
	return nil
}

func (m *memNotificationRepo) ListVisible(scope repository.NotificationScope, limit int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range m.items {
		if len(out) == limit {
			break
		}
		if scope.Matches(n) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memNotificationRepo) CountUnread(scope repository.NotificationScope) (int, error) {
	count := 0
	for _, n := range m.items {
		if !n.Read && scope.Matches(n) {
			count++
		}
	}
	return count, nil
}

func (m *memNotificationRepo) MarkRead(id string) error {
	for _, n := range m.items {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memNotificationRepo) MarkAllRead(scope repository.NotificationScope) error {
	for _, n := range m.items {
		if scope.Matches(n) {
			n.Read = true
		}
	}
	return nil
}

// stubSaleRepo solo resuelve los IDs de ventas por autor.
type stubSaleRepo struct {
	idsByCreator map[string][]string
}

func (s *stubSaleRepo) Create(*entity.Sale) error { return nil }
func (s *stubSaleRepo) GetByID(string) (*entity.Sale, error) { return nil, nil }
func (s *stubSaleRepo) List(repository.SaleFilter, int, int) ([]*entity.Sale, error) { return nil, nil }
func (s *stubSaleRepo) Update(*entity.Sale) error { return nil }
func (s *stubSaleRepo) Delete(string) error { return nil }

func (s *stubSaleRepo) ListIDsByCreator(createdBy string, _ int) ([]string, error) {
	return s.idsByCreator[createdBy], nil
}

// stubIncidentRepo solo resuelve los IDs de incidencias implicadas.
type stubIncidentRepo struct {
	idsInvolving map[string][]string
}

func (s *stubIncidentRepo) Create(*entity.Incident) error { return nil }
func (s *stubIncidentRepo) GetByID(string) (*entity.Incident, error) { return nil, nil }
func (s *stubIncidentRepo) List(repository.IncidentFilter, int, int) ([]*entity.Incident, error) {
	return nil, nil
}
func (s *stubIncidentRepo) Update(*entity.Incident) error { return nil }
func (s *stubIncidentRepo) Delete(string) error { return nil }
func (s *stubIncidentRepo) AddComment(*entity.IncidentComment) error { return nil }
func (s *stubIncidentRepo) ListComments(string) ([]*entity.IncidentComment, error) {
	return nil, nil
}

func (s *stubIncidentRepo) ListIDsInvolving(userID string, _ int) ([]string, error) {
	return s.idsInvolving[userID], nil
}

func broadcastNotif(id, relatedType, relatedID string) *entity.Notification {
	return &entity.Notification{
		ID:          id,
		UserID:      entity.NotificationBroadcast,
		Title:       "aviso",
		Type:        entity.NotifNewSale,
		RelatedID:   relatedID,
		RelatedType: relatedType,
		CreatedAt:   time.Now().UTC(),
	}
}

func buildNotificationUC(notifs *memNotificationRepo, sales map[string][]string, incidents map[string][]string) *NotificationUseCase {
	return NewNotificationUseCase(notifs,
		&stubSaleRepo{idsByCreator: sales},
		&stubIncidentRepo{idsInvolving: incidents})
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibilidad por rol
// ──────────────────────────────────────────────────────────────────────────────

// Un empleado ve la notificación de difusión emitida por su propia venta,
// aunque no esté dirigida a su user_id.
func TestNotificaciones_EmpleadoVeLaDeSuPropiaVenta(t *testing.T) {
	notifs := &memNotificationRepo{items: []*entity.Notification{
		broadcastNotif("n1", entity.RelatedSale, "venta-1"),
	}}
	uc := buildNotificationUC(notifs, map[string][]string{"emp-1": {"venta-1"}}, nil)

	list, err := uc.List("emp-1", entity.RoleEmpleado, 50)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "n1", list[0].ID)

	count, err := uc.UnreadCount("emp-1", entity.RoleEmpleado)
	require.NoError(t, err)
	assert.Equal(t, 1, count.Count)
}

// La venta de otro empleado no es visible.
func TestNotificaciones_EmpleadoNoVeVentasAjenas(t *testing.T) {
	notifs := &memNotificationRepo{items: []*entity.Notification{
		broadcastNotif("n1", entity.RelatedSale, "venta-ajena"),
	}}
	uc := buildNotificationUC(notifs, map[string][]string{"emp-1": {"venta-1"}}, nil)

	list, err := uc.List("emp-1", entity.RoleEmpleado, 50)
	require.NoError(t, err)
	assert.Empty(t, list)

	count, err := uc.UnreadCount("emp-1", entity.RoleEmpleado)
	require.NoError(t, err)
	assert.Equal(t, 0, count.Count)
}

// Las incidencias asignadas al empleado cuentan como propias.
func TestNotificaciones_EmpleadoVeIncidenciaAsignada(t *testing.T) {
	notifs := &memNotificationRepo{items: []*entity.Notification{
		broadcastNotif("n1", entity.RelatedIncident, "inc-1"),
	}}
	uc := buildNotificationUC(notifs, nil, map[string][]string{"emp-1": {"inc-1"}})

	list, err := uc.List("emp-1", entity.RoleEmpleado, 50)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "n1", list[0].ID)
}

// Las dirigidas al user_id del empleado siempre son visibles.
func TestNotificaciones_EmpleadoVeLasDirectas(t *testing.T) {
	directa := broadcastNotif("n1", "", "")
	directa.UserID = "emp-1"
	notifs := &memNotificationRepo{items: []*entity.Notification{directa}}
	uc := buildNotificationUC(notifs, nil, nil)

	list, err := uc.List("emp-1", entity.RoleEmpleado, 50)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

// El SuperAdmin ve todas las notificaciones, sean de quien sean.
func TestNotificaciones_SuperAdminVeTodas(t *testing.T) {
	directa := broadcastNotif("n3", "", "")
	directa.UserID = "emp-2"
	notifs := &memNotificationRepo{items: []*entity.Notification{
		broadcastNotif("n1", entity.RelatedSale, "venta-1"),
		broadcastNotif("n2", entity.RelatedIncident, "inc-1"),
		directa,
	}}
	uc := buildNotificationUC(notifs, nil, nil)

	list, err := uc.List("admin-1", entity.RoleSuperAdmin, 50)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Marcado de leídas
// ──────────────────────────────────────────────────────────────────────────────

// MarkAllRead de un empleado solo toca sus notificaciones visibles.
func TestNotificaciones_MarkAllReadSoloLasVisibles(t *testing.T) {
	notifs := &memNotificationRepo{items: []*entity.Notification{
		broadcastNotif("propia", entity.RelatedSale, "venta-1"),
		broadcastNotif("ajena", entity.RelatedSale, "venta-ajena"),
	}}
	uc := buildNotificationUC(notifs, map[string][]string{"emp-1": {"venta-1"}}, nil)

	require.NoError(t, uc.MarkAllRead("emp-1", entity.RoleEmpleado))

	count, err := uc.UnreadCount("emp-1", entity.RoleEmpleado)
	require.NoError(t, err)
	assert.Equal(t, 0, count.Count)

	// La ajena sigue sin leer (visible para el admin)
	adminCount, err := uc.UnreadCount("admin-1", entity.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, adminCount.Count)
}

func TestNotificaciones_MarkReadInexistente(t *testing.T) {
	uc := buildNotificationUC(&memNotificationRepo{}, nil, nil)
	assert.ErrorIs(t, uc.MarkRead("no-existe"), domain.ErrNotFound)
}
