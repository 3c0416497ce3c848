package usecase

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hipnotik-level/ventas-api/internal/application/dto"
	"github.com/hipnotik-level/ventas-api/internal/domain"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

// FichajeUseCase control horario: eventos de entrada/salida y resúmenes admin.
type FichajeUseCase struct {
	fichajes repository.FichajeRepository
	users    repository.UserRepository
}

// NewFichajeUseCase construye el caso de uso.
func NewFichajeUseCase(fichajes repository.FichajeRepository, users repository.UserRepository) *FichajeUseCase {
	return &FichajeUseCase{fichajes: fichajes, users: users}
}

// Check registra un evento de fichaje del usuario autenticado.
func (uc *FichajeUseCase) Check(actorID string, in dto.CreateFichajeRequest) (*dto.FichajeResponse, error) {
	if in.Type != entity.FichajeEntrada && in.Type != entity.FichajeSalida {
		return nil, domain.ErrInvalidInput
	}
	fichaje := &entity.Fichaje{
		ID:        uuid.New().String(),
		UserID:    actorID,
		Type:      in.Type,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.fichajes.Create(fichaje); err != nil {
		return nil, err
	}
	return toFichajeResponse(fichaje), nil
}

// List lista fichajes: un Empleado los suyos, un SuperAdmin los de todos.
// Devuelve los últimos 30 días en orden descendente.
func (uc *FichajeUseCase) List(actorID, actorRole string) ([]*dto.FichajeResponse, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)

	var (
		list []*entity.Fichaje
		err  error
	)
	if actorRole == entity.RoleSuperAdmin {
		list, err = uc.fichajes.ListAll(from, now)
	} else {
		list, err = uc.fichajes.ListByUser(actorID, from, now)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FichajeResponse, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		out = append(out, toFichajeResponse(list[i]))
	}
	return out, nil
}

// TodaySummary vista admin: estado y horas de hoy de cada empleado.
// El estado es "Fichado" si su último evento de hoy es una Entrada; las horas
// incluyen el intervalo abierto en curso.
func (uc *FichajeUseCase) TodaySummary() ([]*dto.EmployeeFichajeSummary, error) {
	now := time.Now().UTC()
	dayStart := now.Truncate(24 * time.Hour)

	employees, err := uc.users.ListByRole(entity.RoleEmpleado)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.EmployeeFichajeSummary, 0, len(employees))
	for _, emp := range employees {
		events, err := uc.fichajes.ListByUser(emp.ID, dayStart, now)
		if err != nil {
			return nil, err
		}

		summary := &dto.EmployeeFichajeSummary{
			UserID:             emp.ID,
			Name:               emp.Name,
			Email:              emp.Email,
			Status:             "No fichado",
			FichajesCountToday: len(events),
		}
		if len(events) > 0 {
			last := events[len(events)-1]
			if last.Type == entity.FichajeEntrada {
				summary.Status = "Fichado"
				ts := last.Timestamp
				summary.EntryTime = &ts
			}
			open := summary.Status == "Fichado"
			summary.HoursToday = round2(workedHours(events, now, open))
		}
		out = append(out, summary)
	}
	return out, nil
}

// History vista admin: historial diario de un empleado en los últimos días
// días, con entradas/salidas como HH:MM y horas por día.
func (uc *FichajeUseCase) History(userID string, days int) (*dto.FichajeHistoryResponse, error) {
	if days <= 0 {
		days = 30
	}
	employee, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now().UTC()
	from := now.Truncate(24 * time.Hour).AddDate(0, 0, -days)
	events, err := uc.fichajes.ListByUser(userID, from, now)
	if err != nil {
		return nil, err
	}

	byDay := map[string]*dto.FichajeHistoryDay{}
	for _, f := range events {
		key := f.Timestamp.Format("2006-01-02")
		day, ok := byDay[key]
		if !ok {
			day = &dto.FichajeHistoryDay{Date: key, Entries: []string{}, Exits: []string{}}
			byDay[key] = day
		}
		hhmm := f.Timestamp.Format("15:04")
		if f.Type == entity.FichajeEntrada {
			day.Entries = append(day.Entries, hhmm)
		} else {
			day.Exits = append(day.Exits, hhmm)
		}
	}

	history := make([]dto.FichajeHistoryDay, 0, len(byDay))
	var totalPeriod float64
	for _, day := range byDay {
		day.TotalHours = round2(pairedHoursHHMM(day.Entries, day.Exits))
		totalPeriod += day.TotalHours
		history = append(history, *day)
	}
	sort.Slice(history, func(i, j int) bool { return history[i].Date > history[j].Date })

	return &dto.FichajeHistoryResponse{
		Employee:         *toUserRef(employee),
		PeriodDays:       days,
		History:          history,
		TotalHoursPeriod: round2(totalPeriod),
	}, nil
}

// workedHours suma las horas de los pares Entrada/Salida del día. Una entrada
// sin salida suma hasta now solo si el empleado sigue fichado (openCounts).
func workedHours(events []*entity.Fichaje, now time.Time, openCounts bool) float64 {
	var entries, exits []time.Time
	for _, f := range events {
		if f.Type == entity.FichajeEntrada {
			entries = append(entries, f.Timestamp)
		} else {
			exits = append(exits, f.Timestamp)
		}
	}
	var hours float64
	for i, entry := range entries {
		if i < len(exits) {
			hours += exits[i].Sub(entry).Hours()
		} else if openCounts {
			hours += now.Sub(entry).Hours()
		}
	}
	return hours
}

// pairedHoursHHMM calcula las horas de un día a partir de marcas HH:MM
// (precisión de minuto, la misma que muestra el historial).
func pairedHoursHHMM(entries, exits []string) float64 {
	var hours float64
	for i, entry := range entries {
		if i >= len(exits) {
			break
		}
		in, err1 := time.Parse("15:04", entry)
		out, err2 := time.Parse("15:04", exits[i])
		if err1 != nil || err2 != nil {
			continue
		}
		hours += out.Sub(in).Hours()
	}
	return hours
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func toFichajeResponse(f *entity.Fichaje) *dto.FichajeResponse {
	if f == nil {
		return nil
	}
	return &dto.FichajeResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		Type:      f.Type,
		Timestamp: f.Timestamp,
	}
}

func toUserRef(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
