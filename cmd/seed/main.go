// seed puebla la base de datos con datos de demostración: el equipo del
// stand, clientes, packs de catálogo, ventas, incidencias y el objetivo del
// mes en curso. Todo lo insertado lleva is_demo = true.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que cmd/api (env / .env).
package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/sales"
	"github.com/hipnotik-level/ventas-api/internal/infrastructure/postgres"
	"github.com/hipnotik-level/ventas-api/pkg/config"
	"github.com/hipnotik-level/ventas-api/pkg/logger"
)

var demoCompanies = []string{"Movistar", "Vodafone", "Orange", "MásMóvil"}

var demoClientNames = []string{
	"Antonio García", "María López", "José Martínez", "Carmen Sánchez",
	"Manuel Pérez", "Ana Gómez", "Francisco Ruiz", "Isabel Díaz",
	"David Hernández", "Laura Jiménez", "Javier Moreno", "Sara Muñoz",
	"Daniel Álvarez", "Paula Romero", "Carlos Alonso", "Lucía Gutiérrez",
	"Miguel Navarro", "Elena Torres", "Pablo Domínguez", "Marta Vázquez",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	packRepo := postgres.NewPackRepository(pool)
	incidentRepo := postgres.NewIncidentRepository(pool)
	objectiveRepo := postgres.NewObjectiveRepository(pool)

	now := time.Now().UTC()
	rng := rand.New(rand.NewSource(now.UnixNano()))

	// 1. Equipo: 1 SuperAdmin + 2 Empleados
	users := []*entity.User{
		demoUser("tai@hipnotiklevel.com", "Tai", entity.RoleSuperAdmin, now),
		demoUser("carlos@hipnotiklevel.com", "Carlos", entity.RoleEmpleado, now),
		demoUser("miguel@hipnotiklevel.com", "Miguel", entity.RoleEmpleado, now),
	}
	for _, u := range users {
		if err := userRepo.Create(u); err != nil {
			log.Warn().Err(err).Str("email", u.Email).Msg("usuario demo no insertado (puede existir ya)")
		}
	}
	admin, employees := users[0], users[1:]

	// 2. Clientes
	clients := make([]*entity.Client, 0, len(demoClientNames))
	for i, name := range demoClientNames {
		c := &entity.Client{
			ID:        uuid.New().String(),
			Name:      name,
			Phone:     fmt.Sprintf("6%08d", 10000000+i*137),
			Email:     fmt.Sprintf("cliente%d@example.com", i+1),
			City:      "Barcelona",
			CreatedBy: admin.ID,
			CreatedAt: now.AddDate(0, 0, -rng.Intn(60)),
			UpdatedAt: now,
			IsDemo:    true,
		}
		if err := clientRepo.Create(c); err != nil {
			log.Fatal().Err(err).Msg("insertar cliente demo")
		}
		clients = append(clients, c)
	}

	// 3. Catálogo de packs
	packs := demoPacks(now)
	for _, p := range packs {
		if err := packRepo.Create(p); err != nil {
			log.Fatal().Err(err).Msg("insertar pack demo")
		}
	}

	// 4. Ventas de los últimos dos meses, con score calculado
	statuses := entity.SaleStatuses
	for i := 0; i < 40; i++ {
		client := clients[rng.Intn(len(clients))]
		pack := packs[rng.Intn(len(packs))]
		author := employees[rng.Intn(len(employees))]
		createdAt := now.AddDate(0, 0, -rng.Intn(60))
		s := &entity.Sale{
			ID:        uuid.New().String(),
			ClientID:  client.ID,
			Company:   pack.Company,
			PackType:  pack.Type,
			PackID:    pack.ID,
			PackName:  pack.Name,
			PackPrice: pack.Price,
			Status:    statuses[rng.Intn(len(statuses))],
			CreatedBy: author.ID,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
			IsDemo:    true,
		}
		if pack.FiberSpeedMbps > 0 {
			s.Fiber = &entity.FiberInfo{Address: client.Address, SpeedMbps: pack.FiberSpeedMbps}
		}
		if pack.MobileGB > 0 {
			s.MobileLines = []entity.MobileLine{{
				Number: fmt.Sprintf("6%08d", 20000000+i),
				Type:   entity.LineTypePostpago,
				GBData: pack.MobileGB,
			}}
		}
		s.Score = sales.Score(*s)
		if err := saleRepo.Create(s); err != nil {
			log.Fatal().Err(err).Msg("insertar venta demo")
		}
	}

	// 5. Incidencias abiertas sobre clientes
	priorities := []string{entity.PriorityBaja, entity.PriorityMedia, entity.PriorityAlta}
	for i := 0; i < 5; i++ {
		client := clients[rng.Intn(len(clients))]
		createdAt := now.AddDate(0, 0, -rng.Intn(10))
		inc := &entity.Incident{
			ID:          uuid.New().String(),
			ClientID:    client.ID,
			Title:       fmt.Sprintf("Incidencia de instalación %d", i+1),
			Description: "Retraso en la instalación de fibra",
			Priority:    priorities[rng.Intn(len(priorities))],
			Type:        "Instalación",
			Status:      entity.IncidentOpen,
			CreatedBy:   employees[rng.Intn(len(employees))].ID,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
			IsDemo:      true,
		}
		if err := incidentRepo.Create(inc); err != nil {
			log.Fatal().Err(err).Msg("insertar incidencia demo")
		}
	}

	// 6. Objetivo del mes en curso
	objective := &entity.Objective{
		ID:         uuid.New().String(),
		Month:      int(now.Month()),
		Year:       now.Year(),
		TeamTarget: 50,
		EmployeeTargets: map[string]int{
			employees[0].ID: 25,
			employees[1].ID: 25,
		},
		CreatedAt: now,
	}
	if err := objectiveRepo.Create(objective); err != nil {
		log.Warn().Err(err).Msg("objetivo demo no insertado (puede existir ya)")
	}

	log.Info().
		Int("usuarios", len(users)).
		Int("clientes", len(clients)).
		Int("packs", len(packs)).
		Msg("datos de demostración insertados")
}

func demoUser(email, name, role string, now time.Time) *entity.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Language:     "es",
		CreatedAt:    now,
		IsDemo:       true,
	}
}

func demoPacks(now time.Time) []*entity.Pack {
	return []*entity.Pack{
		{
			ID: uuid.New().String(), Company: "Movistar", Name: "Fusión Total",
			Type: entity.PackTypeFibraMovilTV, Price: decimal.NewFromInt(85),
			Features: "Fibra 1Gb + línea ilimitada + TV deportes", Active: true,
			CreatedAt: now.AddDate(0, 0, -90), IsDemo: true,
			Category: "bundle_tv", FiberSpeedMbps: 1000, MobileGB: 100,
			MinutesType: "ilimitadas", LinesIncluded: 2, AdditionalLinesSupported: true,
			TVSupported: true, TVPackageType: "sports",
		},
		{
			ID: uuid.New().String(), Company: "Vodafone", Name: "One Ilimitada",
			Type: entity.PackTypeFibraMovil, Price: decimal.NewFromInt(60),
			Features: "Fibra 600Mb + línea ilimitada", Active: true,
			CreatedAt: now.AddDate(0, 0, -45), IsDemo: true,
			Category: "bundle", FiberSpeedMbps: 600, MobileGB: 60,
			MinutesType: "ilimitadas", LinesIncluded: 1, AdditionalLinesSupported: true,
		},
		{
			ID: uuid.New().String(), Company: "Orange", Name: "Love Fibra",
			Type: entity.PackTypeSoloFibra, Price: decimal.NewFromInt(35),
			Features: "Fibra 500Mb", Active: true,
			CreatedAt: now.AddDate(0, 0, -20), IsDemo: true,
			Category: "fiber_only", FiberSpeedMbps: 500,
		},
		{
			ID: uuid.New().String(), Company: "MásMóvil", Name: "Móvil 40GB",
			Type: entity.PackTypeSoloMovil, Price: decimal.NewFromInt(20),
			Features: "40GB + llamadas ilimitadas", Active: true,
			Observations: "Solo clientes de otras compañías",
			CreatedAt:    now.AddDate(0, 0, -5), IsDemo: true,
			Category: "mobile_only", MobileGB: 40, MinutesType: "ilimitadas", LinesIncluded: 1,
		},
		{
			ID: uuid.New().String(), Company: "Movistar", Name: "Fibra 300 Básica",
			Type: entity.PackTypeSoloFibra, Price: decimal.NewFromInt(30),
			Features: "Fibra 300Mb", Active: false,
			CreatedAt: now.AddDate(0, 0, -200), IsDemo: true,
			Category: "fiber_only", FiberSpeedMbps: 300,
		},
	}
}
