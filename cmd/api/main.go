package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/hipnotik-level/ventas-api/internal/application/analytics"
	"github.com/hipnotik-level/ventas-api/internal/application/auth"
	"github.com/hipnotik-level/ventas-api/internal/application/export"
	"github.com/hipnotik-level/ventas-api/internal/application/usecase"
	infrapdf "github.com/hipnotik-level/ventas-api/internal/infrastructure/pdf"
	"github.com/hipnotik-level/ventas-api/internal/infrastructure/postgres"
	httpRouter "github.com/hipnotik-level/ventas-api/internal/interfaces/http"
	"github.com/hipnotik-level/ventas-api/pkg/config"
	"github.com/hipnotik-level/ventas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

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
	fichajeRepo := postgres.NewFichajeRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(clientRepo, saleRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, clientRepo, packRepo, userRepo, notificationRepo)
	packUC := usecase.NewPackUseCase(packRepo)
	calculatorUC := usecase.NewCalculatorUseCase(packRepo)
	incidentUC := usecase.NewIncidentUseCase(incidentRepo, clientRepo, notificationRepo)
	objectiveUC := usecase.NewObjectiveUseCase(objectiveRepo)
	fichajeUC := usecase.NewFichajeUseCase(fichajeRepo, userRepo)
	contactUC := usecase.NewContactUseCase(contactRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, saleRepo, incidentRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, objectiveRepo, userRepo)

	// PDF: informe de ventas descargable
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	exportUC := export.NewExportUseCase(saleRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ventas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ClientUC:       clientUC,
		SaleUC:         saleUC,
		PackUC:         packUC,
		CalculatorUC:   calculatorUC,
		IncidentUC:     incidentUC,
		ObjectiveUC:    objectiveUC,
		FichajeUC:      fichajeUC,
		ContactUC:      contactUC,
		NotificationUC: notificationUC,
		DashboardUC:    dashboardUC,
		ExportUC:       exportUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
