package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/hipnotik-level/ventas-api/internal/application/analytics"
	"github.com/hipnotik-level/ventas-api/internal/application/auth"
	"github.com/hipnotik-level/ventas-api/internal/application/export"
	"github.com/hipnotik-level/ventas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ClientUC       *usecase.ClientUseCase
	SaleUC         *usecase.SaleUseCase
	PackUC         *usecase.PackUseCase
	CalculatorUC   *usecase.CalculatorUseCase
	IncidentUC     *usecase.IncidentUseCase
	ObjectiveUC    *usecase.ObjectiveUseCase
	FichajeUC      *usecase.FichajeUseCase
	ContactUC      *usecase.ContactUseCase
	NotificationUC *usecase.NotificationUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	ExportUC       *export.ExportUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro y login públicos; /me requiere token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireSuperAdmin()

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Get("/:id/sales", clientHandler.Sales)

	// Sales (protegido; /statuses antes que /:id)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.AuthUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/statuses", saleHandler.Statuses)
	sales.Get("/:id", saleHandler.Detail)
	sales.Patch("/:id/status", saleHandler.UpdateStatus)
	sales.Put("/:id", saleHandler.Update)

	// Packs (lectura protegida; escrituras de SuperAdmin)
	packs := protected.Group("/packs")
	packHandler := NewPackHandler(deps.PackUC)
	packs.Get("/", packHandler.List)
	packs.Get("/:id", packHandler.GetByID)
	packs.Post("/", admin, packHandler.Create)
	packs.Put("/:id", admin, packHandler.Update)
	packs.Delete("/:id", admin, packHandler.Delete)

	// Calculator (protegido)
	calculator := protected.Group("/calculator")
	calculatorHandler := NewCalculatorHandler(deps.CalculatorUC)
	calculator.Get("/recommendations", calculatorHandler.Recommend)
	calculator.Post("/configure", calculatorHandler.Configure)

	// Incidents (protegido; la edición es de SuperAdmin)
	incidents := protected.Group("/incidents")
	incidentHandler := NewIncidentHandler(deps.IncidentUC, deps.AuthUC)
	incidents.Post("/", incidentHandler.Create)
	incidents.Get("/", incidentHandler.List)
	incidents.Put("/:id", admin, incidentHandler.Update)
	incidents.Post("/:id/comments", incidentHandler.AddComment)
	incidents.Get("/:id/comments", incidentHandler.ListComments)

	// Objectives (listado y creación de SuperAdmin; el objetivo del mes en
	// curso es visible para cualquier usuario autenticado)
	objectives := protected.Group("/objectives")
	objectiveHandler := NewObjectiveHandler(deps.ObjectiveUC)
	objectives.Get("/", admin, objectiveHandler.List)
	objectives.Get("/current", objectiveHandler.Current)
	objectives.Post("/", admin, objectiveHandler.Create)

	// Fichajes (protegido; vistas de administración de SuperAdmin)
	fichajes := protected.Group("/fichajes")
	fichajeHandler := NewFichajeHandler(deps.FichajeUC)
	fichajes.Post("/", fichajeHandler.Check)
	fichajes.Get("/", fichajeHandler.List)
	fichajes.Get("/admin/today", admin, fichajeHandler.TodaySummary)
	fichajes.Get("/admin/history/:userId", admin, fichajeHandler.History)

	// Contacts (protegido; borrado de SuperAdmin)
	contacts := protected.Group("/contacts")
	contactHandler := NewContactHandler(deps.ContactUC)
	contacts.Post("/", contactHandler.Create)
	contacts.Get("/", contactHandler.List)
	contacts.Delete("/:id", admin, contactHandler.Delete)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Put("/read-all", notificationHandler.MarkAllRead)
	notifications.Put("/:id/read", notificationHandler.MarkRead)

	// Dashboard (cualquier usuario autenticado)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/kpis", dashboardHandler.GetKPIs)
	dashboard.Get("/ranking", dashboardHandler.GetRanking)

	// Exports (SuperAdmin)
	exports := protected.Group("/export", admin)
	exportHandler := NewExportHandler(deps.ExportUC)
	exports.Get("/sales/csv", exportHandler.SalesCSV)
	exports.Get("/sales/pdf", exportHandler.SalesPDF)
}
