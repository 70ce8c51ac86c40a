package routes

import (
	"barangay-hub/internal/adapters/http/handlers"
	"barangay-hub/internal/adapters/http/middleware"
	"barangay-hub/internal/adapters/persistence/repositories"
	"barangay-hub/internal/config"
	"barangay-hub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	residentRepo := repositories.NewResidentRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	complaintRepo := repositories.NewComplaintRepository(db)
	announcementRepo := repositories.NewAnnouncementRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	residentService := services.NewResidentService(residentRepo, activityRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(authService)
	residentHandler := handlers.NewResidentHandler(residentService)
	contactHandler := handlers.NewContactHandler(contactRepo)
	complaintHandler := handlers.NewComplaintHandler(complaintRepo)
	announcementHandler := handlers.NewAnnouncementHandler(announcementRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	setupUserRoutes(app, authHandler)
	setupAdminRoutes(app, adminHandler, cfg)
	setupResidentRoutes(app, residentHandler)
	setupContactRoutes(app, contactHandler)
	setupComplaintRoutes(app, complaintHandler)
	setupAnnouncementRoutes(app, announcementHandler)
	setupDashboardRoutes(app, dashboardHandler, cfg)
}

// setupUserRoutes configures account and login routes
func setupUserRoutes(app *fiber.App, handler *handlers.AuthHandler) {
	users := app.Group("/users")

	users.Post("/", middleware.AuthRateLimiter(), handler.Register)
	users.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	users.Post("/login-with-qr", middleware.AuthRateLimiter(), handler.LoginWithQR)
	users.Get("/:username/qr", handler.GetQRCode)
}

// setupAdminRoutes configures the approval queue (admin token required)
func setupAdminRoutes(app *fiber.App, handler *handlers.AdminHandler, cfg *config.Config) {
	admin := app.Group("/admin/requests")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminOnly())

	admin.Get("/", handler.ListRequests)
	admin.Put("/:username/approve", handler.Decide)
}

// setupResidentRoutes configures resident record routes. Static paths
// must be registered before the :id routes.
func setupResidentRoutes(app *fiber.App, handler *handlers.ResidentHandler) {
	residents := app.Group("/residents")

	residents.Post("/", handler.Create)
	residents.Post("/bulk", handler.BulkCreate)
	residents.Get("/", handler.List)
	residents.Get("/recent-activities", handler.RecentActivities)
	residents.Get("/export", handler.Export)
	residents.Get("/:id", handler.Get)
	residents.Put("/:id", handler.Update)
	residents.Delete("/:id", handler.Delete)
}

// setupContactRoutes configures emergency contact routes
func setupContactRoutes(app *fiber.App, handler *handlers.ContactHandler) {
	contacts := app.Group("/emergency-contacts")

	contacts.Post("/", handler.Create)
	contacts.Get("/", handler.List)
	contacts.Get("/export", handler.Export)
}

// setupComplaintRoutes configures complaint routes
func setupComplaintRoutes(app *fiber.App, handler *handlers.ComplaintHandler) {
	complaints := app.Group("/complaints")

	complaints.Post("/", handler.Create)
	complaints.Get("/", handler.List)
	complaints.Put("/:id", handler.UpdateStatus)
	complaints.Delete("/:id", handler.Delete)
}

// setupAnnouncementRoutes configures announcement routes
func setupAnnouncementRoutes(app *fiber.App, handler *handlers.AnnouncementHandler) {
	announcements := app.Group("/announcements")

	announcements.Post("/", handler.Create)
	announcements.Get("/", handler.List)
	announcements.Get("/recent", handler.Recent)
	announcements.Get("/export", handler.Export)
	announcements.Delete("/:id", handler.Delete)
}

// setupDashboardRoutes configures dashboard routes (admin only)
func setupDashboardRoutes(app *fiber.App, handler *handlers.DashboardHandler, cfg *config.Config) {
	dashboard := app.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(cfg))
	dashboard.Use(middleware.AdminOnly())

	dashboard.Get("/summary", handler.Summary)
}
