package routes

import (
	"careerhub/internal/adapters/http/handlers"
	"careerhub/internal/adapters/http/middleware"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/config"
	"careerhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo, refreshTokenRepo)
	jobService := services.NewJobService(jobRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo)
	dashboardService := services.NewDashboardService(db, userRepo, jobRepo, applicationRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	jobHandler := handlers.NewJobHandler(jobService, applicationService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	adminHandler := handlers.NewAdminHandler(dashboardService, userService, jobService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, healthHandler, authHandler, userHandler, jobHandler,
		applicationHandler, dashboardHandler, adminHandler, cfg)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	jobHandler *handlers.JobHandler,
	applicationHandler *handlers.ApplicationHandler,
	dashboardHandler *handlers.DashboardHandler,
	adminHandler *handlers.AdminHandler,
	cfg *config.Config,
) {
	// API Info
	router.Get("/", healthHandler.APIInfo)

	// Landing page (public)
	router.Get("/home", jobHandler.Home)

	// Auth routes
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Job routes (public search/detail, employer management)
	jobRoutes := router.Group("/jobs")
	setupJobRoutes(jobRoutes, jobHandler, applicationHandler, cfg)

	// Own-resource listings (authenticated)
	myRoutes := router.Group("/my")
	myRoutes.Use(middleware.AuthMiddleware(cfg))
	myRoutes.Get("/jobs", middleware.EmployerOrAdmin(), jobHandler.MyJobs)
	myRoutes.Get("/applications", applicationHandler.MyApplications)

	// Application detail and review (applicant/owner/admin; checked in service)
	applicationRoutes := router.Group("/applications")
	applicationRoutes.Use(middleware.AuthMiddleware(cfg))
	applicationRoutes.Get("/:id", applicationHandler.GetByID)
	applicationRoutes.Put("/:id/status", applicationHandler.UpdateStatus)

	// Profile routes (authenticated)
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	setupProfileRoutes(profileRoutes, userHandler)

	// Dashboard routes (authenticated, payload depends on role)
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Get("/", dashboardHandler.GetDashboard)

	// Admin routes (admin only)
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(cfg))
	adminRoutes.Use(middleware.AdminOnly())
	setupAdminRoutes(adminRoutes, adminHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (rate limited against brute force)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupJobRoutes configures job catalog routes
func setupJobRoutes(
	router fiber.Router,
	jobHandler *handlers.JobHandler,
	applicationHandler *handlers.ApplicationHandler,
	cfg *config.Config,
) {
	// Public browsing; OptionalAuth lets the detail page flag apply state
	router.Get("/", jobHandler.Search)
	router.Get("/:id", middleware.OptionalAuth(cfg), jobHandler.GetByID)

	// Employer management (ownership enforced in the service)
	router.Post("/", middleware.AuthMiddleware(cfg), middleware.EmployerOrAdmin(), jobHandler.Create)
	router.Put("/:id", middleware.AuthMiddleware(cfg), middleware.EmployerOrAdmin(), jobHandler.Update)
	router.Delete("/:id", middleware.AuthMiddleware(cfg), middleware.EmployerOrAdmin(), jobHandler.Delete)
	router.Get("/:id/applications", middleware.AuthMiddleware(cfg), middleware.EmployerOrAdmin(), applicationHandler.ListForJob)

	// Job seeker application
	router.Post("/:id/apply", middleware.AuthMiddleware(cfg), applicationHandler.Apply)
}

// setupProfileRoutes configures profile routes (authenticated)
func setupProfileRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.GetProfile)
	router.Put("/", handler.UpdateProfile)
	router.Put("/password", handler.ChangePassword)
}

// setupAdminRoutes configures moderation routes (admin only)
func setupAdminRoutes(router fiber.Router, handler *handlers.AdminHandler) {
	router.Get("/overview", handler.Overview)
	router.Get("/users", handler.ListUsers)
	router.Put("/users/:id/toggle", handler.ToggleUser)
	router.Put("/jobs/:id/toggle", handler.ToggleJob)
}
