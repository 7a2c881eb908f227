package routes

import (
	"time"

	"scholarchain/internal/adapters/http/handlers"
	"scholarchain/internal/adapters/http/middleware"
	"scholarchain/internal/adapters/ledger"
	"scholarchain/internal/adapters/persistence/repositories"
	"scholarchain/internal/config"
	"scholarchain/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, ldg ledger.Ledger, cfg *config.Config) error {
	// Repositories
	scholarshipRepo := repositories.NewScholarshipRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	// Services
	authService, err := services.NewAuthService(cfg)
	if err != nil {
		return err
	}
	scholarshipService := services.NewScholarshipService(scholarshipRepo, ldg)
	applicationService := services.NewApplicationService(applicationRepo, scholarshipRepo, ldg)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	scholarshipHandler := handlers.NewScholarshipHandler(scholarshipService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	walletHandler := handlers.NewWalletHandler(ldg)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth
	apiV1.Post("/auth/session", authHandler.CreateSession)

	// Scholarships
	apiV1.Get("/scholarships", middleware.CacheControl(30*time.Second), scholarshipHandler.List)
	apiV1.Get("/scholarships/:id", scholarshipHandler.GetByID)
	apiV1.Post("/scholarships",
		middleware.AuthMiddleware(cfg),
		middleware.ProviderOnly(),
		middleware.SubmitRateLimiter(),
		scholarshipHandler.Create,
	)
	apiV1.Patch("/scholarships/:id/active",
		middleware.AuthMiddleware(cfg),
		middleware.ProviderOnly(),
		scholarshipHandler.SetActive,
	)
	apiV1.Get("/scholarships/:id/applications",
		middleware.AuthMiddleware(cfg),
		middleware.ProviderOnly(),
		applicationHandler.ListByScholarship,
	)

	// Applications
	apiV1.Post("/applications",
		middleware.AuthMiddleware(cfg),
		middleware.ApplicantOnly(),
		middleware.SubmitRateLimiter(),
		applicationHandler.Submit,
	)
	apiV1.Get("/applications/me",
		middleware.AuthMiddleware(cfg),
		middleware.ApplicantOnly(),
		applicationHandler.ListMine,
	)

	// Wallet
	apiV1.Get("/wallet/balance",
		middleware.AuthMiddleware(cfg),
		walletHandler.Balance,
	)

	return nil
}
