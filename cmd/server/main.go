package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"scholarchain/internal/adapters/http/middleware"
	"scholarchain/internal/adapters/http/routes"
	"scholarchain/internal/adapters/ledger"
	"scholarchain/internal/adapters/persistence/models"
	"scholarchain/internal/adapters/persistence/repositories"
	"scholarchain/internal/config"
	"scholarchain/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// @title ScholarChain API
// @version 1.0
// @description Scholarship marketplace API: providers post funded offers with eligibility criteria, applicants apply and receive an automated decision.

// @contact.name API Support
// @contact.email support@scholarchain.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed demo offers (explicit bootstrap, opt-in)
	if cfg.SeedDemo {
		if err := config.SeedDemoScholarships(db); err != nil {
			log.Printf("⚠️ Warning: Failed to seed demo scholarships: %v", err)
		}
	}

	// Select ledger collaborator via configuration
	ldg := buildLedger(cfg)

	// Nightly receipt reconciliation
	reconcileService := services.NewReconcileService(repositories.NewApplicationRepository(db), ldg)
	reconcileService.Start()
	defer reconcileService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ScholarChain API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	if err := routes.Setup(app, db, ldg, cfg); err != nil {
		log.Fatalf("❌ Failed to setup routes: %v", err)
	}

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// buildLedger picks the ledger implementation from config
func buildLedger(cfg *config.Config) ledger.Ledger {
	if cfg.Ledger.Mode == "gateway" {
		log.Printf("✅ Using ledger gateway at %s", cfg.Ledger.GatewayURL)
		return ledger.NewHTTPLedger(cfg.Ledger.GatewayURL, cfg.Ledger.ModuleAddress, cfg.Ledger.Timeout)
	}
	log.Println("✅ Using in-memory mock ledger")
	return ledger.NewMockLedger()
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
