package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/lexintake/intake-service/internal/adapter/handler"
	"github.com/lexintake/intake-service/internal/adapter/repository"
	"github.com/lexintake/intake-service/internal/infrastructure/database"
	"github.com/lexintake/intake-service/internal/usecase/intake"
	"github.com/lexintake/intake-service/internal/usecase/report"
	pkgai "github.com/lexintake/intake-service/pkg/ai"
	"github.com/lexintake/intake-service/pkg/config"
	pkgvalidator "github.com/lexintake/intake-service/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	log.Println("🔧 Initializing dependencies...")

	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	log.Println("⚙️  Initializing repositories...")
	lawFirmRepo := repository.NewLawFirmRepository(db)
	clientRepo := repository.NewClientRepository(db)
	caseRepo := repository.NewCaseRepository(db)
	otherPartyRepo := repository.NewOtherPartyRepository(db)
	facilityRepo := repository.NewMedicalFacilityRepository(db)
	providerRepo := repository.NewMedicalProviderRepository(db)
	treatmentRepo := repository.NewTreatmentRepository(db)
	damageRepo := repository.NewDamageRepository(db)
	insurerRepo := repository.NewInsuranceProviderRepository(db)
	communicationRepo := repository.NewCommunicationRepository(db)
	citationRepo := repository.NewCitationRepository(db)

	log.Println("🤖 Initializing AI clients...")
	openaiClient := pkgai.NewOpenAIClient(&cfg.OpenAI)
	assemblyClient := pkgai.NewAssemblyAIClient(&cfg.AssemblyAI)

	log.Println("✨ Initializing intake service...")
	intakeService := intake.NewService(intake.Repositories{
		LawFirms:       lawFirmRepo,
		Clients:        clientRepo,
		Cases:          caseRepo,
		OtherParties:   otherPartyRepo,
		Facilities:     facilityRepo,
		Providers:      providerRepo,
		Treatments:     treatmentRepo,
		Damages:        damageRepo,
		Insurers:       insurerRepo,
		Communications: communicationRepo,
		Citations:      citationRepo,
	}, openaiClient, logger)

	log.Println("📊 Initializing case analyzer...")
	caseAnalyzer := report.NewAnalyzer(report.Repositories{
		LawFirms:       lawFirmRepo,
		Clients:        clientRepo,
		Cases:          caseRepo,
		OtherParties:   otherPartyRepo,
		Facilities:     facilityRepo,
		Providers:      providerRepo,
		Treatments:     treatmentRepo,
		Damages:        damageRepo,
		Insurers:       insurerRepo,
		Communications: communicationRepo,
		Citations:      citationRepo,
	}, openaiClient, logger)

	log.Println("🚀 Initializing handlers...")
	intakeController := handler.NewIntakeController(intakeService, assemblyClient, logger)
	caseController := handler.NewCaseController(caseRepo, communicationRepo, caseAnalyzer, logger)

	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, intakeController, caseController)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
