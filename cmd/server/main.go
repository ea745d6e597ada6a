package main

import (
	"fmt"
	"log"

	"voyago/internal/config"
	"voyago/internal/email/noop"
	"voyago/internal/email/ses"
	"voyago/internal/handler"
	"voyago/internal/port"
	"voyago/internal/repository/postgres"
	"voyago/internal/router"
	"voyago/internal/service"
	s3storage "voyago/internal/storage/s3"
)

// @title Voyago API
// @version 1.0
// @description Visa application and travel booking API
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	countryRepo := postgres.NewCountryRepo(db)
	reqRepo := postgres.NewVisaRequirementRepo(db)
	typeRepo := postgres.NewVisaTypeRepo(db)
	appRepo := postgres.NewApplicationRepo(db)
	fileRepo := postgres.NewApplicationFileRepo(db)
	pkgRepo := postgres.NewTourPackageRepo(db)
	bookingRepo := postgres.NewTourBookingRepo(db)
	flightRepo := postgres.NewFlightRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	catalogSvc := service.NewCatalogService(countryRepo, reqRepo, typeRepo, pkgRepo, flightRepo)
	appSvc := service.NewApplicationService(appRepo, fileRepo, reqRepo, countryRepo, typeRepo, userRepo,
		s3Client, emailSender, &cfg.S3, &cfg.Upload)
	bookingSvc := service.NewBookingService(bookingRepo, pkgRepo, userRepo, emailSender)
	userSvc := service.NewUserService(userRepo, appRepo, bookingRepo)
	adminSvc := service.NewAdminService(appRepo, countryRepo, pkgRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	appH := handler.NewApplicationHandler(appSvc)
	bookingH := handler.NewBookingHandler(bookingSvc)
	profileH := handler.NewProfileHandler(userSvc)
	adminH := handler.NewAdminHandler(adminSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, catalogH, appH, bookingH, profileH, adminH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
