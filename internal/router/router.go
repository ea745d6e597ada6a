package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "voyago/docs"
	"voyago/internal/config"
	"voyago/internal/domain"
	"voyago/internal/handler"
	"voyago/internal/middleware"
	"voyago/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	catalogH *handler.CatalogHandler,
	appH *handler.ApplicationHandler,
	bookingH *handler.BookingHandler,
	profileH *handler.ProfileHandler,
	adminH *handler.AdminHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Public catalog routes
	v1.GET("/countries", catalogH.ListCountries)
	v1.GET("/countries/:id", catalogH.GetCountry)
	v1.GET("/visa-types", catalogH.ListVisaTypes)
	v1.GET("/visa-types/:id", catalogH.GetVisaType)
	v1.GET("/tours", catalogH.ListTourPackages)
	v1.GET("/tours/:id", catalogH.GetTourPackage)
	v1.GET("/flights", catalogH.SearchFlights)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Visa applications
	apps := protected.Group("/applications")
	apps.POST("", appH.Submit)
	apps.POST("/wizard", appH.SubmitWizard)
	apps.GET("", appH.List)
	apps.GET("/:id", appH.GetByID)
	apps.GET("/:id/files", appH.ListFiles)
	apps.GET("/:id/files/:fileID/url", appH.GetFileURL)

	// Tour bookings
	bookings := protected.Group("/bookings")
	bookings.POST("", bookingH.Create)
	bookings.GET("", bookingH.List)
	bookings.GET("/:id", bookingH.GetByID)
	bookings.POST("/:id/cancel", bookingH.Cancel)

	// Profile and dashboard
	protected.GET("/profile", profileH.Get)
	protected.PUT("/profile", profileH.Update)
	protected.GET("/dashboard", profileH.Dashboard)

	// Admin routes - application back office
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/applications", adminH.ListApplications)
	admin.GET("/applications/export", adminH.ExportApplications)
	admin.PUT("/applications/:id/status", adminH.UpdateApplicationStatus)
	admin.PUT("/countries/:id/active", adminH.SetCountryActive)
	admin.PUT("/tour-packages/:id/active", adminH.SetTourPackageActive)

	return r
}
