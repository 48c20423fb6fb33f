// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"utsav/internal/analytics"
	"utsav/internal/auth"
	"utsav/internal/availability"
	"utsav/internal/bookingevents"
	"utsav/internal/bookings"
	"utsav/internal/services"
	"utsav/internal/shared/config"
	"utsav/internal/shared/database"
	"utsav/internal/venues"
	"utsav/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher bookingevents.Publisher

	// Shared across route groups for dependency injection
	venueRepo           venues.Repository
	serviceRepo         services.Repository
	availabilityService availability.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, publisher bookingevents.Publisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)

		// Venue routes must come before booking routes so the booking
		// service can reuse the venue repository.
		r.setupVenueRoutes(api)
		r.setupAvailabilityRoutes(api)
		r.setupServiceRoutes(api)
		r.setupBookingRoutes(api)
		r.setupAnalyticsRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "utsav-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "utsav-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController)

	authRouter.SetupRoutes(rg)
}

// setupVenueRoutes configures venue management routes
func (r *Router) setupVenueRoutes(rg *gin.RouterGroup) {
	venueRepo := venues.NewRepository(r.db.GetPostgreSQL())
	venueService := venues.NewService(venueRepo, r.db.GetRedisClient())
	venueController := venues.NewController(venueService)

	// Keep the repository for the booking service
	r.venueRepo = venueRepo

	venues.SetupVenueRoutes(rg, venueController)
}

// setupAvailabilityRoutes configures blocked-date and calendar routes
func (r *Router) setupAvailabilityRoutes(rg *gin.RouterGroup) {
	availabilityRepo := availability.NewRepository(r.db.GetPostgreSQL())
	availabilityService := availability.NewService(availabilityRepo, r.venueRepo, r.db.GetRedisClient())
	availabilityController := availability.NewController(availabilityService)

	// Keep the service for the booking service
	r.availabilityService = availabilityService

	availability.SetupAvailabilityRoutes(rg, availabilityController)
}

// setupServiceRoutes configures event service listing routes
func (r *Router) setupServiceRoutes(rg *gin.RouterGroup) {
	serviceRepo := services.NewRepository(r.db.GetPostgreSQL())
	serviceService := services.NewService(serviceRepo, r.db.GetRedisClient())
	serviceController := services.NewController(serviceService)

	// Keep the repository for the booking service
	r.serviceRepo = serviceRepo

	services.SetupServiceRoutes(rg, serviceController)
}

// setupBookingRoutes configures booking management routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	bookingService := bookings.NewService(
		bookingRepo,
		r.venueRepo,
		r.serviceRepo,
		r.availabilityService,
		r.publisher,
	)
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
}

// setupAnalyticsRoutes configures analytics routes
func (r *Router) setupAnalyticsRoutes(rg *gin.RouterGroup) {
	analyticsRepo := analytics.NewRepository(r.db.GetPostgreSQL())
	analyticsService := analytics.NewService(analyticsRepo, cache.NewService(r.db.GetRedisClient()))
	analyticsController := analytics.NewController(analyticsService)

	analytics.SetupAnalyticsRoutes(rg, analyticsController)
}
