package availability

import (
	"utsav/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAvailabilityRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public read routes
	venues := rg.Group("/venues")
	{
		venues.GET("/:id/blocked-dates", controller.GetBlockedDates) // GET /api/v1/venues/:id/blocked-dates
		venues.GET("/:id/availability", controller.CheckAvailability) // GET /api/v1/venues/:id/availability
		venues.GET("/:id/calendar", controller.GetCalendar)           // GET /api/v1/venues/:id/calendar
	}

	// Vendor date management routes
	vendor := rg.Group("/vendor/venues")
	vendor.Use(middleware.JWTAuth(), middleware.RequireVendor())
	{
		vendor.POST("/:id/blocked-dates", controller.BlockDates)    // POST /api/v1/vendor/venues/:id/blocked-dates
		vendor.DELETE("/:id/blocked-dates", controller.UnblockDate) // DELETE /api/v1/vendor/venues/:id/blocked-dates
	}
}
