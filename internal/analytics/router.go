package analytics

import (
	"utsav/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup, controller Controller) {

	analytics := rg.Group("/analytics")

	// Admin analytics routes (protected)
	admin := analytics.Group("/admin")
	admin.Use(middleware.JWTAuth())
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/dashboard", controller.GetDashboardAnalytics)
		admin.GET("/bookings/daily", controller.GetDailyBookingStats) // ?days=30
	}

	// Vendor analytics routes (protected)
	vendor := analytics.Group("/vendor")
	vendor.Use(middleware.JWTAuth())
	vendor.Use(middleware.RequireVendor())
	{
		vendor.GET("/dashboard", controller.GetVendorAnalytics)
	}
}
