package bookings

import (
	"utsav/internal/shared/middleware"
	"utsav/internal/users"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	// User booking routes
	user := rg.Group("/bookings")
	user.Use(middleware.JWTAuth(), middleware.RequireRoles(string(users.RoleUser), string(users.RoleAdmin)))
	{
		user.POST("", controller.CreateBooking)   // POST /api/v1/bookings
		user.GET("", controller.GetMyBookings)    // GET /api/v1/bookings
		user.GET("/:id", controller.GetBooking)   // GET /api/v1/bookings/:id
	}

	// Vendor booking routes
	vendor := rg.Group("/vendor/venues")
	vendor.Use(middleware.JWTAuth(), middleware.RequireVendor())
	{
		vendor.GET("/:id/bookings", controller.GetVenueBookings) // GET /api/v1/vendor/venues/:id/bookings
	}

	// Admin booking routes
	admin := rg.Group("/admin/bookings")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("", controller.GetAllBookings)               // GET /api/v1/admin/bookings
		admin.PUT("/:id/status", controller.UpdateBookingStatus) // PUT /api/v1/admin/bookings/:id/status
	}
}
