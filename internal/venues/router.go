package venues

import (
	"utsav/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupVenueRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public browsing routes
	public := rg.Group("/venues")
	{
		public.GET("", controller.ListVenues)    // GET /api/v1/venues
		public.GET("/:id", controller.GetVenue)  // GET /api/v1/venues/:id
	}

	// Vendor management routes
	vendor := rg.Group("/vendor/venues")
	vendor.Use(middleware.JWTAuth(), middleware.RequireVendor())
	{
		vendor.POST("", controller.CreateVenue)               // POST /api/v1/vendor/venues
		vendor.GET("", controller.GetMyVenues)                // GET /api/v1/vendor/venues
		vendor.PUT("/:id", controller.UpdateVenue)            // PUT /api/v1/vendor/venues/:id
		vendor.PUT("/:id/halls", controller.ReplaceHalls)     // PUT /api/v1/vendor/venues/:id/halls
		vendor.PUT("/:id/food", controller.SetFoodService)    // PUT /api/v1/vendor/venues/:id/food
	}

	// Admin verification routes
	admin := rg.Group("/admin/venues")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.PUT("/:id/verify", controller.VerifyVenue) // PUT /api/v1/admin/venues/:id/verify
	}
}
