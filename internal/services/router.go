package services

import (
	"utsav/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupServiceRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public browsing routes
	public := rg.Group("/services")
	{
		public.GET("", controller.ListServices)  // GET /api/v1/services
		public.GET("/:id", controller.GetService) // GET /api/v1/services/:id
	}

	// Vendor management routes
	vendor := rg.Group("/vendor/services")
	vendor.Use(middleware.JWTAuth(), middleware.RequireVendor())
	{
		vendor.POST("", controller.CreateService)      // POST /api/v1/vendor/services
		vendor.GET("", controller.GetMyServices)       // GET /api/v1/vendor/services
		vendor.PUT("/:id", controller.UpdateService)   // PUT /api/v1/vendor/services/:id
		vendor.DELETE("/:id", controller.DeleteService) // DELETE /api/v1/vendor/services/:id
	}

	// Admin verification routes
	admin := rg.Group("/admin/services")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.PUT("/:id/verify", controller.VerifyService) // PUT /api/v1/admin/services/:id/verify
	}
}
