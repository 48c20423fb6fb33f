package analytics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"utsav/internal/shared/utils/response"
)

// Controller defines the analytics controller interface
type Controller interface {
	GetDashboardAnalytics(c *gin.Context)
	GetDailyBookingStats(c *gin.Context)
	GetVendorAnalytics(c *gin.Context)
}

// controller implements the Controller interface
type controller struct {
	service Service
}

// NewController creates a new analytics controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetDashboardAnalytics(c *gin.Context) {
	dashboard, err := ctrl.service.GetDashboardAnalytics()
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Dashboard analytics retrieved successfully", dashboard, nil)
}

func (ctrl *controller) GetDailyBookingStats(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid days parameter", nil, err.Error())
		return
	}

	stats, err := ctrl.service.GetDailyBookingStats(days)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Daily booking statistics retrieved successfully", stats, nil)
}

func (ctrl *controller) GetVendorAnalytics(c *gin.Context) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	vendorID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid vendor ID", nil, err.Error())
		return
	}

	result, err := ctrl.service.GetVendorAnalytics(vendorID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Vendor analytics retrieved successfully", result, nil)
}
