package availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"utsav/internal/calendar"
	"utsav/internal/shared/utils/response"
	"utsav/internal/venues"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func blockErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrInvalidStatus),
		errors.Is(err, calendar.ErrInvalidDateRange):
		return http.StatusBadRequest
	case errors.Is(err, venues.ErrVenueNotFound):
		return http.StatusNotFound
	case errors.Is(err, venues.ErrNotVenueOwner):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func vendorIDFromContext(ctx *gin.Context) (uuid.UUID, bool) {
	userIDInterface, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return uuid.Nil, false
	}

	userIDStr, ok := userIDInterface.(string)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Invalid user ID format", nil, nil)
		return uuid.Nil, false
	}

	vendorID, err := uuid.Parse(userIDStr)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, err.Error())
		return uuid.Nil, false
	}

	return vendorID, true
}

// GetBlockedDates handles GET /api/v1/venues/:id/blocked-dates
func (c *Controller) GetBlockedDates(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}

	records, err := c.service.GetBlockedDatesByVenue(ctx.Request.Context(), venueID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get blocked dates", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Blocked dates retrieved successfully", toBlockedDateResponses(records), nil)
}

// CheckAvailability handles GET /api/v1/venues/:id/availability
func (c *Controller) CheckAvailability(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}

	var req CheckAvailabilityRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	start, err := calendar.Parse(req.StartDate)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid start date", nil, err.Error())
		return
	}
	end, err := calendar.Parse(req.EndDate)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid end date", nil, err.Error())
		return
	}

	available, err := c.service.AreDatesAvailable(ctx.Request.Context(), venueID, start, end)
	if err != nil {
		response.RespondJSON(ctx, "error", blockErrorStatus(err), "Failed to check availability", nil, err.Error())
		return
	}

	resp := AvailabilityResponse{
		VenueID:   venueID,
		StartDate: start.String(),
		EndDate:   end.String(),
		Available: available,
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Availability checked successfully", resp, nil)
}

// GetCalendar handles GET /api/v1/venues/:id/calendar
func (c *Controller) GetCalendar(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}

	now := time.Now()
	year, err := strconv.Atoi(ctx.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid year", nil, err.Error())
		return
	}
	monthNum, err := strconv.Atoi(ctx.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || monthNum < 1 || monthNum > 12 {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid month", nil, nil)
		return
	}

	grid, err := c.service.MonthCalendar(ctx.Request.Context(), venueID, year, time.Month(monthNum))
	if err != nil {
		response.RespondJSON(ctx, "error", blockErrorStatus(err), "Failed to build calendar", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Calendar retrieved successfully", grid, nil)
}

// BlockDates handles POST /api/v1/vendor/venues/:id/blocked-dates
func (c *Controller) BlockDates(ctx *gin.Context) {
	vendorID, ok := vendorIDFromContext(ctx)
	if !ok {
		return
	}

	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}

	var req BlockDatesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	days := make([]calendar.Day, 0, len(req.Dates))
	for _, raw := range req.Dates {
		day, err := calendar.Parse(raw)
		if err != nil {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid date in request", nil, err.Error())
			return
		}
		days = append(days, day)
	}

	records, err := c.service.SetBlockedForVendor(ctx.Request.Context(), vendorID, venueID, days, BlockStatus(req.Status), req.Note)
	if err != nil {
		response.RespondJSON(ctx, "error", blockErrorStatus(err), "Failed to block dates", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Dates blocked successfully", toBlockedDateResponses(records), nil)
}

// UnblockDate handles DELETE /api/v1/vendor/venues/:id/blocked-dates
func (c *Controller) UnblockDate(ctx *gin.Context) {
	vendorID, ok := vendorIDFromContext(ctx)
	if !ok {
		return
	}

	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}

	var req UnblockDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	day, err := calendar.Parse(req.Date)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid date", nil, err.Error())
		return
	}

	if err := c.service.UnblockForVendor(ctx.Request.Context(), vendorID, venueID, day); err != nil {
		response.RespondJSON(ctx, "error", blockErrorStatus(err), "Failed to unblock date", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Date unblocked successfully", nil, nil)
}
