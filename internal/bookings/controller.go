package bookings

import (
	"errors"
	"net/http"

	"utsav/internal/calendar"
	"utsav/internal/pricing"
	"utsav/internal/services"
	"utsav/internal/shared/utils/response"
	"utsav/internal/users"
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

func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrDatesUnavailable):
		return http.StatusConflict
	case errors.Is(err, ErrBookingNotFound),
		errors.Is(err, venues.ErrVenueNotFound),
		errors.Is(err, venues.ErrHallNotFound),
		errors.Is(err, services.ErrServiceNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotBookingOwner),
		errors.Is(err, venues.ErrNotVenueOwner):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrVenueNotBookable),
		errors.Is(err, calendar.ErrInvalidDateRange),
		errors.Is(err, pricing.ErrInvalidFoodOption):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func authContext(ctx *gin.Context) (uuid.UUID, bool, bool) {
	userIDInterface, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return uuid.Nil, false, false
	}

	userIDStr, ok := userIDInterface.(string)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Invalid user ID format", nil, nil)
		return uuid.Nil, false, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, err.Error())
		return uuid.Nil, false, false
	}

	role, _ := ctx.Get("user_role")
	isAdmin := role == string(users.RoleAdmin)

	return userID, isAdmin, true
}

// CreateBooking handles POST /api/v1/bookings
func (c *Controller) CreateBooking(ctx *gin.Context) {
	userID, _, ok := authContext(ctx)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	booking, err := c.service.CreateBooking(ctx.Request.Context(), userID, req)
	if err != nil {
		message := "Failed to create booking"
		if errors.Is(err, ErrDatesUnavailable) {
			message = "Selected dates are no longer available"
		}
		response.RespondJSON(ctx, "error", bookingErrorStatus(err), message, nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

// GetBooking handles GET /api/v1/bookings/:id
func (c *Controller) GetBooking(ctx *gin.Context) {
	userID, isAdmin, ok := authContext(ctx)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	booking, err := c.service.GetBooking(ctx.Request.Context(), userID, isAdmin, bookingID)
	if err != nil {
		response.RespondJSON(ctx, "error", bookingErrorStatus(err), "Failed to get booking", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

// GetMyBookings handles GET /api/v1/bookings
func (c *Controller) GetMyBookings(ctx *gin.Context) {
	userID, _, ok := authContext(ctx)
	if !ok {
		return
	}

	var query BookingListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.GetUserBookings(ctx.Request.Context(), userID, query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get bookings", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", result, nil)
}

// GetVenueBookings handles GET /api/v1/vendor/venues/:id/bookings
func (c *Controller) GetVenueBookings(ctx *gin.Context) {
	vendorID, _, ok := authContext(ctx)
	if !ok {
		return
	}

	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}

	result, err := c.service.GetVenueBookings(ctx.Request.Context(), vendorID, venueID)
	if err != nil {
		response.RespondJSON(ctx, "error", bookingErrorStatus(err), "Failed to get venue bookings", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", result, nil)
}

// GetAllBookings handles GET /api/v1/admin/bookings
func (c *Controller) GetAllBookings(ctx *gin.Context) {
	var query BookingListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.GetAllBookings(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get bookings", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", result, nil)
}

// UpdateBookingStatus handles PUT /api/v1/admin/bookings/:id/status
func (c *Controller) UpdateBookingStatus(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	var req UpdateBookingStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	booking, err := c.service.UpdateStatus(ctx.Request.Context(), bookingID, Status(req.Status))
	if err != nil {
		response.RespondJSON(ctx, "error", bookingErrorStatus(err), "Failed to update booking status", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking status updated successfully", booking, nil)
}
