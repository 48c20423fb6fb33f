package bookings

import "github.com/google/uuid"

type CreateBookingRequest struct {
	VenueID    uuid.UUID   `json:"venueId" binding:"required"`
	HallID     uuid.UUID   `json:"hallId" binding:"required"`
	StartDate  string      `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate    string      `json:"endDate" binding:"required"`   // YYYY-MM-DD
	GuestCount int         `json:"guestCount" binding:"required,min=1"`
	FoodOption string      `json:"foodOption"` // veg | nonveg | both, empty for none
	Plates     int         `json:"plates"`
	ServiceIDs []uuid.UUID `json:"serviceIds"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
