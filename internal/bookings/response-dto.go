package bookings

import (
	"time"

	"utsav/internal/pricing"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID             `json:"id"`
	UserID        uuid.UUID             `json:"userId"`
	VenueID       uuid.UUID             `json:"venueId"`
	HallID        uuid.UUID             `json:"hallId"`
	StartDate     string                `json:"startDate"`
	EndDate       string                `json:"endDate"`
	NumberOfDays  int                   `json:"numberOfDays"`
	GuestCount    int                   `json:"guestCount"`
	FoodOption    string                `json:"foodOption,omitempty"`
	Plates        int                   `json:"plates,omitempty"`
	Services      []pricing.ServiceLine `json:"services,omitempty"`
	VenuePrice    float64               `json:"venuePrice"`
	FoodPrice     float64               `json:"foodPrice"`
	ServicesPrice float64               `json:"servicesPrice"`
	PlatformFee   float64               `json:"platformFee"`
	TotalPrice    float64               `json:"totalPrice"`
	Status        string                `json:"status"`
	CreatedAt     time.Time             `json:"createdAt"`
	CancelledAt   *time.Time            `json:"cancelledAt,omitempty"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

func toBookingResponse(b *Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		VenueID:       b.VenueID,
		HallID:        b.HallID,
		StartDate:     b.StartDay().String(),
		EndDate:       b.EndDay().String(),
		NumberOfDays:  b.NumberOfDays,
		GuestCount:    b.GuestCount,
		FoodOption:    b.FoodOption,
		Plates:        b.Plates,
		Services:      b.Services,
		VenuePrice:    b.VenuePrice,
		FoodPrice:     b.FoodPrice,
		ServicesPrice: b.ServicesPrice,
		PlatformFee:   b.PlatformFee,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status.String(),
		CreatedAt:     b.CreatedAt,
		CancelledAt:   b.CancelledAt,
	}
}

func toBookingListResponse(bookings []Booking, total int64, query BookingListQuery) *BookingListResponse {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    total,
		Page:     query.Page,
		Limit:    query.Limit,
	}
	for i := range bookings {
		resp.Bookings = append(resp.Bookings, toBookingResponse(&bookings[i]))
	}
	return resp
}
