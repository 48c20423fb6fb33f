package bookings

import (
	"fmt"
	"time"

	"utsav/internal/calendar"
	"utsav/internal/pricing"

	"github.com/google/uuid"
)

// Booking is one venue stay. Price fields are computed once at
// creation and never recomputed on status transitions.
type Booking struct {
	ID            uuid.UUID             `json:"id" gorm:"primaryKey;type:uuid"`
	UserID        uuid.UUID             `json:"user_id" gorm:"type:uuid;not null;index"`
	VenueID       uuid.UUID             `json:"venue_id" gorm:"type:uuid;not null;index"`
	HallID        uuid.UUID             `json:"hall_id" gorm:"type:uuid;not null"`
	EventDate     time.Time             `json:"event_date" gorm:"type:date;not null"`
	EventEndDate  time.Time             `json:"event_end_date" gorm:"type:date;not null"`
	NumberOfDays  int                   `json:"number_of_days" gorm:"not null"`
	GuestCount    int                   `json:"guest_count" gorm:"not null"`
	FoodOption    string                `json:"food_option,omitempty"`
	Plates        int                   `json:"plates,omitempty"`
	Services      []pricing.ServiceLine `json:"services" gorm:"type:jsonb;serializer:json"`
	VenuePrice    float64               `json:"venue_price" gorm:"not null"`
	FoodPrice     float64               `json:"food_price" gorm:"not null"`
	ServicesPrice float64               `json:"services_price" gorm:"not null"`
	PlatformFee   float64               `json:"platform_fee" gorm:"not null"`
	TotalPrice    float64               `json:"total_price" gorm:"not null"`
	Status        Status                `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	CancelledAt   *time.Time            `json:"cancelled_at,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// StartDay and EndDay expose the stay as calendar days, dropping any
// time-of-day the database attached.
func (b *Booking) StartDay() calendar.Day {
	return calendar.FromTime(b.EventDate)
}

func (b *Booking) EndDay() calendar.Day {
	return calendar.FromTime(b.EventEndDate)
}

// BlockNote is the note written on the blocked dates this booking
// owns, keyed by the last six characters of the booking id.
func (b *Booking) BlockNote() string {
	id := b.ID.String()
	return fmt.Sprintf("Booking #%s", id[len(id)-6:])
}
