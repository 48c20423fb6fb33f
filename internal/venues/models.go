package venues

import (
	"time"

	"github.com/google/uuid"
)

// Venue is a bookable property owned by a vendor. Halls and the optional
// food service are created with the venue and replaced wholesale on edit.
type Venue struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	VendorID    uuid.UUID `json:"vendor_id" gorm:"type:uuid;index;not null"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Description string    `json:"description" gorm:"type:text"`
	City        string    `json:"city" gorm:"not null;size:120;index"`
	Address     string    `json:"address" gorm:"size:500"`
	Images      []string  `json:"images" gorm:"type:jsonb;serializer:json"`
	Capacity    int       `json:"capacity" gorm:"not null;check:capacity > 0"`
	Amenities   []string  `json:"amenities" gorm:"type:jsonb;serializer:json"`

	// StartingPrice is the cheapest hall's per-day rate, kept denormalized
	// for listing cards.
	StartingPrice float64 `json:"starting_price" gorm:"not null;check:starting_price >= 0"`

	Rating      float64 `json:"rating" gorm:"default:0"`
	ReviewCount int     `json:"review_count" gorm:"default:0"`
	IsVerified  bool    `json:"is_verified" gorm:"default:false;index"`

	Halls       []Hall       `json:"halls" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE;"`
	FoodService *FoodService `json:"food_service,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Hall is the addressable rentable unit; all pricing is hall-scoped.
type Hall struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	VenueID     uuid.UUID `json:"venue_id" gorm:"type:uuid;index;not null"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Capacity    int       `json:"capacity" gorm:"not null;check:capacity > 0"`
	PricePerDay float64   `json:"price_per_day" gorm:"not null;check:price_per_day >= 0"`
	Amenities   []string  `json:"amenities" gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time `json:"created_at"`
}

// FoodService holds a venue's in-house catering rates.
type FoodService struct {
	ID                  uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	VenueID             uuid.UUID `json:"venue_id" gorm:"type:uuid;uniqueIndex;not null"`
	VegPricePerPlate    float64   `json:"veg_price_per_plate" gorm:"not null;check:veg_price_per_plate >= 0"`
	NonVegPricePerPlate float64   `json:"non_veg_price_per_plate" gorm:"not null;check:non_veg_price_per_plate >= 0"`
	MinPlates           int       `json:"min_plates" gorm:"not null;default:50"`
	VegMenuItems        []string  `json:"veg_menu_items" gorm:"type:jsonb;serializer:json"`
	NonVegMenuItems     []string  `json:"non_veg_menu_items" gorm:"type:jsonb;serializer:json"`
	IsAvailable         bool      `json:"is_available" gorm:"default:true"`
	CreatedAt           time.Time `json:"created_at"`
}

func (Venue) TableName() string       { return "venues" }
func (Hall) TableName() string        { return "halls" }
func (FoodService) TableName() string { return "food_services" }

// HallByID finds a hall on the venue; the second return is false when the
// hall does not belong to this venue.
func (v *Venue) HallByID(hallID uuid.UUID) (*Hall, bool) {
	for i := range v.Halls {
		if v.Halls[i].ID == hallID {
			return &v.Halls[i], true
		}
	}
	return nil, false
}
