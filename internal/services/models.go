package services

import (
	"time"

	"github.com/google/uuid"
)

// Category groups add-on services in vendor catalogs.
type Category string

const (
	CategoryCatering    Category = "catering"
	CategoryDecoration  Category = "decoration"
	CategoryPhotography Category = "photography"
	CategoryMusic       Category = "music"
	CategoryMakeup      Category = "makeup"
	CategoryOther       Category = "other"
)

func IsValidCategory(c string) bool {
	switch Category(c) {
	case CategoryCatering, CategoryDecoration, CategoryPhotography,
		CategoryMusic, CategoryMakeup, CategoryOther:
		return true
	default:
		return false
	}
}

// EventService is a bookable add-on offered by a vendor. Bookings
// always charge PriceMin; PriceMax only frames the quoted range.
type EventService struct {
	ID          uuid.UUID      `json:"id" gorm:"primaryKey;type:uuid"`
	VendorID    uuid.UUID      `json:"vendor_id" gorm:"type:uuid;not null;index"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	Category    Category       `json:"category" gorm:"not null;index"`
	City        string         `json:"city" gorm:"index"`
	PriceMin    float64        `json:"price_min" gorm:"not null"`
	PriceMax    float64        `json:"price_max" gorm:"not null"`
	Images      []string       `json:"images" gorm:"type:jsonb;serializer:json"`
	Rating      float64        `json:"rating" gorm:"default:0"`
	ReviewCount int            `json:"review_count" gorm:"default:0"`
	IsVerified  bool           `json:"is_verified" gorm:"default:false"`
	Packages    []EventPackage `json:"packages,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (EventService) TableName() string {
	return "event_services"
}

// EventPackage is a preset bundle under a service, priced flat.
type EventPackage struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	ServiceID   uuid.UUID `json:"service_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Inclusions  []string  `json:"inclusions" gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time `json:"created_at"`
}

func (EventPackage) TableName() string {
	return "event_packages"
}
