package users

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser   Role = "USER"
	RoleVendor Role = "VENDOR"
	RoleAdmin  Role = "ADMIN"
)

// VendorType classifies what a vendor account offers.
type VendorType string

const (
	VendorTypeVenueOwner      VendorType = "venue_owner"
	VendorTypeEventManagement VendorType = "event_management"
	VendorTypeArtist          VendorType = "artist"
)

type User struct {
	ID         uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	FirstName  string     `json:"first_name" gorm:"not null"`
	LastName   string     `json:"last_name" gorm:"not null"`
	Password   string     `json:"-" gorm:"not null"` // hide in json
	Role       Role       `json:"role" gorm:"not null;default:'USER'"`
	VendorType VendorType `json:"vendor_type,omitempty"` // empty unless Role is VENDOR
	Email      string     `json:"email" gorm:"uniqueIndex;not null"`
	Phone      string     `json:"phone"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func IsValidRole(role string) bool {
	switch role {
	case string(RoleUser), string(RoleVendor), string(RoleAdmin):
		return true
	default:
		return false
	}
}

func IsValidVendorType(vt string) bool {
	switch vt {
	case string(VendorTypeVenueOwner), string(VendorTypeEventManagement), string(VendorTypeArtist):
		return true
	default:
		return false
	}
}
