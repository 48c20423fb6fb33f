package database

import (
	"utsav/internal/availability"
	"utsav/internal/bookings"
	"utsav/internal/services"
	"utsav/internal/users"
	"utsav/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&venues.Venue{},
		&venues.Hall{},
		&venues.FoodService{},
		&services.EventService{},
		&services.EventPackage{},
		&availability.BlockedDate{},
		&bookings.Booking{},
	)
}
