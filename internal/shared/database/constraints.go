package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// Unique constraint so a venue can never hold two block rows for the same day
	err := db.Exec(`
		ALTER TABLE blocked_dates
		ADD CONSTRAINT IF NOT EXISTS unique_venue_date
		UNIQUE (venue_id, date);
	`).Error
	if err != nil {
		return err
	}

	// Index for availability range checks during booking
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_blocked_dates_venue_date
		ON blocked_dates (venue_id, date);
	`).Error
	if err != nil {
		return err
	}

	// Index for releasing a booking's blocked dates by note
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_blocked_dates_venue_note
		ON blocked_dates (venue_id, note);
	`).Error
	if err != nil {
		return err
	}

	// Index for booking queries by venue and event date
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_bookings_venue_event_date
		ON bookings (venue_id, event_date);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
