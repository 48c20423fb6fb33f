package availability

import (
	"time"

	"utsav/internal/calendar"

	"github.com/google/uuid"
)

// BlockedDate marks one calendar day of one venue as taken. The
// (venue_id, date) pair is unique; writing the same day again replaces
// the previous record.
type BlockedDate struct {
	ID        uuid.UUID   `json:"id" gorm:"primaryKey;type:uuid"`
	VenueID   uuid.UUID   `json:"venue_id" gorm:"type:uuid;not null;uniqueIndex:idx_venue_date"`
	Date      time.Time   `json:"date" gorm:"type:date;not null;uniqueIndex:idx_venue_date"`
	Status    BlockStatus `json:"status" gorm:"not null"`
	Note      string      `json:"note"`
	CreatedAt time.Time   `json:"created_at"`
}

func (BlockedDate) TableName() string {
	return "blocked_dates"
}

// Day returns the record's calendar day, ignoring any time-of-day the
// database driver attached.
func (b *BlockedDate) Day() calendar.Day {
	return calendar.FromTime(b.Date)
}
