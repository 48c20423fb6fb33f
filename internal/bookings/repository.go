package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"utsav/internal/availability"
	"utsav/internal/calendar"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDatesUnavailable = errors.New("dates unavailable")

type BookingListQuery struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type Repository interface {
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error)
	GetVenueBookings(ctx context.Context, venueID uuid.UUID) ([]Booking, error)
	GetAllBookings(ctx context.Context, query BookingListQuery) ([]Booking, int64, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status Status, cancelledAt *time.Time) error

	// CreateWithDateReservation inserts the booking and its blocked
	// dates in one transaction, failing with ErrDatesUnavailable if
	// any day in the range is already taken.
	CreateWithDateReservation(ctx context.Context, booking *Booking) error

	// ReleaseDates frees the blocked dates a cancelled booking owned.
	ReleaseDates(ctx context.Context, booking *Booking) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	var bookings []Booking
	var totalCount int64

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	baseQuery := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("user_id = ?", userID)

	if query.Status != "" {
		baseQuery = baseQuery.Where("status = ?", query.Status)
	}

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&bookings).Error

	return bookings, totalCount, err
}

func (r *repository) GetVenueBookings(ctx context.Context, venueID uuid.UUID) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("event_date ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) GetAllBookings(ctx context.Context, query BookingListQuery) ([]Booking, int64, error) {
	var bookings []Booking
	var totalCount int64

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	baseQuery := r.db.WithContext(ctx).Model(&Booking{})
	if query.Status != "" {
		baseQuery = baseQuery.Where("status = ?", query.Status)
	}

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&bookings).Error

	return bookings, totalCount, err
}

func (r *repository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status Status, cancelledAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if cancelledAt != nil {
		updates["cancelled_at"] = *cancelledAt
	}

	result := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateWithDateReservation closes the check-then-act window: the
// venue row is locked for the duration of the transaction, so two
// concurrent confirmations for overlapping ranges serialize and the
// loser sees the winner's blocked dates.
func (r *repository) CreateWithDateReservation(ctx context.Context, booking *Booking) error {
	days, err := calendar.Range(booking.StartDay(), booking.EndDay())
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the venue row so competing reservations queue up.
		var venue struct {
			ID uuid.UUID `gorm:"column:id"`
		}
		err := tx.Table("venues").
			Select("id").
			Where("id = ?", booking.VenueID).
			Set("gorm:query_option", "FOR UPDATE").
			First(&venue).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("venue not found")
			}
			return fmt.Errorf("failed to lock venue: %w", err)
		}

		// 2. Re-check the range under the lock.
		var taken int64
		err = tx.Model(&availability.BlockedDate{}).
			Where("venue_id = ? AND date BETWEEN ? AND ?",
				booking.VenueID, booking.StartDay().Time(), booking.EndDay().Time()).
			Count(&taken).Error
		if err != nil {
			return fmt.Errorf("failed to check blocked dates: %w", err)
		}
		if taken > 0 {
			return ErrDatesUnavailable
		}

		// 3. Persist the booking.
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		// 4. Block every day of the stay in the same transaction.
		now := time.Now()
		records := make([]availability.BlockedDate, 0, len(days))
		for _, day := range days {
			records = append(records, availability.BlockedDate{
				ID:        uuid.New(),
				VenueID:   booking.VenueID,
				Date:      day.Time(),
				Status:    availability.StatusBooked,
				Note:      booking.BlockNote(),
				CreatedAt: now,
			})
		}
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "venue_id"}, {Name: "date"}},
			DoNothing: true,
		}).Create(&records).Error
		if err != nil {
			return fmt.Errorf("failed to block dates: %w", err)
		}

		return nil
	})
}

func (r *repository) ReleaseDates(ctx context.Context, booking *Booking) error {
	err := r.db.WithContext(ctx).
		Where("venue_id = ? AND note = ?", booking.VenueID, booking.BlockNote()).
		Delete(&availability.BlockedDate{}).Error
	if err != nil {
		return fmt.Errorf("failed to release blocked dates: %w", err)
	}
	return nil
}
