package availability

import (
	"context"
	"errors"
	"fmt"

	"utsav/internal/calendar"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Upsert(ctx context.Context, records []BlockedDate) error
	GetByVenue(ctx context.Context, venueID uuid.UUID) ([]BlockedDate, error)
	GetByVenueAndDate(ctx context.Context, venueID uuid.UUID, day calendar.Day) (*BlockedDate, error)
	Delete(ctx context.Context, venueID uuid.UUID, day calendar.Day) error
	DeleteByNote(ctx context.Context, venueID uuid.UUID, note string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert writes one record per day, replacing whatever was there for
// the same (venue_id, date). Last write wins.
func (r *repository) Upsert(ctx context.Context, records []BlockedDate) error {
	if len(records) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "venue_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "note", "created_at"}),
	}).Create(&records).Error
	if err != nil {
		return fmt.Errorf("failed to upsert blocked dates: %w", err)
	}
	return nil
}

func (r *repository) GetByVenue(ctx context.Context, venueID uuid.UUID) ([]BlockedDate, error) {
	var records []BlockedDate
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get blocked dates: %w", err)
	}
	return records, nil
}

func (r *repository) GetByVenueAndDate(ctx context.Context, venueID uuid.UUID, day calendar.Day) (*BlockedDate, error) {
	var record BlockedDate
	err := r.db.WithContext(ctx).
		Where("venue_id = ? AND date = ?", venueID, day.Time()).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get blocked date: %w", err)
	}
	return &record, nil
}

// Delete removes the record for that (venue, day) if present. Deleting
// an unblocked day is a no-op, not an error.
func (r *repository) Delete(ctx context.Context, venueID uuid.UUID, day calendar.Day) error {
	err := r.db.WithContext(ctx).
		Where("venue_id = ? AND date = ?", venueID, day.Time()).
		Delete(&BlockedDate{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete blocked date: %w", err)
	}
	return nil
}

func (r *repository) DeleteByNote(ctx context.Context, venueID uuid.UUID, note string) error {
	err := r.db.WithContext(ctx).
		Where("venue_id = ? AND note = ?", venueID, note).
		Delete(&BlockedDate{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete blocked dates: %w", err)
	}
	return nil
}
