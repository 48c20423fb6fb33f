package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"utsav/internal/calendar"
	"utsav/internal/pricing"
	"utsav/internal/shared/constants"
	"utsav/internal/venues"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidStatus   = errors.New("invalid block status")
)

type Service interface {
	IsBlocked(ctx context.Context, venueID uuid.UUID, day calendar.Day) (bool, error)
	AreDatesAvailable(ctx context.Context, venueID uuid.UUID, start, end calendar.Day) (bool, error)
	SetBlocked(ctx context.Context, venueID uuid.UUID, days []calendar.Day, status BlockStatus, note string) ([]BlockedDate, error)
	Unblock(ctx context.Context, venueID uuid.UUID, day calendar.Day) error
	SetBlockedForVendor(ctx context.Context, vendorID, venueID uuid.UUID, days []calendar.Day, status BlockStatus, note string) ([]BlockedDate, error)
	UnblockForVendor(ctx context.Context, vendorID, venueID uuid.UUID, day calendar.Day) error
	GetBlockedDatesByVenue(ctx context.Context, venueID uuid.UUID) ([]BlockedDate, error)
	MonthCalendar(ctx context.Context, venueID uuid.UUID, year int, month time.Month) ([]calendar.DayInfo, error)
	InvalidateVenue(ctx context.Context, venueID uuid.UUID)
}

type service struct {
	repo        Repository
	venueRepo   venues.Repository
	redisClient *redis.Client
}

func NewService(repo Repository, venueRepo venues.Repository, redisClient *redis.Client) Service {
	return &service{repo: repo, venueRepo: venueRepo, redisClient: redisClient}
}

func (s *service) IsBlocked(ctx context.Context, venueID uuid.UUID, day calendar.Day) (bool, error) {
	_, err := s.repo.GetByVenueAndDate(ctx, venueID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// AreDatesAvailable reports whether every day in [start, end] is free.
// The range is inclusive on both ends; a single day is the minimal
// valid range.
func (s *service) AreDatesAvailable(ctx context.Context, venueID uuid.UUID, start, end calendar.Day) (bool, error) {
	days, err := calendar.Range(start, end)
	if err != nil {
		return false, err
	}

	records, err := s.GetBlockedDatesByVenue(ctx, venueID)
	if err != nil {
		return false, err
	}

	blocked := make(map[calendar.Day]struct{}, len(records))
	for i := range records {
		blocked[records[i].Day()] = struct{}{}
	}

	for _, day := range days {
		if _, taken := blocked[day]; taken {
			return false, nil
		}
	}
	return true, nil
}

// SetBlocked replaces any existing record for each (venue, day) and
// writes a fresh one. Calling twice with the same input yields one
// record per day, not two.
func (s *service) SetBlocked(ctx context.Context, venueID uuid.UUID, days []calendar.Day, status BlockStatus, note string) ([]BlockedDate, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: no dates given", ErrInvalidArgument)
	}
	for _, day := range days {
		if day.IsZero() {
			return nil, fmt.Errorf("%w: zero date", ErrInvalidArgument)
		}
	}

	// Duplicate days in one request collapse to a single record; a
	// batch upsert cannot touch the same row twice.
	now := time.Now()
	seen := make(map[calendar.Day]struct{}, len(days))
	records := make([]BlockedDate, 0, len(days))
	for _, day := range days {
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		records = append(records, BlockedDate{
			ID:        uuid.New(),
			VenueID:   venueID,
			Date:      day.Time(),
			Status:    status,
			Note:      note,
			CreatedAt: now,
		})
	}

	if err := s.repo.Upsert(ctx, records); err != nil {
		return nil, err
	}

	s.InvalidateVenue(ctx, venueID)
	return records, nil
}

func (s *service) Unblock(ctx context.Context, venueID uuid.UUID, day calendar.Day) error {
	if day.IsZero() {
		return fmt.Errorf("%w: zero date", ErrInvalidArgument)
	}
	if err := s.repo.Delete(ctx, venueID, day); err != nil {
		return err
	}
	s.InvalidateVenue(ctx, venueID)
	return nil
}

// SetBlockedForVendor is the vendor date-management path: the venue
// must exist and belong to the calling vendor before anything mutates.
func (s *service) SetBlockedForVendor(ctx context.Context, vendorID, venueID uuid.UUID, days []calendar.Day, status BlockStatus, note string) ([]BlockedDate, error) {
	if err := s.requireOwner(ctx, vendorID, venueID); err != nil {
		return nil, err
	}
	return s.SetBlocked(ctx, venueID, days, status, note)
}

func (s *service) UnblockForVendor(ctx context.Context, vendorID, venueID uuid.UUID, day calendar.Day) error {
	if err := s.requireOwner(ctx, vendorID, venueID); err != nil {
		return err
	}
	return s.Unblock(ctx, venueID, day)
}

func (s *service) requireOwner(ctx context.Context, vendorID, venueID uuid.UUID) error {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return venues.ErrVenueNotFound
		}
		return fmt.Errorf("failed to resolve venue: %w", err)
	}
	if venue.VendorID != vendorID {
		return venues.ErrNotVenueOwner
	}
	return nil
}

func (s *service) GetBlockedDatesByVenue(ctx context.Context, venueID uuid.UUID) ([]BlockedDate, error) {
	cacheKey := constants.BuildBlockedDatesKey(venueID.String())

	if s.redisClient != nil {
		data, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached []BlockedDate
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				log.Printf("Cache HIT for blocked dates: %s", venueID)
				return cached, nil
			}
		}
		log.Printf("Cache MISS for blocked dates: %s", venueID)
	}

	records, err := s.repo.GetByVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(records); err == nil {
			if err := s.redisClient.Set(ctx, cacheKey, data, constants.TTL_BLOCKED_DATES).Err(); err != nil {
				log.Printf("Failed to cache blocked dates for %s: %v", venueID, err)
			}
		}
	}

	return records, nil
}

// MonthCalendar builds the 42-cell grid the booking UI renders,
// marking blocked days and attaching display multipliers.
func (s *service) MonthCalendar(ctx context.Context, venueID uuid.UUID, year int, month time.Month) ([]calendar.DayInfo, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month out of range", ErrInvalidArgument)
	}

	records, err := s.GetBlockedDatesByVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	blocked := make(map[calendar.Day]string, len(records))
	for i := range records {
		blocked[records[i].Day()] = records[i].Status.String()
	}

	lookup := func(day calendar.Day) (string, bool) {
		status, ok := blocked[day]
		return status, ok
	}

	return calendar.MonthGrid(year, month, calendar.Today(), lookup, pricing.Multiplier), nil
}

func (s *service) InvalidateVenue(ctx context.Context, venueID uuid.UUID) {
	if s.redisClient == nil {
		return
	}
	cacheKey := constants.BuildBlockedDatesKey(venueID.String())
	if err := s.redisClient.Del(ctx, cacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate blocked dates cache for %s: %v", venueID, err)
	}
}
