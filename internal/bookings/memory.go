package bookings

import (
	"context"
	"sort"
	"sync"
	"time"

	"utsav/internal/availability"
	"utsav/internal/calendar"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memoryRepository pairs an in-memory booking table with a blocked-date
// store. The mutex plays the role of the venue row lock: reservation
// check and write happen under one critical section.
type memoryRepository struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*Booking
	blocks   availability.Repository
}

func NewMemoryRepository(blocks availability.Repository) Repository {
	return &memoryRepository{
		bookings: make(map[uuid.UUID]*Booking),
		blocks:   blocks,
	}
}

func (m *memoryRepository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	booking, ok := m.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *booking
	return &clone, nil
}

func (m *memoryRepository) GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	var matched []Booking
	for _, b := range m.bookings {
		if b.UserID != userID {
			continue
		}
		if query.Status != "" && b.Status.String() != query.Status {
			continue
		}
		matched = append(matched, *b)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	start := (query.Page - 1) * query.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + query.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *memoryRepository) GetVenueBookings(ctx context.Context, venueID uuid.UUID) ([]Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Booking
	for _, b := range m.bookings {
		if b.VenueID == venueID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.Before(out[j].EventDate) })
	return out, nil
}

func (m *memoryRepository) GetAllBookings(ctx context.Context, query BookingListQuery) ([]Booking, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	var matched []Booking
	for _, b := range m.bookings {
		if query.Status != "" && b.Status.String() != query.Status {
			continue
		}
		matched = append(matched, *b)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	start := (query.Page - 1) * query.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + query.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *memoryRepository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status Status, cancelledAt *time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	booking, ok := m.bookings[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	if cancelledAt != nil {
		booking.CancelledAt = cancelledAt
	}
	return nil
}

func (m *memoryRepository) CreateWithDateReservation(ctx context.Context, booking *Booking) error {
	days, err := calendar.Range(booking.StartDay(), booking.EndDay())
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, err := m.blocks.GetByVenue(ctx, booking.VenueID)
	if err != nil {
		return err
	}
	taken := make(map[calendar.Day]struct{}, len(existing))
	for i := range existing {
		taken[existing[i].Day()] = struct{}{}
	}
	for _, day := range days {
		if _, conflict := taken[day]; conflict {
			return ErrDatesUnavailable
		}
	}

	clone := *booking
	m.bookings[booking.ID] = &clone

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
	return m.blocks.Upsert(ctx, records)
}

func (m *memoryRepository) ReleaseDates(ctx context.Context, booking *Booking) error {
	return m.blocks.DeleteByNote(ctx, booking.VenueID, booking.BlockNote())
}
