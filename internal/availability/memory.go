package availability

import (
	"context"
	"sort"
	"sync"

	"utsav/internal/calendar"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type dayKey struct {
	venueID uuid.UUID
	day     calendar.Day
}

// memoryRepository keeps the date ledger in a map. Used by tests and
// local development without Postgres.
type memoryRepository struct {
	mu      sync.RWMutex
	records map[dayKey]BlockedDate
}

func NewMemoryRepository() Repository {
	return &memoryRepository{records: make(map[dayKey]BlockedDate)}
}

func (m *memoryRepository) Upsert(ctx context.Context, records []BlockedDate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range records {
		m.records[dayKey{rec.VenueID, calendar.FromTime(rec.Date)}] = rec
	}
	return nil
}

func (m *memoryRepository) GetByVenue(ctx context.Context, venueID uuid.UUID) ([]BlockedDate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []BlockedDate
	for key, rec := range m.records {
		if key.venueID == venueID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *memoryRepository) GetByVenueAndDate(ctx context.Context, venueID uuid.UUID, day calendar.Day) (*BlockedDate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[dayKey{venueID, day}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &rec, nil
}

func (m *memoryRepository) Delete(ctx context.Context, venueID uuid.UUID, day calendar.Day) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, dayKey{venueID, day})
	return nil
}

func (m *memoryRepository) DeleteByNote(ctx context.Context, venueID uuid.UUID, note string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, rec := range m.records {
		if key.venueID == venueID && rec.Note == note {
			delete(m.records, key)
		}
	}
	return nil
}
