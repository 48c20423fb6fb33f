package venues

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memoryRepository is an in-memory Repository used by tests and the seeder's
// dry-run mode. It mirrors the gorm implementation's behavior, including
// returning gorm.ErrRecordNotFound for missing venues.
type memoryRepository struct {
	mu     sync.RWMutex
	venues map[uuid.UUID]*Venue
}

func NewMemoryRepository() Repository {
	return &memoryRepository{venues: make(map[uuid.UUID]*Venue)}
}

func (r *memoryRepository) Create(_ context.Context, venue *Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	for i := range venue.Halls {
		if venue.Halls[i].ID == uuid.Nil {
			venue.Halls[i].ID = uuid.New()
		}
		venue.Halls[i].VenueID = venue.ID
	}
	if venue.FoodService != nil {
		if venue.FoodService.ID == uuid.Nil {
			venue.FoodService.ID = uuid.New()
		}
		venue.FoodService.VenueID = venue.ID
	}

	clone := *venue
	r.venues[venue.ID] = &clone
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	venue, ok := r.venues[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *venue
	return &clone, nil
}

func (r *memoryRepository) List(_ context.Context, filters VenueFilters) ([]Venue, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.Limit <= 0 {
		filters.Limit = 20
	}

	var matched []Venue
	for _, v := range r.venues {
		if filters.OnlyListed && !v.IsVerified {
			continue
		}
		if filters.City != "" && !strings.EqualFold(filters.City, v.City) {
			continue
		}
		if filters.Guests > 0 && v.Capacity < filters.Guests {
			continue
		}
		if filters.MinPrice > 0 && v.StartingPrice < filters.MinPrice {
			continue
		}
		if filters.MaxPrice > 0 && v.StartingPrice > filters.MaxPrice {
			continue
		}
		if filters.HasFood && (v.FoodService == nil || !v.FoodService.IsAvailable) {
			continue
		}
		matched = append(matched, *v)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (filters.Page - 1) * filters.Limit
	if start >= len(matched) {
		return []Venue{}, total, nil
	}
	end := start + filters.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *memoryRepository) GetByVendorID(_ context.Context, vendorID uuid.UUID) ([]Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var owned []Venue
	for _, v := range r.venues {
		if v.VendorID == vendorID {
			owned = append(owned, *v)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	return owned, nil
}

func (r *memoryRepository) Update(_ context.Context, venue *Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.venues[venue.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *venue
	clone.Halls = existing.Halls
	clone.FoodService = existing.FoodService
	r.venues[venue.ID] = &clone
	return nil
}

func (r *memoryRepository) SetVerified(_ context.Context, id uuid.UUID, verified bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	venue, ok := r.venues[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	venue.IsVerified = verified
	return nil
}

func (r *memoryRepository) ReplaceHalls(_ context.Context, venueID uuid.UUID, halls []Hall) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	venue, ok := r.venues[venueID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range halls {
		if halls[i].ID == uuid.Nil {
			halls[i].ID = uuid.New()
		}
		halls[i].VenueID = venueID
	}
	venue.Halls = halls
	return nil
}

func (r *memoryRepository) ReplaceFoodService(_ context.Context, venueID uuid.UUID, fs *FoodService) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	venue, ok := r.venues[venueID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if fs != nil {
		if fs.ID == uuid.Nil {
			fs.ID = uuid.New()
		}
		fs.VenueID = venueID
	}
	venue.FoodService = fs
	return nil
}

func (r *memoryRepository) CountPendingVerification(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, v := range r.venues {
		if !v.IsVerified {
			count++
		}
	}
	return count, nil
}
