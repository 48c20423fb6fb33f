package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memoryRepository backs tests and local development without Postgres.
type memoryRepository struct {
	mu       sync.RWMutex
	services map[uuid.UUID]*EventService
}

func NewMemoryRepository() Repository {
	return &memoryRepository{services: make(map[uuid.UUID]*EventService)}
}

func (m *memoryRepository) Create(ctx context.Context, svc *EventService) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *svc
	m.services[svc.ID] = &clone
	return nil
}

func (m *memoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*EventService, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	svc, ok := m.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *svc
	return &clone, nil
}

func (m *memoryRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]EventService, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []EventService
	for _, id := range ids {
		if svc, ok := m.services[id]; ok {
			out = append(out, *svc)
		}
	}
	return out, nil
}

func (m *memoryRepository) List(ctx context.Context, filters ServiceFilters) ([]EventService, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []EventService
	for _, svc := range m.services {
		if !svc.IsVerified {
			continue
		}
		if filters.Category != "" && string(svc.Category) != filters.Category {
			continue
		}
		if filters.City != "" && !strings.EqualFold(svc.City, filters.City) {
			continue
		}
		if filters.MaxPrice > 0 && svc.PriceMin > filters.MaxPrice {
			continue
		}
		matched = append(matched, *svc)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Rating != matched[j].Rating {
			return matched[i].Rating > matched[j].Rating
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (filters.Page - 1) * filters.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filters.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *memoryRepository) GetByVendorID(ctx context.Context, vendorID uuid.UUID) ([]EventService, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []EventService
	for _, svc := range m.services {
		if svc.VendorID == vendorID {
			out = append(out, *svc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryRepository) Update(ctx context.Context, svc *EventService) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.services[svc.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *svc
	m.services[svc.ID] = &clone
	return nil
}

func (m *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.services, id)
	return nil
}

func (m *memoryRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	svc, ok := m.services[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	svc.IsVerified = verified
	return nil
}
