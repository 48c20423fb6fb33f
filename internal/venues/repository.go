package venues

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VenueFilters struct {
	City       string  `form:"city"`
	Guests     int     `form:"guests"`
	MinPrice   float64 `form:"minPrice"`
	MaxPrice   float64 `form:"maxPrice"`
	HasFood    bool    `form:"hasFood"`
	OnlyListed bool    `form:"-"` // verified venues only (public browsing)
	Page       int     `form:"page"`
	Limit      int     `form:"limit"`
}

type Repository interface {
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	List(ctx context.Context, filters VenueFilters) ([]Venue, int64, error)
	GetByVendorID(ctx context.Context, vendorID uuid.UUID) ([]Venue, error)
	Update(ctx context.Context, venue *Venue) error
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
	ReplaceHalls(ctx context.Context, venueID uuid.UUID, halls []Hall) error
	ReplaceFoodService(ctx context.Context, venueID uuid.UUID, fs *FoodService) error
	CountPendingVerification(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).
		Preload("Halls").
		Preload("FoodService").
		Where("id = ?", id).
		First(&venue).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *repository) List(ctx context.Context, filters VenueFilters) ([]Venue, int64, error) {
	var venuesList []Venue
	var totalCount int64

	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.Limit <= 0 {
		filters.Limit = 20
	}

	baseQuery := r.db.WithContext(ctx).Model(&Venue{})
	baseQuery = r.applyFilters(baseQuery, filters)

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (filters.Page - 1) * filters.Limit
	err := baseQuery.
		Preload("Halls").
		Preload("FoodService").
		Order("created_at DESC").
		Offset(offset).
		Limit(filters.Limit).
		Find(&venuesList).Error

	return venuesList, totalCount, err
}

func (r *repository) GetByVendorID(ctx context.Context, vendorID uuid.UUID) ([]Venue, error) {
	var venuesList []Venue
	err := r.db.WithContext(ctx).
		Preload("Halls").
		Preload("FoodService").
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&venuesList).Error
	return venuesList, err
}

func (r *repository) Update(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).
		Omit("Halls", "FoodService").
		Save(venue).Error
}

func (r *repository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	return r.db.WithContext(ctx).
		Model(&Venue{}).
		Where("id = ?", id).
		Update("is_verified", verified).Error
}

// ReplaceHalls swaps the venue's halls wholesale inside one transaction.
func (r *repository) ReplaceHalls(ctx context.Context, venueID uuid.UUID, halls []Hall) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", venueID).Delete(&Hall{}).Error; err != nil {
			return err
		}
		if len(halls) == 0 {
			return nil
		}
		for i := range halls {
			halls[i].VenueID = venueID
		}
		return tx.Create(&halls).Error
	})
}

func (r *repository) ReplaceFoodService(ctx context.Context, venueID uuid.UUID, fs *FoodService) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", venueID).Delete(&FoodService{}).Error; err != nil {
			return err
		}
		if fs == nil {
			return nil
		}
		fs.VenueID = venueID
		return tx.Create(fs).Error
	})
}

func (r *repository) CountPendingVerification(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Venue{}).
		Where("is_verified = ?", false).
		Count(&count).Error
	return count, err
}

func (r *repository) applyFilters(query *gorm.DB, filters VenueFilters) *gorm.DB {
	if filters.OnlyListed {
		query = query.Where("is_verified = ?", true)
	}
	if filters.City != "" {
		query = query.Where("LOWER(city) = LOWER(?)", filters.City)
	}
	if filters.Guests > 0 {
		query = query.Where("capacity >= ?", filters.Guests)
	}
	if filters.MinPrice > 0 {
		query = query.Where("starting_price >= ?", filters.MinPrice)
	}
	if filters.MaxPrice > 0 {
		query = query.Where("starting_price <= ?", filters.MaxPrice)
	}
	if filters.HasFood {
		query = query.Where("EXISTS (SELECT 1 FROM food_services fs WHERE fs.venue_id = venues.id AND fs.is_available)")
	}
	return query
}
