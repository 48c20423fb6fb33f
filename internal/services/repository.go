package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceFilters struct {
	Category string  `form:"category"`
	City     string  `form:"city"`
	MaxPrice float64 `form:"maxPrice"`
	Page     int     `form:"page"`
	Limit    int     `form:"limit"`
}

type Repository interface {
	Create(ctx context.Context, svc *EventService) error
	GetByID(ctx context.Context, id uuid.UUID) (*EventService, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]EventService, error)
	List(ctx context.Context, filters ServiceFilters) ([]EventService, int64, error)
	GetByVendorID(ctx context.Context, vendorID uuid.UUID) ([]EventService, error)
	Update(ctx context.Context, svc *EventService) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, svc *EventService) error {
	if err := r.db.WithContext(ctx).Create(svc).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*EventService, error) {
	var svc EventService
	err := r.db.WithContext(ctx).
		Preload("Packages").
		Where("id = ?", id).
		First(&svc).Error
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]EventService, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var svcs []EventService
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&svcs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get services: %w", err)
	}
	return svcs, nil
}

func (r *repository) List(ctx context.Context, filters ServiceFilters) ([]EventService, int64, error) {
	query := r.db.WithContext(ctx).Model(&EventService{}).Where("is_verified = ?", true)

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.City != "" {
		query = query.Where("city ILIKE ?", filters.City)
	}
	if filters.MaxPrice > 0 {
		query = query.Where("price_min <= ?", filters.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	var svcs []EventService
	offset := (filters.Page - 1) * filters.Limit
	err := query.
		Order("rating DESC, created_at DESC").
		Offset(offset).
		Limit(filters.Limit).
		Find(&svcs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list services: %w", err)
	}

	return svcs, total, nil
}

func (r *repository) GetByVendorID(ctx context.Context, vendorID uuid.UUID) ([]EventService, error) {
	var svcs []EventService
	err := r.db.WithContext(ctx).
		Preload("Packages").
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&svcs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor services: %w", err)
	}
	return svcs, nil
}

func (r *repository) Update(ctx context.Context, svc *EventService) error {
	err := r.db.WithContext(ctx).
		Omit("Packages").
		Save(svc).Error
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&EventService{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

func (r *repository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	result := r.db.WithContext(ctx).Model(&EventService{}).
		Where("id = ?", id).
		Update("is_verified", verified)
	if result.Error != nil {
		return fmt.Errorf("failed to update verification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
