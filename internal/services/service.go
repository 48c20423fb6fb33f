package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"utsav/internal/shared/constants"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound    = errors.New("service not found")
	ErrNotServiceOwner    = errors.New("service does not belong to this vendor")
	ErrInvalidServiceData = errors.New("invalid service data")
)

type Service interface {
	CreateService(ctx context.Context, vendorID uuid.UUID, req CreateServiceRequest) (*ServiceResponse, error)
	GetService(ctx context.Context, id uuid.UUID) (*ServiceResponse, error)
	ListServices(ctx context.Context, filters ServiceFilters) (*ServiceListResponse, error)
	GetVendorServices(ctx context.Context, vendorID uuid.UUID) ([]ServiceResponse, error)
	UpdateService(ctx context.Context, vendorID uuid.UUID, id uuid.UUID, req UpdateServiceRequest) (*ServiceResponse, error)
	DeleteService(ctx context.Context, vendorID uuid.UUID, id uuid.UUID) error
	VerifyService(ctx context.Context, id uuid.UUID, verified bool) error
}

type addonService struct {
	repo        Repository
	redisClient *redis.Client
}

func NewService(repo Repository, redisClient *redis.Client) Service {
	return &addonService{repo: repo, redisClient: redisClient}
}

func (s *addonService) CreateService(ctx context.Context, vendorID uuid.UUID, req CreateServiceRequest) (*ServiceResponse, error) {
	if err := validateServiceRequest(req.Category, req.PriceMin, req.PriceMax); err != nil {
		return nil, err
	}

	svc := &EventService{
		ID:          uuid.New(),
		VendorID:    vendorID,
		Name:        req.Name,
		Description: req.Description,
		Category:    Category(req.Category),
		City:        req.City,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		Images:      req.Images,
	}

	for _, p := range req.Packages {
		svc.Packages = append(svc.Packages, EventPackage{
			ID:          uuid.New(),
			ServiceID:   svc.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Inclusions:  p.Inclusions,
		})
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)

	resp := toServiceResponse(svc)
	return &resp, nil
}

func (s *addonService) GetService(ctx context.Context, id uuid.UUID) (*ServiceResponse, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	resp := toServiceResponse(svc)
	return &resp, nil
}

func (s *addonService) ListServices(ctx context.Context, filters ServiceFilters) (*ServiceListResponse, error) {
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 20
	}

	svcs, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(svcs)),
		Total:    total,
		Page:     filters.Page,
		Limit:    filters.Limit,
	}
	for i := range svcs {
		resp.Services = append(resp.Services, toServiceResponse(&svcs[i]))
	}
	return resp, nil
}

func (s *addonService) GetVendorServices(ctx context.Context, vendorID uuid.UUID) ([]ServiceResponse, error) {
	svcs, err := s.repo.GetByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	out := make([]ServiceResponse, 0, len(svcs))
	for i := range svcs {
		out = append(out, toServiceResponse(&svcs[i]))
	}
	return out, nil
}

func (s *addonService) UpdateService(ctx context.Context, vendorID uuid.UUID, id uuid.UUID, req UpdateServiceRequest) (*ServiceResponse, error) {
	svc, err := s.ownedService(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.City != nil {
		svc.City = *req.City
	}
	if req.PriceMin != nil {
		svc.PriceMin = *req.PriceMin
	}
	if req.PriceMax != nil {
		svc.PriceMax = *req.PriceMax
	}
	if req.Images != nil {
		svc.Images = req.Images
	}

	if err := validateServiceRequest(string(svc.Category), svc.PriceMin, svc.PriceMax); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)

	resp := toServiceResponse(svc)
	return &resp, nil
}

func (s *addonService) DeleteService(ctx context.Context, vendorID uuid.UUID, id uuid.UUID) error {
	if _, err := s.ownedService(ctx, vendorID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

func (s *addonService) VerifyService(ctx context.Context, id uuid.UUID, verified bool) error {
	if err := s.repo.SetVerified(ctx, id, verified); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceNotFound
		}
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

func (s *addonService) ownedService(ctx context.Context, vendorID uuid.UUID, id uuid.UUID) (*EventService, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if svc.VendorID != vendorID {
		return nil, ErrNotServiceOwner
	}
	return svc, nil
}

func (s *addonService) invalidateListings(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	keys, err := s.redisClient.Keys(ctx, constants.PATTERN_INVALIDATE_SERVICES_ALL).Result()
	if err != nil {
		log.Printf("Failed to scan service cache keys: %v", err)
		return
	}
	if len(keys) > 0 {
		if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
			log.Printf("Failed to invalidate service caches: %v", err)
		}
	}
}

func validateServiceRequest(category string, priceMin, priceMax float64) error {
	if !IsValidCategory(category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidServiceData, category)
	}
	if priceMin < 0 || priceMax < 0 {
		return fmt.Errorf("%w: prices cannot be negative", ErrInvalidServiceData)
	}
	if priceMax < priceMin {
		return fmt.Errorf("%w: price range is inverted", ErrInvalidServiceData)
	}
	return nil
}
