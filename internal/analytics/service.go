package analytics

import (
	"context"
	"fmt"

	"utsav/internal/shared/constants"
	"utsav/pkg/cache"

	"github.com/google/uuid"
)

// Service defines the analytics service interface
type Service interface {
	GetDashboardAnalytics() (*DashboardAnalytics, error)
	GetDailyBookingStats(days int) ([]DailyBookingStats, error)
	GetVendorAnalytics(vendorID uuid.UUID) (*VendorAnalytics, error)
}

// service implements the Service interface
type service struct {
	repo         Repository
	cacheService cache.Service
}

// NewService creates a new analytics service instance
func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cacheService: cacheService}
}

func (s *service) GetDashboardAnalytics() (*DashboardAnalytics, error) {
	ctx := context.Background()
	cacheKey := constants.CACHE_KEY_ANALYTICS_DASHBOARD

	if s.cacheService != nil {
		var cached DashboardAnalytics
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	dashboard, err := s.repo.GetDashboardAnalytics()
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard analytics: %w", err)
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, dashboard, constants.TTL_ANALYTICS_DASHBOARD); err != nil {
			fmt.Printf("Warning: failed to cache dashboard analytics: %v\n", err)
		}
	}

	return dashboard, nil
}

func (s *service) GetDailyBookingStats(days int) ([]DailyBookingStats, error) {
	if days <= 0 || days > 365 {
		days = 30
	}

	stats, err := s.repo.GetDailyBookingStats(days)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily booking stats: %w", err)
	}

	return stats, nil
}

func (s *service) GetVendorAnalytics(vendorID uuid.UUID) (*VendorAnalytics, error) {
	ctx := context.Background()
	cacheKey := constants.BuildVendorAnalyticsKey(vendorID.String())

	if s.cacheService != nil {
		var cached VendorAnalytics
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	result, err := s.repo.GetVendorAnalytics(vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor analytics: %w", err)
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, result, constants.TTL_ANALYTICS_VENDOR); err != nil {
			fmt.Printf("Warning: failed to cache vendor analytics: %v\n", err)
		}
	}

	return result, nil
}
