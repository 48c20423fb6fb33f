package venues

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
	ErrVenueNotFound    = errors.New("venue not found")
	ErrHallNotFound     = errors.New("hall not found in venue")
	ErrNotVenueOwner    = errors.New("venue does not belong to this vendor")
	ErrInvalidVenueData = errors.New("invalid venue data")
)

type Service interface {
	CreateVenue(ctx context.Context, vendorID uuid.UUID, req CreateVenueRequest) (*VenueResponse, error)
	GetVenue(ctx context.Context, id uuid.UUID) (*VenueResponse, error)
	ListVenues(ctx context.Context, filters VenueFilters) (*VenueListResponse, error)
	GetVendorVenues(ctx context.Context, vendorID uuid.UUID) ([]VenueResponse, error)
	UpdateVenue(ctx context.Context, vendorID uuid.UUID, id uuid.UUID, req UpdateVenueRequest) (*VenueResponse, error)
	ReplaceHalls(ctx context.Context, vendorID uuid.UUID, id uuid.UUID, req []HallRequest) (*VenueResponse, error)
	SetFoodService(ctx context.Context, vendorID uuid.UUID, id uuid.UUID, req FoodServiceRequest) (*VenueResponse, error)
	VerifyVenue(ctx context.Context, id uuid.UUID, verified bool) error
}

type venueService struct {
	repo        Repository
	redisClient *redis.Client
}

func NewService(repo Repository, redisClient *redis.Client) Service {
	return &venueService{repo: repo, redisClient: redisClient}
}

func (s *venueService) CreateVenue(ctx context.Context, vendorID uuid.UUID, req CreateVenueRequest) (*VenueResponse, error) {
	if err := validateHallRequests(req.Halls); err != nil {
		return nil, err
	}
	if req.FoodService != nil {
		if err := validateFoodServiceRequest(*req.FoodService); err != nil {
			return nil, err
		}
	}

	venue := &Venue{
		ID:          uuid.New(),
		VendorID:    vendorID,
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		Address:     req.Address,
		Images:      req.Images,
		Capacity:    req.Capacity,
		Amenities:   req.Amenities,
	}

	for _, h := range req.Halls {
		venue.Halls = append(venue.Halls, Hall{
			ID:          uuid.New(),
			VenueID:     venue.ID,
			Name:        h.Name,
			Capacity:    h.Capacity,
			PricePerDay: h.PricePerDay,
			Amenities:   h.Amenities,
		})
	}
	venue.StartingPrice = startingPrice(venue.Halls)

	if req.FoodService != nil {
		venue.FoodService = &FoodService{
			ID:                  uuid.New(),
			VenueID:             venue.ID,
			VegPricePerPlate:    req.FoodService.VegPricePerPlate,
			NonVegPricePerPlate: req.FoodService.NonVegPricePerPlate,
			MinPlates:           req.FoodService.MinPlates,
			VegMenuItems:        req.FoodService.VegMenuItems,
			NonVegMenuItems:     req.FoodService.NonVegMenuItems,
			IsAvailable:         true,
		}
		if venue.FoodService.MinPlates <= 0 {
			venue.FoodService.MinPlates = 50
		}
	}

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	if err := InvalidateVenueCache(ctx, s.redisClient, nil); err != nil {
		log.Printf("Failed to invalidate venues cache: %v", err)
	}

	resp := toVenueResponse(venue)
	return &resp, nil
}

func (s *venueService) GetVenue(ctx context.Context, id uuid.UUID) (*VenueResponse, error) {
	cacheKey := constants.CACHE_KEY_VENUE_DETAIL + id.String()

	var cached VenueResponse
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for venue: %s", id)
		return &cached, nil
	}
	log.Printf("Cache MISS for venue: %s", id)

	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}

	resp := toVenueResponse(venue)

	if err := SetCache(ctx, s.redisClient, cacheKey, resp, constants.CACHE_MEDIUM_TTL); err != nil {
		log.Printf("Failed to cache venue %s: %v", id, err)
	}

	return &resp, nil
}

func (s *venueService) ListVenues(ctx context.Context, filters VenueFilters) (*VenueListResponse, error) {
	filters.OnlyListed = true
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 20
	}

	cacheKey := listCacheKey(filters)

	var cached VenueListResponse
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for venue list: %s", cacheKey)
		return &cached, nil
	}
	log.Printf("Cache MISS for venue list: %s", cacheKey)

	venues, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	resp := &VenueListResponse{
		Venues: make([]VenueResponse, 0, len(venues)),
		Total:  total,
		Page:   filters.Page,
		Limit:  filters.Limit,
	}
	for i := range venues {
		resp.Venues = append(resp.Venues, toVenueResponse(&venues[i]))
	}

	if err := SetCache(ctx, s.redisClient, cacheKey, resp, constants.CACHE_SHORT_TTL); err != nil {
		log.Printf("Failed to cache venue list: %v", err)
	}

	return resp, nil
}

func (s *venueService) GetVendorVenues(ctx context.Context, vendorID uuid.UUID) ([]VenueResponse, error) {
	venues, err := s.repo.GetByVendorID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor venues: %w", err)
	}

	responses := make([]VenueResponse, 0, len(venues))
	for i := range venues {
		responses = append(responses, toVenueResponse(&venues[i]))
	}
	return responses, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, vendorID uuid.UUID, id uuid.UUID, req UpdateVenueRequest) (*VenueResponse, error) {
	venue, err := s.ownedVenue(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Description != nil {
		venue.Description = *req.Description
	}
	if req.City != nil {
		venue.City = *req.City
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.Images != nil {
		venue.Images = req.Images
	}
	if req.Capacity != nil {
		venue.Capacity = *req.Capacity
	}
	if req.Amenities != nil {
		venue.Amenities = req.Amenities
	}

	if err := s.repo.Update(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}

	if err := InvalidateVenueCache(ctx, s.redisClient, &id); err != nil {
		log.Printf("Failed to invalidate venue cache: %v", err)
	}

	resp := toVenueResponse(venue)
	return &resp, nil
}

func (s *venueService) ReplaceHalls(ctx context.Context, vendorID uuid.UUID, id uuid.UUID, req []HallRequest) (*VenueResponse, error) {
	if _, err := s.ownedVenue(ctx, vendorID, id); err != nil {
		return nil, err
	}
	if err := validateHallRequests(req); err != nil {
		return nil, err
	}

	halls := make([]Hall, 0, len(req))
	for _, h := range req {
		halls = append(halls, Hall{
			ID:          uuid.New(),
			VenueID:     id,
			Name:        h.Name,
			Capacity:    h.Capacity,
			PricePerDay: h.PricePerDay,
			Amenities:   h.Amenities,
		})
	}

	if err := s.repo.ReplaceHalls(ctx, id, halls); err != nil {
		return nil, fmt.Errorf("failed to replace halls: %w", err)
	}

	if err := InvalidateVenueCache(ctx, s.redisClient, &id); err != nil {
		log.Printf("Failed to invalidate venue cache: %v", err)
	}

	return s.freshVenue(ctx, id)
}

func (s *venueService) SetFoodService(ctx context.Context, vendorID uuid.UUID, id uuid.UUID, req FoodServiceRequest) (*VenueResponse, error) {
	if _, err := s.ownedVenue(ctx, vendorID, id); err != nil {
		return nil, err
	}
	if err := validateFoodServiceRequest(req); err != nil {
		return nil, err
	}

	fs := &FoodService{
		ID:                  uuid.New(),
		VenueID:             id,
		VegPricePerPlate:    req.VegPricePerPlate,
		NonVegPricePerPlate: req.NonVegPricePerPlate,
		MinPlates:           req.MinPlates,
		VegMenuItems:        req.VegMenuItems,
		NonVegMenuItems:     req.NonVegMenuItems,
		IsAvailable:         true,
	}
	if fs.MinPlates <= 0 {
		fs.MinPlates = 50
	}

	if err := s.repo.ReplaceFoodService(ctx, id, fs); err != nil {
		return nil, fmt.Errorf("failed to set food service: %w", err)
	}

	if err := InvalidateVenueCache(ctx, s.redisClient, &id); err != nil {
		log.Printf("Failed to invalidate venue cache: %v", err)
	}

	return s.freshVenue(ctx, id)
}

func (s *venueService) VerifyVenue(ctx context.Context, id uuid.UUID, verified bool) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVenueNotFound
		}
		return fmt.Errorf("failed to get venue: %w", err)
	}

	if err := s.repo.SetVerified(ctx, id, verified); err != nil {
		return fmt.Errorf("failed to update verification: %w", err)
	}

	if err := InvalidateVenueCache(ctx, s.redisClient, &id); err != nil {
		log.Printf("Failed to invalidate venue cache: %v", err)
	}

	return nil
}

func (s *venueService) ownedVenue(ctx context.Context, vendorID uuid.UUID, id uuid.UUID) (*Venue, error) {
	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	if venue.VendorID != vendorID {
		return nil, ErrNotVenueOwner
	}
	return venue, nil
}

func (s *venueService) freshVenue(ctx context.Context, id uuid.UUID) (*VenueResponse, error) {
	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload venue: %w", err)
	}
	resp := toVenueResponse(venue)
	return &resp, nil
}

func validateHallRequests(halls []HallRequest) error {
	for _, h := range halls {
		if h.Name == "" {
			return fmt.Errorf("%w: hall name is required", ErrInvalidVenueData)
		}
		if h.PricePerDay < 0 {
			return fmt.Errorf("%w: hall price per day cannot be negative", ErrInvalidVenueData)
		}
		if h.Capacity < 0 {
			return fmt.Errorf("%w: hall capacity cannot be negative", ErrInvalidVenueData)
		}
	}
	return nil
}

func validateFoodServiceRequest(req FoodServiceRequest) error {
	if req.VegPricePerPlate < 0 || req.NonVegPricePerPlate < 0 {
		return fmt.Errorf("%w: plate price cannot be negative", ErrInvalidVenueData)
	}
	return nil
}

func startingPrice(halls []Hall) float64 {
	var min float64
	for i, h := range halls {
		if i == 0 || h.PricePerDay < min {
			min = h.PricePerDay
		}
	}
	return min
}

func listCacheKey(filters VenueFilters) string {
	return fmt.Sprintf("%s%s:%d:%.0f:%.0f:%t:%d:%d",
		constants.CACHE_KEY_VENUES_LIST,
		filters.City, filters.Guests, filters.MinPrice, filters.MaxPrice,
		filters.HasFood, filters.Page, filters.Limit)
}
