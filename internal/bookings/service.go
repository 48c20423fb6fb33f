package bookings

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"utsav/internal/availability"
	"utsav/internal/bookingevents"
	"utsav/internal/calendar"
	"utsav/internal/pricing"
	"utsav/internal/services"
	"utsav/internal/venues"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrNotBookingOwner   = errors.New("booking does not belong to this user")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrVenueNotBookable  = errors.New("venue is not open for booking")
)

type Service interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*BookingResponse, error)
	GetBooking(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID) (*BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) (*BookingListResponse, error)
	GetVenueBookings(ctx context.Context, vendorID, venueID uuid.UUID) ([]BookingResponse, error)
	GetAllBookings(ctx context.Context, query BookingListQuery) (*BookingListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next Status) (*BookingResponse, error)
}

type bookingService struct {
	repo         Repository
	venueRepo    venues.Repository
	serviceRepo  services.Repository
	availability availability.Service
	publisher    bookingevents.Publisher
}

func NewService(repo Repository, venueRepo venues.Repository, serviceRepo services.Repository, availabilitySvc availability.Service, publisher bookingevents.Publisher) Service {
	if publisher == nil {
		publisher = bookingevents.NewNoopPublisher()
	}
	return &bookingService{
		repo:         repo,
		venueRepo:    venueRepo,
		serviceRepo:  serviceRepo,
		availability: availabilitySvc,
		publisher:    publisher,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*BookingResponse, error) {
	start, err := calendar.Parse(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad start date: %v", calendar.ErrInvalidDateRange, err)
	}
	end, err := calendar.Parse(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad end date: %v", calendar.ErrInvalidDateRange, err)
	}

	days, err := calendar.Range(start, end)
	if err != nil {
		return nil, err
	}
	numberOfDays := len(days)

	venue, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, venues.ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	if !venue.IsVerified {
		return nil, ErrVenueNotBookable
	}

	hall, ok := venue.HallByID(req.HallID)
	if !ok {
		return nil, venues.ErrHallNotFound
	}

	quoteInput := pricing.QuoteInput{
		PricePerDay: hall.PricePerDay,
		Days:        numberOfDays,
	}

	plates := 0
	foodOption := ""
	if req.FoodOption != "" {
		if venue.FoodService == nil || !venue.FoodService.IsAvailable {
			return nil, fmt.Errorf("%w: venue offers no food service", pricing.ErrInvalidFoodOption)
		}
		if !pricing.IsValidFoodOption(req.FoodOption) {
			return nil, fmt.Errorf("%w: %s", pricing.ErrInvalidFoodOption, req.FoodOption)
		}

		// Clamp plates at the venue's minimum before pricing.
		plates = req.Plates
		if plates < venue.FoodService.MinPlates {
			plates = venue.FoodService.MinPlates
		}
		foodOption = req.FoodOption

		quoteInput.HasFood = true
		quoteInput.FoodOption = pricing.FoodOption(foodOption)
		quoteInput.VegPerPlate = venue.FoodService.VegPricePerPlate
		quoteInput.NonVegPerPlate = venue.FoodService.NonVegPricePerPlate
		quoteInput.Plates = plates
	}

	lines, err := s.resolveServiceLines(ctx, req.ServiceIDs)
	if err != nil {
		return nil, err
	}
	quoteInput.Services = lines

	quote, err := pricing.ComputeQuote(quoteInput)
	if err != nil {
		return nil, err
	}

	booking := &Booking{
		ID:            uuid.New(),
		UserID:        userID,
		VenueID:       venue.ID,
		HallID:        hall.ID,
		EventDate:     start.Time(),
		EventEndDate:  end.Time(),
		NumberOfDays:  numberOfDays,
		GuestCount:    req.GuestCount,
		FoodOption:    foodOption,
		Plates:        plates,
		Services:      lines,
		VenuePrice:    quote.HallCost,
		FoodPrice:     quote.FoodCost,
		ServicesPrice: quote.ServicesCost,
		PlatformFee:   quote.PlatformFee,
		TotalPrice:    quote.Total,
		Status:        StatusPending,
	}

	if err := s.repo.CreateWithDateReservation(ctx, booking); err != nil {
		return nil, err
	}

	s.availability.InvalidateVenue(ctx, venue.ID)

	event := &bookingevents.BookingCreatedEvent{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		VenueID:    booking.VenueID,
		StartDate:  start.String(),
		EndDate:    end.String(),
		TotalPrice: booking.TotalPrice,
		CreatedAt:  time.Now(),
	}
	if err := s.publisher.PublishBookingCreated(ctx, event); err != nil {
		log.Printf("Failed to publish booking.created for %s: %v", booking.ID, err)
	}

	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID) (*BookingResponse, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if !isAdmin && booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}

	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) (*BookingListResponse, error) {
	bookings, total, err := s.repo.GetUserBookings(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	return toBookingListResponse(bookings, total, query), nil
}

// GetVenueBookings lists a venue's bookings for its owning vendor,
// ordered by event date.
func (s *bookingService) GetVenueBookings(ctx context.Context, vendorID, venueID uuid.UUID) ([]BookingResponse, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, venues.ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	if venue.VendorID != vendorID {
		return nil, venues.ErrNotVenueOwner
	}

	list, err := s.repo.GetVenueBookings(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue bookings: %w", err)
	}

	out := make([]BookingResponse, 0, len(list))
	for i := range list {
		out = append(out, toBookingResponse(&list[i]))
	}
	return out, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context, query BookingListQuery) (*BookingListResponse, error) {
	bookings, total, err := s.repo.GetAllBookings(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	return toBookingListResponse(bookings, total, query), nil
}

// UpdateStatus applies an admin transition. Cancelling releases the
// booking's blocked dates; no transition recomputes prices.
func (s *bookingService) UpdateStatus(ctx context.Context, id uuid.UUID, next Status) (*BookingResponse, error) {
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}

	booking, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, next)
	}

	var cancelledAt *time.Time
	if next == StatusCancelled {
		now := time.Now()
		cancelledAt = &now
	}

	if err := s.repo.UpdateBookingStatus(ctx, id, next, cancelledAt); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	if next == StatusCancelled {
		if err := s.repo.ReleaseDates(ctx, booking); err != nil {
			log.Printf("Failed to release dates for booking %s: %v", id, err)
		}
		s.availability.InvalidateVenue(ctx, booking.VenueID)
	}

	event := &bookingevents.BookingStatusChangedEvent{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		VenueID:   booking.VenueID,
		OldStatus: booking.Status.String(),
		NewStatus: next.String(),
		ChangedAt: time.Now(),
	}
	if err := s.publisher.PublishBookingStatusChanged(ctx, event); err != nil {
		log.Printf("Failed to publish booking.status_changed for %s: %v", id, err)
	}

	booking.Status = next
	booking.CancelledAt = cancelledAt
	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *bookingService) resolveServiceLines(ctx context.Context, ids []uuid.UUID) ([]pricing.ServiceLine, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	svcs, err := s.serviceRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve services: %w", err)
	}
	if len(svcs) != len(ids) {
		return nil, services.ErrServiceNotFound
	}

	lines := make([]pricing.ServiceLine, 0, len(svcs))
	for i := range svcs {
		lines = append(lines, pricing.ServiceLine{
			ServiceID: svcs[i].ID.String(),
			Name:      svcs[i].Name,
			MinPrice:  svcs[i].PriceMin,
		})
	}
	return lines, nil
}
