package bookings_test

import (
	"context"
	"testing"
	"time"

	"utsav/internal/availability"
	"utsav/internal/bookings"
	"utsav/internal/calendar"
	"utsav/internal/pricing"
	"utsav/internal/services"
	"utsav/internal/venues"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc          bookings.Service
	availability availability.Service
	venueRepo    venues.Repository
	serviceRepo  services.Repository
	venue        *venues.Venue
	hall         *venues.Hall
}

func newFixture(t *testing.T, withFood bool) *fixture {
	t.Helper()
	ctx := context.Background()

	blockRepo := availability.NewMemoryRepository()
	venueRepo := venues.NewMemoryRepository()
	availabilitySvc := availability.NewService(blockRepo, venueRepo, nil)
	serviceRepo := services.NewMemoryRepository()
	bookingRepo := bookings.NewMemoryRepository(blockRepo)

	venue := &venues.Venue{
		ID:         uuid.New(),
		VendorID:   uuid.New(),
		Name:       "Grand Imperial Palace",
		City:       "Jaipur",
		Capacity:   800,
		IsVerified: true,
		Halls: []venues.Hall{
			{ID: uuid.New(), Name: "Maharaja Hall", Capacity: 500, PricePerDay: 200000},
		},
	}
	if withFood {
		venue.FoodService = &venues.FoodService{
			ID:                  uuid.New(),
			VenueID:             venue.ID,
			VegPricePerPlate:    1200,
			NonVegPricePerPlate: 1800,
			MinPlates:           50,
			IsAvailable:         true,
		}
	}
	require.NoError(t, venueRepo.Create(ctx, venue))

	return &fixture{
		svc:          bookings.NewService(bookingRepo, venueRepo, serviceRepo, availabilitySvc, nil),
		availability: availabilitySvc,
		venueRepo:    venueRepo,
		serviceRepo:  serviceRepo,
		venue:        venue,
		hall:         &venue.Halls[0],
	}
}

func TestCreateBookingBlocksDates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	booking, err := f.svc.CreateBooking(ctx, uuid.New(), bookings.CreateBookingRequest{
		VenueID:    f.venue.ID,
		HallID:     f.hall.ID,
		StartDate:  "2026-04-01",
		EndDate:    "2026-04-03",
		GuestCount: 300,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, booking.NumberOfDays)
	assert.Equal(t, "pending", booking.Status)

	// Every day of the stay is now blocked with status booked.
	for d := 1; d <= 3; d++ {
		blocked, err := f.availability.IsBlocked(ctx, f.venue.ID, calendar.Day{Year: 2026, Month: time.April, Day: d})
		require.NoError(t, err)
		assert.True(t, blocked, "April %d should be blocked", d)
	}

	records, err := f.availability.GetBlockedDatesByVenue(ctx, f.venue.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, rec := range records {
		assert.Equal(t, availability.StatusBooked, rec.Status)
		assert.Contains(t, rec.Note, "Booking #")
		assert.Contains(t, rec.Note, booking.ID.String()[len(booking.ID.String())-6:])
	}
}

func TestCreateBookingRejectsTakenRange(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	_, err := f.availability.SetBlocked(ctx, f.venue.ID,
		[]calendar.Day{{Year: 2026, Month: time.April, Day: 2}},
		availability.StatusUnavailable, "maintenance")
	require.NoError(t, err)

	_, err = f.svc.CreateBooking(ctx, uuid.New(), bookings.CreateBookingRequest{
		VenueID:    f.venue.ID,
		HallID:     f.hall.ID,
		StartDate:  "2026-04-01",
		EndDate:    "2026-04-03",
		GuestCount: 300,
	})
	assert.ErrorIs(t, err, bookings.ErrDatesUnavailable)
}

func TestCreateBookingRejectsDoubleBooking(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	req := bookings.CreateBookingRequest{
		VenueID:    f.venue.ID,
		HallID:     f.hall.ID,
		StartDate:  "2026-05-10",
		EndDate:    "2026-05-12",
		GuestCount: 200,
	}

	_, err := f.svc.CreateBooking(ctx, uuid.New(), req)
	require.NoError(t, err)

	// Overlapping by a single day is enough to conflict.
	req.StartDate = "2026-05-12"
	req.EndDate = "2026-05-14"
	_, err = f.svc.CreateBooking(ctx, uuid.New(), req)
	assert.ErrorIs(t, err, bookings.ErrDatesUnavailable)
}

func TestCreateBookingPriceInvariant(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	svcID := uuid.New()
	require.NoError(t, f.serviceRepo.Create(ctx, &services.EventService{
		ID:         svcID,
		VendorID:   uuid.New(),
		Name:       "DJ Night",
		Category:   services.CategoryMusic,
		PriceMin:   25000,
		PriceMax:   60000,
		IsVerified: true,
	}))

	booking, err := f.svc.CreateBooking(ctx, uuid.New(), bookings.CreateBookingRequest{
		VenueID:    f.venue.ID,
		HallID:     f.hall.ID,
		StartDate:  "2026-11-20",
		EndDate:    "2026-11-21",
		GuestCount: 100,
		FoodOption: "both",
		Plates:     100,
		ServiceIDs: []uuid.UUID{svcID},
	})
	require.NoError(t, err)

	assert.Equal(t, float64(400000), booking.VenuePrice)  // 200000 x 2 days, flat
	assert.Equal(t, float64(300000), booking.FoodPrice)   // 100 plates x 2 days x 1500 avg
	assert.Equal(t, float64(25000), booking.ServicesPrice) // price range minimum

	subtotal := booking.VenuePrice + booking.FoodPrice + booking.ServicesPrice
	assert.Equal(t, subtotal*0.05, booking.PlatformFee)
	assert.Equal(t, subtotal+booking.PlatformFee, booking.TotalPrice)
}

func TestCreateBookingClampsPlates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	booking, err := f.svc.CreateBooking(ctx, uuid.New(), bookings.CreateBookingRequest{
		VenueID:    f.venue.ID,
		HallID:     f.hall.ID,
		StartDate:  "2026-06-01",
		EndDate:    "2026-06-01",
		GuestCount: 30,
		FoodOption: "veg",
		Plates:     20, // below the venue's 50-plate minimum
	})
	require.NoError(t, err)

	assert.Equal(t, 50, booking.Plates)
	assert.Equal(t, float64(50*1200), booking.FoodPrice)
}

func TestCreateBookingValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	// Inverted range.
	_, err := f.svc.CreateBooking(ctx, uuid.New(), bookings.CreateBookingRequest{
		VenueID:    f.venue.ID,
		HallID:     f.hall.ID,
		StartDate:  "2026-04-03",
		EndDate:    "2026-04-01",
		GuestCount: 100,
	})
	assert.ErrorIs(t, err, calendar.ErrInvalidDateRange)

	// Unknown hall.
	_, err = f.svc.CreateBooking(ctx, uuid.New(), bookings.CreateBookingRequest{
		VenueID:    f.venue.ID,
		HallID:     uuid.New(),
		StartDate:  "2026-04-01",
		EndDate:    "2026-04-02",
		GuestCount: 100,
	})
	assert.ErrorIs(t, err, venues.ErrHallNotFound)

	// Food requested at a venue without food service.
	_, err = f.svc.CreateBooking(ctx, uuid.New(), bookings.CreateBookingRequest{
		VenueID:    f.venue.ID,
		HallID:     f.hall.ID,
		StartDate:  "2026-04-01",
		EndDate:    "2026-04-02",
		GuestCount: 100,
		FoodOption: "veg",
		Plates:     100,
	})
	assert.ErrorIs(t, err, pricing.ErrInvalidFoodOption)
}

func TestCancellationReleasesDates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	booking, err := f.svc.CreateBooking(ctx, uuid.New(), bookings.CreateBookingRequest{
		VenueID:    f.venue.ID,
		HallID:     f.hall.ID,
		StartDate:  "2026-07-01",
		EndDate:    "2026-07-02",
		GuestCount: 150,
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateStatus(ctx, booking.ID, bookings.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", updated.Status)
	assert.NotNil(t, updated.CancelledAt)

	ok, err := f.availability.AreDatesAvailable(ctx, f.venue.ID,
		calendar.Day{Year: 2026, Month: time.July, Day: 1},
		calendar.Day{Year: 2026, Month: time.July, Day: 2})
	require.NoError(t, err)
	assert.True(t, ok)

	// Price fields survive the transition untouched.
	assert.Equal(t, booking.TotalPrice, updated.TotalPrice)
	assert.Equal(t, booking.PlatformFee, updated.PlatformFee)
}

func TestStatusTransitionRules(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	booking, err := f.svc.CreateBooking(ctx, uuid.New(), bookings.CreateBookingRequest{
		VenueID:    f.venue.ID,
		HallID:     f.hall.ID,
		StartDate:  "2026-08-01",
		EndDate:    "2026-08-01",
		GuestCount: 100,
	})
	require.NoError(t, err)

	// pending -> completed skips confirmation.
	_, err = f.svc.UpdateStatus(ctx, booking.ID, bookings.StatusCompleted)
	assert.ErrorIs(t, err, bookings.ErrInvalidTransition)

	_, err = f.svc.UpdateStatus(ctx, booking.ID, bookings.StatusConfirmed)
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, booking.ID, bookings.StatusCompleted)
	require.NoError(t, err)

	// completed is terminal.
	_, err = f.svc.UpdateStatus(ctx, booking.ID, bookings.StatusCancelled)
	assert.ErrorIs(t, err, bookings.ErrInvalidTransition)
}

func TestGetVenueBookingsRequiresOwnership(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	booking, err := f.svc.CreateBooking(ctx, uuid.New(), bookings.CreateBookingRequest{
		VenueID:    f.venue.ID,
		HallID:     f.hall.ID,
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-02",
		GuestCount: 150,
	})
	require.NoError(t, err)

	// The owning vendor sees the venue's bookings.
	list, err := f.svc.GetVenueBookings(ctx, f.venue.VendorID, f.venue.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, booking.ID, list[0].ID)

	// Any other vendor is refused.
	_, err = f.svc.GetVenueBookings(ctx, uuid.New(), f.venue.ID)
	assert.ErrorIs(t, err, venues.ErrNotVenueOwner)

	// Unknown venues are not found rather than empty.
	_, err = f.svc.GetVenueBookings(ctx, f.venue.VendorID, uuid.New())
	assert.ErrorIs(t, err, venues.ErrVenueNotFound)
}

func TestUnverifiedVenueNotBookable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	require.NoError(t, f.venueRepo.SetVerified(ctx, f.venue.ID, false))

	_, err := f.svc.CreateBooking(ctx, uuid.New(), bookings.CreateBookingRequest{
		VenueID:    f.venue.ID,
		HallID:     f.hall.ID,
		StartDate:  "2026-04-01",
		EndDate:    "2026-04-02",
		GuestCount: 100,
	})
	assert.ErrorIs(t, err, bookings.ErrVenueNotBookable)
}
