package availability_test

import (
	"context"
	"testing"
	"time"

	"utsav/internal/availability"
	"utsav/internal/calendar"
	"utsav/internal/venues"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() availability.Service {
	return availability.NewService(availability.NewMemoryRepository(), venues.NewMemoryRepository(), nil)
}

func day(y int, m time.Month, d int) calendar.Day {
	return calendar.Day{Year: y, Month: m, Day: d}
}

func TestSetBlockedAndIsBlocked(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	venueID := uuid.New()

	records, err := svc.SetBlocked(ctx, venueID,
		[]calendar.Day{day(2026, time.March, 10), day(2026, time.March, 11)},
		availability.StatusUnavailable, "maintenance")
	require.NoError(t, err)
	require.Len(t, records, 2)

	blocked, err := svc.IsBlocked(ctx, venueID, day(2026, time.March, 10))
	require.NoError(t, err)
	assert.True(t, blocked)

	free, err := svc.IsBlocked(ctx, venueID, day(2026, time.March, 12))
	require.NoError(t, err)
	assert.False(t, free)
}

func TestSetBlockedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	venueID := uuid.New()

	d := day(2026, time.April, 5)

	_, err := svc.SetBlocked(ctx, venueID, []calendar.Day{d}, availability.StatusBlocked, "first")
	require.NoError(t, err)

	_, err = svc.SetBlocked(ctx, venueID, []calendar.Day{d}, availability.StatusBooked, "second")
	require.NoError(t, err)

	records, err := svc.GetBlockedDatesByVenue(ctx, venueID)
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Last write wins: the replacement carries the later status and note.
	assert.Equal(t, availability.StatusBooked, records[0].Status)
	assert.Equal(t, "second", records[0].Note)
}

func TestSetBlockedRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	venueID := uuid.New()

	_, err := svc.SetBlocked(ctx, venueID, []calendar.Day{day(2026, time.May, 1)}, availability.BlockStatus("BOOKED"), "")
	assert.ErrorIs(t, err, availability.ErrInvalidStatus)

	_, err = svc.SetBlocked(ctx, venueID, nil, availability.StatusBooked, "")
	assert.ErrorIs(t, err, availability.ErrInvalidArgument)

	_, err = svc.SetBlocked(ctx, venueID, []calendar.Day{{}}, availability.StatusBooked, "")
	assert.ErrorIs(t, err, availability.ErrInvalidArgument)
}

func TestAreDatesAvailable(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	venueID := uuid.New()

	_, err := svc.SetBlocked(ctx, venueID, []calendar.Day{day(2026, time.March, 11)}, availability.StatusBooked, "")
	require.NoError(t, err)

	// One blocked day anywhere in the range poisons the whole range.
	ok, err := svc.AreDatesAvailable(ctx, venueID, day(2026, time.March, 10), day(2026, time.March, 12))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.AreDatesAvailable(ctx, venueID, day(2026, time.March, 12), day(2026, time.March, 14))
	require.NoError(t, err)
	assert.True(t, ok)

	// Single-day range is the minimal valid range.
	ok, err = svc.AreDatesAvailable(ctx, venueID, day(2026, time.March, 11), day(2026, time.March, 11))
	require.NoError(t, err)
	assert.False(t, ok)

	// Inverted ranges are a caller error.
	_, err = svc.AreDatesAvailable(ctx, venueID, day(2026, time.March, 12), day(2026, time.March, 10))
	assert.ErrorIs(t, err, calendar.ErrInvalidDateRange)
}

func TestAvailabilityIsPerVenue(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	venueA := uuid.New()
	venueB := uuid.New()

	_, err := svc.SetBlocked(ctx, venueA, []calendar.Day{day(2026, time.June, 1)}, availability.StatusBooked, "")
	require.NoError(t, err)

	ok, err := svc.AreDatesAvailable(ctx, venueB, day(2026, time.June, 1), day(2026, time.June, 1))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUnblock(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	venueID := uuid.New()

	d := day(2026, time.July, 20)
	_, err := svc.SetBlocked(ctx, venueID, []calendar.Day{d}, availability.StatusBlocked, "")
	require.NoError(t, err)

	require.NoError(t, svc.Unblock(ctx, venueID, d))

	blocked, err := svc.IsBlocked(ctx, venueID, d)
	require.NoError(t, err)
	assert.False(t, blocked)

	// Unblocking a free day is a no-op, not an error.
	require.NoError(t, svc.Unblock(ctx, venueID, d))
}

func newVendorFixture(t *testing.T) (availability.Service, uuid.UUID, uuid.UUID) {
	t.Helper()

	venueRepo := venues.NewMemoryRepository()
	vendorID := uuid.New()
	venue := &venues.Venue{
		ID:       uuid.New(),
		VendorID: vendorID,
		Name:     "Lotus Garden Resort",
		City:     "Udaipur",
		Capacity: 400,
	}
	require.NoError(t, venueRepo.Create(context.Background(), venue))

	svc := availability.NewService(availability.NewMemoryRepository(), venueRepo, nil)
	return svc, vendorID, venue.ID
}

func TestSetBlockedDedupesDays(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	venueID := uuid.New()

	d := day(2026, time.August, 14)
	records, err := svc.SetBlocked(ctx, venueID,
		[]calendar.Day{d, day(2026, time.August, 15), d},
		availability.StatusBlocked, "family function")
	require.NoError(t, err)

	// The repeated day yields one record, so the batch upsert never
	// targets the same row twice.
	require.Len(t, records, 2)

	stored, err := svc.GetBlockedDatesByVenue(ctx, venueID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestVendorBlockingRequiresOwnership(t *testing.T) {
	ctx := context.Background()
	svc, vendorID, venueID := newVendorFixture(t)

	d := day(2026, time.September, 5)

	// A different vendor cannot touch this venue's calendar.
	_, err := svc.SetBlockedForVendor(ctx, uuid.New(), venueID,
		[]calendar.Day{d}, availability.StatusUnavailable, "maintenance")
	assert.ErrorIs(t, err, venues.ErrNotVenueOwner)

	blocked, err := svc.IsBlocked(ctx, venueID, d)
	require.NoError(t, err)
	assert.False(t, blocked)

	// Unknown venues surface as not found, not as a silent write.
	_, err = svc.SetBlockedForVendor(ctx, vendorID, uuid.New(),
		[]calendar.Day{d}, availability.StatusUnavailable, "maintenance")
	assert.ErrorIs(t, err, venues.ErrVenueNotFound)

	// The owner's request goes through.
	records, err := svc.SetBlockedForVendor(ctx, vendorID, venueID,
		[]calendar.Day{d}, availability.StatusUnavailable, "maintenance")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestVendorCannotUnblockForeignBookedDates(t *testing.T) {
	ctx := context.Background()
	svc, vendorID, venueID := newVendorFixture(t)

	d := day(2026, time.October, 12)
	_, err := svc.SetBlocked(ctx, venueID, []calendar.Day{d}, availability.StatusBooked, "Booking #abc123")
	require.NoError(t, err)

	// A vendor who does not own the venue cannot reopen a sold day.
	err = svc.UnblockForVendor(ctx, uuid.New(), venueID, d)
	assert.ErrorIs(t, err, venues.ErrNotVenueOwner)

	blocked, err := svc.IsBlocked(ctx, venueID, d)
	require.NoError(t, err)
	assert.True(t, blocked)

	ok, err := svc.AreDatesAvailable(ctx, venueID, d, d)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.UnblockForVendor(ctx, vendorID, venueID, d))

	blocked, err = svc.IsBlocked(ctx, venueID, d)
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestMonthCalendarMarksBlockedDays(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	venueID := uuid.New()

	_, err := svc.SetBlocked(ctx, venueID, []calendar.Day{day(2026, time.March, 11)}, availability.StatusBooked, "Booking #abc123")
	require.NoError(t, err)

	grid, err := svc.MonthCalendar(ctx, venueID, 2026, time.March)
	require.NoError(t, err)
	require.Len(t, grid, calendar.GridSize)

	var found bool
	for _, cell := range grid {
		if cell.Date == day(2026, time.March, 11) {
			found = true
			assert.True(t, cell.IsBlocked)
			assert.Equal(t, "booked", cell.BlockStatus)
			assert.False(t, cell.Clickable())
		}
	}
	assert.True(t, found)
}
