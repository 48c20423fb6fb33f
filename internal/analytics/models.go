package analytics

import (
	"time"

	"github.com/google/uuid"
)

// Dashboard & Overview Models

type DashboardAnalytics struct {
	Overview       OverviewMetrics      `json:"overview"`
	BookingMetrics BookingOverview      `json:"booking_metrics"`
	RecentActivity []RecentActivityItem `json:"recent_activity"`
	TopVenues      []VenuePerformance   `json:"top_venues"`
	RevenueByMonth []MonthlyRevenue     `json:"revenue_by_month"`
}

type OverviewMetrics struct {
	TotalUsers           int     `json:"total_users"`
	TotalVendors         int     `json:"total_vendors"`
	TotalVenues          int     `json:"total_venues"`
	VerifiedVenues       int     `json:"verified_venues"`
	PendingVerifications int     `json:"pending_verifications"`
	TotalServices        int     `json:"total_services"`
	TotalBookings        int     `json:"total_bookings"`
	TotalRevenue         float64 `json:"total_revenue"`
	PlatformEarnings     float64 `json:"platform_earnings"`
	CancellationRate     float64 `json:"cancellation_rate"`
	RevenueGrowth        float64 `json:"revenue_growth"`
}

type BookingOverview struct {
	BookingsByStatus map[string]int `json:"bookings_by_status"`
	UpcomingEvents   int            `json:"upcoming_events"`
	AvgBookingValue  float64        `json:"avg_booking_value"`
}

type RecentActivityItem struct {
	Type        string     `json:"type"` // "booking", "cancellation", "venue_created"
	Description string     `json:"description"`
	Timestamp   time.Time  `json:"timestamp"`
	VenueID     *uuid.UUID `json:"venue_id,omitempty"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
}

type VenuePerformance struct {
	VenueID      uuid.UUID `json:"venue_id"`
	VenueName    string    `json:"venue_name"`
	City         string    `json:"city"`
	BookingCount int       `json:"booking_count"`
	Revenue      float64   `json:"revenue"`
	Rating       float64   `json:"rating"`
}

type MonthlyRevenue struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

type DailyBookingStats struct {
	Date          string  `json:"date"`
	TotalBookings int     `json:"total_bookings"`
	Revenue       float64 `json:"revenue"`
}

// Vendor Analytics Models

type VendorAnalytics struct {
	VendorID         uuid.UUID          `json:"vendor_id"`
	TotalVenues      int                `json:"total_venues"`
	VerifiedVenues   int                `json:"verified_venues"`
	TotalBookings    int                `json:"total_bookings"`
	UpcomingBookings int                `json:"upcoming_bookings"`
	ConfirmedRevenue float64            `json:"confirmed_revenue"`
	PlatformFees     float64            `json:"platform_fees"`
	BookingsByStatus map[string]int     `json:"bookings_by_status"`
	RevenueByMonth   []MonthlyRevenue   `json:"revenue_by_month"`
	TopVenues        []VenuePerformance `json:"top_venues"`
}
