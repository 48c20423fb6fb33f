package analytics

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the analytics repository interface
type Repository interface {
	// Dashboard Analytics
	GetDashboardAnalytics() (*DashboardAnalytics, error)
	GetOverviewMetrics() (*OverviewMetrics, error)
	GetRecentActivity(limit int) ([]RecentActivityItem, error)
	GetDailyBookingStats(days int) ([]DailyBookingStats, error)

	// Vendor Analytics
	GetVendorAnalytics(vendorID uuid.UUID) (*VendorAnalytics, error)
}

// repository implements the Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new analytics repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Dashboard Analytics Implementation

func (r *repository) GetDashboardAnalytics() (*DashboardAnalytics, error) {
	overview, err := r.GetOverviewMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get overview metrics: %w", err)
	}

	bookingMetrics, err := r.getBookingOverview()
	if err != nil {
		return nil, fmt.Errorf("failed to get booking metrics: %w", err)
	}

	recentActivity, err := r.GetRecentActivity(20)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent activity: %w", err)
	}

	topVenues, err := r.getTopVenues(nil, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to get top venues: %w", err)
	}

	revenueByMonth, err := r.getRevenueByMonth(nil, 6)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly revenue: %w", err)
	}

	return &DashboardAnalytics{
		Overview:       *overview,
		BookingMetrics: *bookingMetrics,
		RecentActivity: recentActivity,
		TopVenues:      topVenues,
		RevenueByMonth: revenueByMonth,
	}, nil
}

func (r *repository) GetOverviewMetrics() (*OverviewMetrics, error) {
	var metrics OverviewMetrics

	var totalUsers, totalVendors int64
	if err := r.db.Table("users").Count(&totalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	metrics.TotalUsers = int(totalUsers)

	if err := r.db.Table("users").Where("role = ?", "VENDOR").Count(&totalVendors).Error; err != nil {
		return nil, fmt.Errorf("failed to count vendors: %w", err)
	}
	metrics.TotalVendors = int(totalVendors)

	var totalVenues, verifiedVenues int64
	if err := r.db.Table("venues").Count(&totalVenues).Error; err != nil {
		return nil, fmt.Errorf("failed to count venues: %w", err)
	}
	metrics.TotalVenues = int(totalVenues)

	if err := r.db.Table("venues").Where("is_verified = ?", true).Count(&verifiedVenues).Error; err != nil {
		return nil, fmt.Errorf("failed to count verified venues: %w", err)
	}
	metrics.VerifiedVenues = int(verifiedVenues)
	metrics.PendingVerifications = int(totalVenues - verifiedVenues)

	var totalServices int64
	if err := r.db.Table("event_services").Count(&totalServices).Error; err != nil {
		return nil, fmt.Errorf("failed to count services: %w", err)
	}
	metrics.TotalServices = int(totalServices)

	var totalBookings int64
	if err := r.db.Table("bookings").
		Where("status IN ?", []string{"pending", "confirmed", "completed"}).
		Count(&totalBookings).Error; err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	metrics.TotalBookings = int(totalBookings)

	if err := r.db.Table("bookings").
		Where("status IN ?", []string{"confirmed", "completed"}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&metrics.TotalRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to calculate total revenue: %w", err)
	}

	if err := r.db.Table("bookings").
		Where("status IN ?", []string{"confirmed", "completed"}).
		Select("COALESCE(SUM(platform_fee), 0)").
		Scan(&metrics.PlatformEarnings).Error; err != nil {
		return nil, fmt.Errorf("failed to calculate platform earnings: %w", err)
	}

	var allBookings, cancelledBookings int64
	r.db.Table("bookings").Count(&allBookings)
	r.db.Table("bookings").Where("status = ?", "cancelled").Count(&cancelledBookings)
	if allBookings > 0 {
		metrics.CancellationRate = float64(cancelledBookings) / float64(allBookings) * 100
	}

	// Revenue growth compares the last 30 days against the 30 days before that
	var currentRevenue, previousRevenue float64
	currentStart := time.Now().AddDate(0, 0, -30)
	previousStart := time.Now().AddDate(0, 0, -60)

	r.db.Table("bookings").
		Where("status IN ? AND created_at >= ?", []string{"confirmed", "completed"}, currentStart).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&currentRevenue)

	r.db.Table("bookings").
		Where("status IN ? AND created_at >= ? AND created_at < ?", []string{"confirmed", "completed"}, previousStart, currentStart).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&previousRevenue)

	if previousRevenue > 0 {
		metrics.RevenueGrowth = ((currentRevenue - previousRevenue) / previousRevenue) * 100
	}

	return &metrics, nil
}

func (r *repository) getBookingOverview() (*BookingOverview, error) {
	overview := &BookingOverview{
		BookingsByStatus: make(map[string]int),
	}

	var statusCounts []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	if err := r.db.Table("bookings").
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count bookings by status: %w", err)
	}
	for _, sc := range statusCounts {
		overview.BookingsByStatus[sc.Status] = sc.Count
	}

	var upcoming int64
	if err := r.db.Table("bookings").
		Where("status = ? AND event_date >= ?", "confirmed", time.Now().Truncate(24*time.Hour)).
		Count(&upcoming).Error; err != nil {
		return nil, fmt.Errorf("failed to count upcoming events: %w", err)
	}
	overview.UpcomingEvents = int(upcoming)

	if err := r.db.Table("bookings").
		Where("status IN ?", []string{"confirmed", "completed"}).
		Select("COALESCE(AVG(total_price), 0)").
		Scan(&overview.AvgBookingValue).Error; err != nil {
		return nil, fmt.Errorf("failed to calculate average booking value: %w", err)
	}

	return overview, nil
}

func (r *repository) GetRecentActivity(limit int) ([]RecentActivityItem, error) {
	var activities []RecentActivityItem

	var recentBookings []struct {
		ID        uuid.UUID `json:"id"`
		VenueID   uuid.UUID `json:"venue_id"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
		VenueName string    `json:"venue_name"`
	}

	err := r.db.Table("bookings b").
		Select("b.id, b.venue_id, b.status, b.created_at, b.updated_at, v.name as venue_name").
		Joins("JOIN venues v ON v.id = b.venue_id").
		Order("b.updated_at DESC").
		Limit(limit).
		Scan(&recentBookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	for _, b := range recentBookings {
		item := RecentActivityItem{
			Type:        "booking",
			Description: fmt.Sprintf("Booking at %s", b.VenueName),
			Timestamp:   b.CreatedAt,
			VenueID:     &b.VenueID,
			BookingID:   &b.ID,
		}
		if b.Status == "cancelled" {
			item.Type = "cancellation"
			item.Description = fmt.Sprintf("Booking at %s cancelled", b.VenueName)
			item.Timestamp = b.UpdatedAt
		}
		activities = append(activities, item)
	}

	return activities, nil
}

func (r *repository) GetDailyBookingStats(days int) ([]DailyBookingStats, error) {
	var stats []DailyBookingStats

	since := time.Now().AddDate(0, 0, -days)
	err := r.db.Table("bookings").
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') as date, COUNT(*) as total_bookings, COALESCE(SUM(total_price), 0) as revenue").
		Where("created_at >= ? AND status IN ?", since, []string{"confirmed", "completed"}).
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get daily booking stats: %w", err)
	}

	return stats, nil
}

// Vendor Analytics Implementation

func (r *repository) GetVendorAnalytics(vendorID uuid.UUID) (*VendorAnalytics, error) {
	result := &VendorAnalytics{
		VendorID:         vendorID,
		BookingsByStatus: make(map[string]int),
	}

	var totalVenues, verifiedVenues int64
	if err := r.db.Table("venues").Where("vendor_id = ?", vendorID).Count(&totalVenues).Error; err != nil {
		return nil, fmt.Errorf("failed to count vendor venues: %w", err)
	}
	result.TotalVenues = int(totalVenues)

	if err := r.db.Table("venues").
		Where("vendor_id = ? AND is_verified = ?", vendorID, true).
		Count(&verifiedVenues).Error; err != nil {
		return nil, fmt.Errorf("failed to count verified vendor venues: %w", err)
	}
	result.VerifiedVenues = int(verifiedVenues)

	var statusCounts []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := r.db.Table("bookings b").
		Select("b.status, COUNT(*) as count").
		Joins("JOIN venues v ON v.id = b.venue_id").
		Where("v.vendor_id = ?", vendorID).
		Group("b.status").
		Scan(&statusCounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count vendor bookings by status: %w", err)
	}
	for _, sc := range statusCounts {
		result.BookingsByStatus[sc.Status] = sc.Count
		result.TotalBookings += sc.Count
	}

	var upcoming int64
	err = r.db.Table("bookings b").
		Joins("JOIN venues v ON v.id = b.venue_id").
		Where("v.vendor_id = ? AND b.status = ? AND b.event_date >= ?", vendorID, "confirmed", time.Now().Truncate(24*time.Hour)).
		Count(&upcoming).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming vendor bookings: %w", err)
	}
	result.UpcomingBookings = int(upcoming)

	var revenue struct {
		Total float64 `json:"total"`
		Fees  float64 `json:"fees"`
	}
	err = r.db.Table("bookings b").
		Select("COALESCE(SUM(b.total_price), 0) as total, COALESCE(SUM(b.platform_fee), 0) as fees").
		Joins("JOIN venues v ON v.id = b.venue_id").
		Where("v.vendor_id = ? AND b.status IN ?", vendorID, []string{"confirmed", "completed"}).
		Scan(&revenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to calculate vendor revenue: %w", err)
	}
	result.ConfirmedRevenue = revenue.Total
	result.PlatformFees = revenue.Fees

	result.RevenueByMonth, err = r.getRevenueByMonth(&vendorID, 6)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor monthly revenue: %w", err)
	}

	result.TopVenues, err = r.getTopVenues(&vendorID, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor top venues: %w", err)
	}

	return result, nil
}

// Shared helpers

func (r *repository) getTopVenues(vendorID *uuid.UUID, limit int) ([]VenuePerformance, error) {
	var venues []VenuePerformance

	query := r.db.Table("venues v").
		Select("v.id as venue_id, v.name as venue_name, v.city, v.rating, COUNT(b.id) as booking_count, COALESCE(SUM(b.total_price), 0) as revenue").
		Joins("LEFT JOIN bookings b ON b.venue_id = v.id AND b.status IN ('confirmed', 'completed')").
		Group("v.id, v.name, v.city, v.rating").
		Order("revenue DESC").
		Limit(limit)

	if vendorID != nil {
		query = query.Where("v.vendor_id = ?", *vendorID)
	}

	if err := query.Scan(&venues).Error; err != nil {
		return nil, fmt.Errorf("failed to rank venues: %w", err)
	}

	return venues, nil
}

func (r *repository) getRevenueByMonth(vendorID *uuid.UUID, months int) ([]MonthlyRevenue, error) {
	var revenue []MonthlyRevenue

	since := time.Now().AddDate(0, -months, 0)
	query := r.db.Table("bookings b").
		Select("TO_CHAR(b.created_at, 'YYYY-MM') as month, COALESCE(SUM(b.total_price), 0) as revenue, COUNT(*) as bookings").
		Where("b.created_at >= ? AND b.status IN ?", since, []string{"confirmed", "completed"}).
		Group("TO_CHAR(b.created_at, 'YYYY-MM')").
		Order("month ASC")

	if vendorID != nil {
		query = query.Joins("JOIN venues v ON v.id = b.venue_id").
			Where("v.vendor_id = ?", *vendorID)
	}

	if err := query.Scan(&revenue).Error; err != nil {
		return nil, fmt.Errorf("failed to get monthly revenue: %w", err)
	}

	return revenue, nil
}
