package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the Utsav application
// Pattern: utsav:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG   = 24 * time.Hour // 24 hours - for very stable data
	TTL_STATIC_MEDIUM = 12 * time.Hour // 12 hours - for vendor catalogs
	TTL_STATIC_SHORT  = 6 * time.Hour  // 6 hours - for user profiles
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_LONG   = 4 * time.Hour    // 4 hours - for venue details
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // 2 hours - for service listings
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour    // 1 hour - for venue listings
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // 15 minutes - for search results
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // 10 minutes - for analytics
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // 5 minutes - for blocked-date lookups
	TTL_DYNAMIC_QUICK  = 2 * time.Minute  // 2 minutes - for booking availability
)

// Convenience tiers used by the cache-aside helpers.
const (
	CACHE_SHORT_TTL  = TTL_SEMI_STATIC_QUICK
	CACHE_MEDIUM_TTL = TTL_SEMI_STATIC_MEDIUM
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "utsav"
)

// ================== VENUES MODULE ==================

// Venue Cache Keys
const (
	CACHE_KEY_VENUES_LIST  = CACHE_PREFIX + ":venues:list:"        // + city:guests:min:max:food:page:limit
	CACHE_KEY_VENUE_DETAIL = CACHE_PREFIX + ":venues:detail:uuid:" // + venue-id
)

// Venue Cache TTLs
const (
	TTL_VENUES_LIST  = TTL_SEMI_STATIC_QUICK // 15 minutes
	TTL_VENUE_DETAIL = TTL_SEMI_STATIC_LONG  // 4 hours
)

// ================== AVAILABILITY MODULE ==================

// Blocked-date Cache Keys
const (
	CACHE_KEY_BLOCKED_DATES = CACHE_PREFIX + ":availability:blocked:venue:" // + venue-id
)

// Availability Cache TTLs
const (
	TTL_BLOCKED_DATES = TTL_DYNAMIC_SHORT // 5 minutes
)

// ================== SERVICES MODULE ==================

// Add-on Service Cache Keys
const (
	CACHE_KEY_SERVICES_LIST  = CACHE_PREFIX + ":services:list:"        // + category:city:page:limit
	CACHE_KEY_SERVICE_DETAIL = CACHE_PREFIX + ":services:detail:uuid:" // + service-id
	CACHE_KEY_PACKAGES_LIST  = CACHE_PREFIX + ":services:packages:"    // + service-id
)

// Add-on Service Cache TTLs
const (
	TTL_SERVICES_LIST  = TTL_SEMI_STATIC_MEDIUM // 2 hours
	TTL_SERVICE_DETAIL = TTL_SEMI_STATIC_MEDIUM // 2 hours
)

// ================== BOOKINGS MODULE ==================

// Booking Cache Keys
const (
	CACHE_KEY_USER_BOOKINGS  = CACHE_PREFIX + ":bookings:user:uuid:"   // + user-id:page:X
	CACHE_KEY_BOOKING_DETAIL = CACHE_PREFIX + ":bookings:detail:uuid:" // + booking-id
)

// Booking Cache TTLs
const (
	TTL_USER_BOOKINGS  = TTL_DYNAMIC_MEDIUM // 10 minutes
	TTL_BOOKING_DETAIL = TTL_DYNAMIC_MEDIUM // 10 minutes
)

// ================== ANALYTICS MODULE ==================

// Analytics Cache Keys
const (
	CACHE_KEY_ANALYTICS_DASHBOARD = CACHE_PREFIX + ":analytics:dashboard:admin"
	CACHE_KEY_ANALYTICS_VENDOR    = CACHE_PREFIX + ":analytics:vendor:uuid:" // + vendor-id
)

// Analytics Cache TTLs
const (
	TTL_ANALYTICS_DASHBOARD = TTL_DYNAMIC_MEDIUM // 10 minutes
	TTL_ANALYTICS_VENDOR    = TTL_DYNAMIC_MEDIUM // 10 minutes
)

// ================== AUTH MODULE ==================

// Auth Cache Keys
const (
	CACHE_KEY_USER_PROFILE = CACHE_PREFIX + ":auth:user:profile:uuid:" // + user-id
)

// Auth Cache TTLs
const (
	TTL_USER_PROFILE = TTL_STATIC_SHORT // 6 hours
)

// ================== CACHE INVALIDATION PATTERNS ==================

// Patterns for cache invalidation (used with Redis KEYS command or manual invalidation)
const (
	PATTERN_INVALIDATE_VENUES_ALL       = CACHE_PREFIX + ":venues:*"
	PATTERN_INVALIDATE_AVAILABILITY_ALL = CACHE_PREFIX + ":availability:*"
	PATTERN_INVALIDATE_SERVICES_ALL     = CACHE_PREFIX + ":services:*"
	PATTERN_INVALIDATE_BOOKINGS_ALL     = CACHE_PREFIX + ":bookings:*"
	PATTERN_INVALIDATE_ANALYTICS        = CACHE_PREFIX + ":analytics:*"
)

// ================== HELPER FUNCTIONS ==================

func BuildVenueDetailKey(venueID string) string {
	return CACHE_KEY_VENUE_DETAIL + venueID
}

func BuildBlockedDatesKey(venueID string) string {
	return CACHE_KEY_BLOCKED_DATES + venueID
}

func BuildUserBookingsKey(userID string, page int) string {
	return CACHE_KEY_USER_BOOKINGS + userID + ":page:" + fmt.Sprintf("%d", page)
}

func BuildServiceDetailKey(serviceID string) string {
	return CACHE_KEY_SERVICE_DETAIL + serviceID
}

func BuildVendorAnalyticsKey(vendorID string) string {
	return CACHE_KEY_ANALYTICS_VENDOR + vendorID
}
