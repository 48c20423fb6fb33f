package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"utsav/internal/availability"
	"utsav/internal/services"
	"utsav/internal/shared/config"
	"utsav/internal/shared/database"
	"utsav/internal/users"
	"utsav/internal/venues"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Utsav Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Order matters due to foreign key constraints
	tables := []string{
		"blocked_dates",
		"bookings",
		"event_packages",
		"event_services",
		"food_services",
		"halls",
		"venues",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	venueIDs, err := s.SeedVenues(userIDs["vendor1"], userIDs["vendor2"])
	if err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}

	if err := s.SeedEventServices(userIDs["vendor3"]); err != nil {
		return fmt.Errorf("failed to seed event services: %w", err)
	}

	if err := s.SeedBlockedDates(venueIDs); err != nil {
		return fmt.Errorf("failed to seed blocked dates: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates an admin, three vendors and two regular users
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	// Hash password for all users (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key        string
		firstName  string
		lastName   string
		email      string
		phone      string
		role       users.Role
		vendorType users.VendorType
	}{
		{"admin", "Admin", "User", "admin@utsav.in", "+919800000001", users.RoleAdmin, ""},
		{"vendor1", "Rajesh", "Agarwal", "rajesh.agarwal@utsav.in", "+919800000002", users.RoleVendor, users.VendorTypeVenueOwner},
		{"vendor2", "Priya", "Malhotra", "priya.malhotra@utsav.in", "+919800000003", users.RoleVendor, users.VendorTypeVenueOwner},
		{"vendor3", "Anil", "Kapoor", "anil.kapoor@utsav.in", "+919800000004", users.RoleVendor, users.VendorTypeEventManagement},
		{"user1", "Sneha", "Sharma", "sneha.sharma@gmail.com", "+919800000005", users.RoleUser, ""},
		{"user2", "Vikram", "Iyer", "vikram.iyer@gmail.com", "+919800000006", users.RoleUser, ""},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:         uuid.New(),
			FirstName:  userData.firstName,
			LastName:   userData.lastName,
			Email:      userData.email,
			Phone:      userData.phone,
			Password:   string(hashedPassword),
			Role:       userData.role,
			VendorType: userData.vendorType,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedVenues creates sample wedding venues with halls and food services
func (s *Seeder) SeedVenues(vendor1, vendor2 uuid.UUID) ([]uuid.UUID, error) {
	fmt.Println("  🏰 Seeding venues...")

	var venueIDs []uuid.UUID

	venuesData := []struct {
		vendorID    uuid.UUID
		name        string
		description string
		city        string
		address     string
		capacity    int
		amenities   []string
		isVerified  bool
		halls       []venues.Hall
		food        *venues.FoodService
	}{
		{
			vendorID:    vendor1,
			name:        "Grand Imperial Palace",
			description: "Heritage palace venue with sprawling lawns, ideal for royal weddings.",
			city:        "Jaipur",
			address:     "12 Amber Fort Road, Jaipur, Rajasthan",
			capacity:    1200,
			amenities:   []string{"parking", "valet", "ac", "dj", "bridal_room"},
			isVerified:  true,
			halls: []venues.Hall{
				{Name: "Maharaja Hall", Capacity: 800, PricePerDay: 200000, Amenities: []string{"stage", "ac", "chandeliers"}},
				{Name: "Durbar Lawn", Capacity: 1200, PricePerDay: 150000, Amenities: []string{"open_air", "lighting"}},
			},
			food: &venues.FoodService{
				VegPricePerPlate:    1200,
				NonVegPricePerPlate: 1800,
				MinPlates:           50,
				VegMenuItems:        []string{"paneer tikka", "dal makhani", "veg biryani", "gulab jamun"},
				NonVegMenuItems:     []string{"chicken tikka", "mutton rogan josh", "fish curry"},
				IsAvailable:         true,
			},
		},
		{
			vendorID:    vendor1,
			name:        "Lotus Garden Resort",
			description: "Lakeside resort with manicured gardens and banquet facilities.",
			city:        "Udaipur",
			address:     "45 Lake Pichola Road, Udaipur, Rajasthan",
			capacity:    600,
			amenities:   []string{"parking", "ac", "pool", "guest_rooms"},
			isVerified:  true,
			halls: []venues.Hall{
				{Name: "Lotus Banquet", Capacity: 400, PricePerDay: 120000, Amenities: []string{"ac", "stage"}},
				{Name: "Lakeview Lawn", Capacity: 600, PricePerDay: 90000, Amenities: []string{"open_air"}},
			},
			food: &venues.FoodService{
				VegPricePerPlate:    900,
				NonVegPricePerPlate: 1400,
				MinPlates:           100,
				VegMenuItems:        []string{"veg thali", "chaat counter", "jalebi"},
				NonVegMenuItems:     []string{"butter chicken", "seekh kebab"},
				IsAvailable:         true,
			},
		},
		{
			vendorID:    vendor2,
			name:        "Silver Oak Banquets",
			description: "Modern banquet halls in the heart of the city.",
			city:        "Mumbai",
			address:     "88 Linking Road, Bandra West, Mumbai",
			capacity:    350,
			amenities:   []string{"parking", "ac", "elevator"},
			isVerified:  true,
			halls: []venues.Hall{
				{Name: "Oak Hall", Capacity: 350, PricePerDay: 80000, Amenities: []string{"ac", "led_wall"}},
			},
			food: nil, // outside catering only
		},
		{
			vendorID:    vendor2,
			name:        "Riverside Retreat",
			description: "New riverside property awaiting verification.",
			city:        "Pune",
			address:     "7 Mula Road, Pune, Maharashtra",
			capacity:    500,
			amenities:   []string{"parking", "open_air"},
			isVerified:  false,
			halls: []venues.Hall{
				{Name: "River Lawn", Capacity: 500, PricePerDay: 60000, Amenities: []string{"open_air"}},
			},
			food: nil,
		},
	}

	for _, venueData := range venuesData {
		startingPrice := venueData.halls[0].PricePerDay
		for _, hall := range venueData.halls {
			if hall.PricePerDay < startingPrice {
				startingPrice = hall.PricePerDay
			}
		}

		venue := venues.Venue{
			ID:            uuid.New(),
			VendorID:      venueData.vendorID,
			Name:          venueData.name,
			Description:   venueData.description,
			City:          venueData.city,
			Address:       venueData.address,
			Capacity:      venueData.capacity,
			Amenities:     venueData.amenities,
			StartingPrice: startingPrice,
			IsVerified:    venueData.isVerified,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&venue).Error; err != nil {
			return nil, fmt.Errorf("failed to create venue %s: %w", venue.Name, err)
		}

		venueIDs = append(venueIDs, venue.ID)
		fmt.Printf("    ✅ Created venue: %s (%s)\n", venue.Name, venue.City)

		for _, hall := range venueData.halls {
			hall.ID = uuid.New()
			hall.VenueID = venue.ID
			hall.CreatedAt = time.Now()
			if err := s.db.PostgreSQL.Create(&hall).Error; err != nil {
				return nil, fmt.Errorf("failed to create hall %s: %w", hall.Name, err)
			}
			fmt.Printf("      ✅ Created hall: %s (₹%.0f/day)\n", hall.Name, hall.PricePerDay)
		}

		if venueData.food != nil {
			food := *venueData.food
			food.ID = uuid.New()
			food.VenueID = venue.ID
			food.CreatedAt = time.Now()
			if err := s.db.PostgreSQL.Create(&food).Error; err != nil {
				return nil, fmt.Errorf("failed to create food service for %s: %w", venue.Name, err)
			}
			fmt.Printf("      ✅ Created food service (veg ₹%.0f, non-veg ₹%.0f)\n",
				food.VegPricePerPlate, food.NonVegPricePerPlate)
		}
	}

	return venueIDs, nil
}

// SeedEventServices creates add-on services offered by event management vendors
func (s *Seeder) SeedEventServices(vendorID uuid.UUID) error {
	fmt.Println("  🎪 Seeding event services...")

	servicesData := []struct {
		name        string
		description string
		category    services.Category
		city        string
		priceMin    float64
		priceMax    float64
		isVerified  bool
		packages    []services.EventPackage
	}{
		{
			name:        "Royal Decorators",
			description: "Floral and theme decoration for weddings and receptions.",
			category:    services.CategoryDecoration,
			city:        "Jaipur",
			priceMin:    50000,
			priceMax:    300000,
			isVerified:  true,
			packages: []services.EventPackage{
				{Name: "Marigold Classic", Price: 50000, Inclusions: []string{"entrance decor", "stage flowers"}},
				{Name: "Royal Theme", Price: 200000, Inclusions: []string{"full venue decor", "mandap", "lighting"}},
			},
		},
		{
			name:        "Shutterbug Studios",
			description: "Candid wedding photography and cinematic films.",
			category:    services.CategoryPhotography,
			city:        "Mumbai",
			priceMin:    75000,
			priceMax:    250000,
			isVerified:  true,
			packages: []services.EventPackage{
				{Name: "One Day Candid", Price: 75000, Inclusions: []string{"2 photographers", "edited album"}},
				{Name: "Full Wedding Film", Price: 250000, Inclusions: []string{"3 day coverage", "drone", "teaser film"}},
			},
		},
		{
			name:        "Dhol Beats Entertainment",
			description: "Live dhol, sangeet bands and DJ nights.",
			category:    services.CategoryMusic,
			city:        "Jaipur",
			priceMin:    25000,
			priceMax:    120000,
			isVerified:  true,
			packages:    nil,
		},
		{
			name:        "Glow Bridal Makeup",
			description: "Bridal makeup and mehendi artists. Pending verification.",
			category:    services.CategoryMakeup,
			city:        "Mumbai",
			priceMin:    20000,
			priceMax:    80000,
			isVerified:  false,
			packages:    nil,
		},
	}

	for _, serviceData := range servicesData {
		service := services.EventService{
			ID:          uuid.New(),
			VendorID:    vendorID,
			Name:        serviceData.name,
			Description: serviceData.description,
			Category:    serviceData.category,
			City:        serviceData.city,
			PriceMin:    serviceData.priceMin,
			PriceMax:    serviceData.priceMax,
			IsVerified:  serviceData.isVerified,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&service).Error; err != nil {
			return fmt.Errorf("failed to create service %s: %w", service.Name, err)
		}
		fmt.Printf("    ✅ Created service: %s (%s)\n", service.Name, service.Category)

		for _, pkg := range serviceData.packages {
			pkg.ID = uuid.New()
			pkg.ServiceID = service.ID
			pkg.CreatedAt = time.Now()
			if err := s.db.PostgreSQL.Create(&pkg).Error; err != nil {
				return fmt.Errorf("failed to create package %s: %w", pkg.Name, err)
			}
			fmt.Printf("      ✅ Created package: %s (₹%.0f)\n", pkg.Name, pkg.Price)
		}
	}

	return nil
}

// SeedBlockedDates marks a few upcoming dates as unavailable on the first venue
func (s *Seeder) SeedBlockedDates(venueIDs []uuid.UUID) error {
	fmt.Println("  📅 Seeding blocked dates...")

	if len(venueIDs) == 0 {
		return nil
	}

	blocksData := []struct {
		venueIndex  int
		daysFromNow int
		status      availability.BlockStatus
		note        string
	}{
		{0, 14, availability.StatusUnavailable, "Annual maintenance"},
		{0, 15, availability.StatusUnavailable, "Annual maintenance"},
		{1, 21, availability.StatusBlocked, "Owner family function"},
	}

	for _, blockData := range blocksData {
		if blockData.venueIndex >= len(venueIDs) {
			continue
		}

		date := time.Now().AddDate(0, 0, blockData.daysFromNow)
		block := availability.BlockedDate{
			ID:        uuid.New(),
			VenueID:   venueIDs[blockData.venueIndex],
			Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			Status:    blockData.status,
			Note:      blockData.note,
			CreatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&block).Error; err != nil {
			return fmt.Errorf("failed to create blocked date: %w", err)
		}
		fmt.Printf("    ✅ Blocked %s (%s)\n", block.Date.Format("2006-01-02"), block.Status)
	}

	return nil
}
