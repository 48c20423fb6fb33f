package pricing

import (
	"errors"
	"time"

	"utsav/internal/calendar"
)

var ErrInvalidFoodOption = errors.New("invalid food option")

// PlatformFeeRate is the platform's cut applied on top of the subtotal.
const PlatformFeeRate = 0.05

// FoodOption selects which menu a booking is catered with.
type FoodOption string

const (
	FoodVeg    FoodOption = "veg"
	FoodNonVeg FoodOption = "nonveg"
	FoodBoth   FoodOption = "both"
)

func IsValidFoodOption(opt string) bool {
	switch FoodOption(opt) {
	case FoodVeg, FoodNonVeg, FoodBoth:
		return true
	default:
		return false
	}
}

// Multiplier returns the demand multiplier shown on the calendar for a
// date. Weekends beat the wedding season, which beats Fridays. The
// multiplier is informational only and never enters the hall cost.
func Multiplier(day calendar.Day) float64 {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return 1.20
	}
	if day.Month >= time.October || day.Month <= time.February {
		return 1.15
	}
	if day.Weekday() == time.Friday {
		return 1.10
	}
	return 1.00
}

// HallCost is the hall's daily rate over the stay, with no per-day
// multiplier adjustment.
func HallCost(pricePerDay float64, days int) float64 {
	return pricePerDay * float64(days)
}

// FoodCost prices catering for the stay. The "both" option charges the
// average of the veg and non-veg plate prices.
func FoodCost(option FoodOption, vegPerPlate, nonvegPerPlate float64, plates, days int) (float64, error) {
	var perPlate float64
	switch option {
	case FoodVeg:
		perPlate = vegPerPlate
	case FoodNonVeg:
		perPlate = nonvegPerPlate
	case FoodBoth:
		perPlate = (vegPerPlate + nonvegPerPlate) / 2
	default:
		return 0, ErrInvalidFoodOption
	}
	return perPlate * float64(plates) * float64(days), nil
}

// ServiceLine is one add-on service priced at the bottom of its quoted
// range.
type ServiceLine struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	MinPrice  float64 `json:"minPrice"`
}

// ServicesCost sums the minimum quoted price of each selected service.
func ServicesCost(lines []ServiceLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.MinPrice
	}
	return total
}

// Quote is a full price breakdown for a prospective booking.
type Quote struct {
	Days         int     `json:"days"`
	HallCost     float64 `json:"hallCost"`
	FoodCost     float64 `json:"foodCost"`
	ServicesCost float64 `json:"servicesCost"`
	Subtotal     float64 `json:"subtotal"`
	PlatformFee  float64 `json:"platformFee"`
	Total        float64 `json:"total"`
}

// QuoteInput carries everything needed to price a stay. Plates and
// FoodOption are ignored when HasFood is false.
type QuoteInput struct {
	PricePerDay    float64
	Days           int
	HasFood        bool
	FoodOption     FoodOption
	VegPerPlate    float64
	NonVegPerPlate float64
	Plates         int
	Services       []ServiceLine
}

// ComputeQuote builds the complete breakdown. Subtotal is the sum of
// the three cost components and the platform fee is 5% of that.
func ComputeQuote(in QuoteInput) (*Quote, error) {
	hall := HallCost(in.PricePerDay, in.Days)

	var food float64
	if in.HasFood {
		var err error
		food, err = FoodCost(in.FoodOption, in.VegPerPlate, in.NonVegPerPlate, in.Plates, in.Days)
		if err != nil {
			return nil, err
		}
	}

	services := ServicesCost(in.Services)
	subtotal := hall + food + services
	fee := subtotal * PlatformFeeRate

	return &Quote{
		Days:         in.Days,
		HallCost:     hall,
		FoodCost:     food,
		ServicesCost: services,
		Subtotal:     subtotal,
		PlatformFee:  fee,
		Total:        subtotal + fee,
	}, nil
}
