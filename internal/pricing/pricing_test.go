package pricing_test

import (
	"testing"
	"time"

	"utsav/internal/calendar"
	"utsav/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name string
		day  calendar.Day
		want float64
	}{
		{"saturday in june", calendar.Day{Year: 2025, Month: time.June, Day: 7}, 1.20},
		{"sunday in wedding season", calendar.Day{Year: 2025, Month: time.December, Day: 7}, 1.20},
		{"friday in november takes season rate", calendar.Day{Year: 2025, Month: time.November, Day: 7}, 1.15},
		{"friday in june", calendar.Day{Year: 2025, Month: time.June, Day: 6}, 1.10},
		{"wednesday in january", calendar.Day{Year: 2025, Month: time.January, Day: 8}, 1.15},
		{"wednesday in february", calendar.Day{Year: 2025, Month: time.February, Day: 5}, 1.15},
		{"wednesday in march", calendar.Day{Year: 2025, Month: time.March, Day: 5}, 1.00},
		{"monday in october", calendar.Day{Year: 2025, Month: time.October, Day: 6}, 1.15},
		{"tuesday in september", calendar.Day{Year: 2025, Month: time.September, Day: 2}, 1.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.Multiplier(tt.day))
		})
	}
}

func TestHallCostIgnoresMultiplier(t *testing.T) {
	// A weekend stay costs the same flat rate as a weekday stay. The
	// calendar badge never reaches the invoice.
	weekday := pricing.HallCost(200000, 3)
	assert.Equal(t, float64(600000), weekday)

	// Sanity: the same three days spanning a weekend would carry 1.20
	// multipliers on the calendar, yet the hall cost is unchanged.
	sat := calendar.Day{Year: 2025, Month: time.June, Day: 7}
	require.Equal(t, 1.20, pricing.Multiplier(sat))
	assert.Equal(t, weekday, pricing.HallCost(200000, 3))
}

func TestFoodCost(t *testing.T) {
	tests := []struct {
		name    string
		option  pricing.FoodOption
		plates  int
		days    int
		want    float64
		wantErr bool
	}{
		{"veg", pricing.FoodVeg, 100, 2, 240000, false},
		{"nonveg", pricing.FoodNonVeg, 100, 2, 360000, false},
		{"both averages plate prices", pricing.FoodBoth, 100, 2, 300000, false},
		{"single day", pricing.FoodVeg, 50, 1, 60000, false},
		{"unknown option", pricing.FoodOption("jain"), 100, 2, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.FoodCost(tt.option, 1200, 1800, tt.plates, tt.days)
			if tt.wantErr {
				assert.ErrorIs(t, err, pricing.ErrInvalidFoodOption)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServicesCost(t *testing.T) {
	lines := []pricing.ServiceLine{
		{ServiceID: "dj", Name: "DJ Night", MinPrice: 25000},
		{ServiceID: "decor", Name: "Floral Decor", MinPrice: 80000},
	}
	assert.Equal(t, float64(105000), pricing.ServicesCost(lines))
	assert.Equal(t, float64(0), pricing.ServicesCost(nil))
}

func TestComputeQuoteHallOnly(t *testing.T) {
	quote, err := pricing.ComputeQuote(pricing.QuoteInput{
		PricePerDay: 200000,
		Days:        3,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(600000), quote.HallCost)
	assert.Equal(t, float64(0), quote.FoodCost)
	assert.Equal(t, float64(0), quote.ServicesCost)
	assert.Equal(t, float64(30000), quote.PlatformFee)
	assert.Equal(t, float64(630000), quote.Total)
}

func TestComputeQuoteFullBreakdown(t *testing.T) {
	quote, err := pricing.ComputeQuote(pricing.QuoteInput{
		PricePerDay:    150000,
		Days:           2,
		HasFood:        true,
		FoodOption:     pricing.FoodBoth,
		VegPerPlate:    1200,
		NonVegPerPlate: 1800,
		Plates:         100,
		Services: []pricing.ServiceLine{
			{ServiceID: "dj", Name: "DJ Night", MinPrice: 25000},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, float64(300000), quote.HallCost)
	assert.Equal(t, float64(300000), quote.FoodCost)
	assert.Equal(t, float64(25000), quote.ServicesCost)

	subtotal := quote.HallCost + quote.FoodCost + quote.ServicesCost
	assert.Equal(t, subtotal, quote.Subtotal)
	assert.Equal(t, subtotal*0.05, quote.PlatformFee)
	assert.Equal(t, subtotal+quote.PlatformFee, quote.Total)
}

func TestComputeQuoteRejectsBadFoodOption(t *testing.T) {
	_, err := pricing.ComputeQuote(pricing.QuoteInput{
		PricePerDay: 100000,
		Days:        1,
		HasFood:     true,
		FoodOption:  pricing.FoodOption("buffet"),
		Plates:      80,
	})
	assert.ErrorIs(t, err, pricing.ErrInvalidFoodOption)
}
