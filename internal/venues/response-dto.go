package venues

import (
	"time"

	"github.com/google/uuid"
)

type HallResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	PricePerDay float64   `json:"pricePerDay"`
	Amenities   []string  `json:"amenities"`
}

type FoodServiceResponse struct {
	VegPricePerPlate    float64  `json:"vegPricePerPlate"`
	NonVegPricePerPlate float64  `json:"nonVegPricePerPlate"`
	MinPlates           int      `json:"minPlates"`
	VegMenuItems        []string `json:"vegMenuItems"`
	NonVegMenuItems     []string `json:"nonVegMenuItems"`
	IsAvailable         bool     `json:"isAvailable"`
}

type VenueResponse struct {
	ID            uuid.UUID            `json:"id"`
	VendorID      uuid.UUID            `json:"vendorId"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	City          string               `json:"city"`
	Address       string               `json:"address"`
	Images        []string             `json:"images"`
	Capacity      int                  `json:"capacity"`
	Amenities     []string             `json:"amenities"`
	StartingPrice float64              `json:"startingPrice"`
	Rating        float64              `json:"rating"`
	ReviewCount   int                  `json:"reviewCount"`
	IsVerified    bool                 `json:"isVerified"`
	Halls         []HallResponse       `json:"halls"`
	FoodService   *FoodServiceResponse `json:"foodService,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}

type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

func toVenueResponse(v *Venue) VenueResponse {
	resp := VenueResponse{
		ID:            v.ID,
		VendorID:      v.VendorID,
		Name:          v.Name,
		Description:   v.Description,
		City:          v.City,
		Address:       v.Address,
		Images:        v.Images,
		Capacity:      v.Capacity,
		Amenities:     v.Amenities,
		StartingPrice: v.StartingPrice,
		Rating:        v.Rating,
		ReviewCount:   v.ReviewCount,
		IsVerified:    v.IsVerified,
		CreatedAt:     v.CreatedAt,
	}

	for _, h := range v.Halls {
		resp.Halls = append(resp.Halls, HallResponse{
			ID:          h.ID,
			Name:        h.Name,
			Capacity:    h.Capacity,
			PricePerDay: h.PricePerDay,
			Amenities:   h.Amenities,
		})
	}

	if v.FoodService != nil {
		resp.FoodService = &FoodServiceResponse{
			VegPricePerPlate:    v.FoodService.VegPricePerPlate,
			NonVegPricePerPlate: v.FoodService.NonVegPricePerPlate,
			MinPlates:           v.FoodService.MinPlates,
			VegMenuItems:        v.FoodService.VegMenuItems,
			NonVegMenuItems:     v.FoodService.NonVegMenuItems,
			IsAvailable:         v.FoodService.IsAvailable,
		}
	}

	return resp
}
