package services

import (
	"time"

	"github.com/google/uuid"
)

type PackageResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Inclusions  []string  `json:"inclusions"`
}

type PriceRangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type ServiceResponse struct {
	ID          uuid.UUID          `json:"id"`
	VendorID    uuid.UUID          `json:"vendorId"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	City        string             `json:"city"`
	PriceRange  PriceRangeResponse `json:"priceRange"`
	Images      []string           `json:"images"`
	Rating      float64            `json:"rating"`
	ReviewCount int                `json:"reviewCount"`
	IsVerified  bool               `json:"isVerified"`
	Packages    []PackageResponse  `json:"packages,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

func toServiceResponse(svc *EventService) ServiceResponse {
	resp := ServiceResponse{
		ID:          svc.ID,
		VendorID:    svc.VendorID,
		Name:        svc.Name,
		Description: svc.Description,
		Category:    string(svc.Category),
		City:        svc.City,
		PriceRange:  PriceRangeResponse{Min: svc.PriceMin, Max: svc.PriceMax},
		Images:      svc.Images,
		Rating:      svc.Rating,
		ReviewCount: svc.ReviewCount,
		IsVerified:  svc.IsVerified,
		CreatedAt:   svc.CreatedAt,
	}

	for _, p := range svc.Packages {
		resp.Packages = append(resp.Packages, PackageResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Inclusions:  p.Inclusions,
		})
	}

	return resp
}
