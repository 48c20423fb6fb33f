package services

type PackageRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,min=0"`
	Inclusions  []string `json:"inclusions"`
}

type CreateServiceRequest struct {
	Name        string           `json:"name" binding:"required,min=3,max=200"`
	Description string           `json:"description"`
	Category    string           `json:"category" binding:"required"`
	City        string           `json:"city"`
	PriceMin    float64          `json:"priceMin" binding:"min=0"`
	PriceMax    float64          `json:"priceMax" binding:"min=0"`
	Images      []string         `json:"images"`
	Packages    []PackageRequest `json:"packages" binding:"dive"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	City        *string  `json:"city"`
	PriceMin    *float64 `json:"priceMin"`
	PriceMax    *float64 `json:"priceMax"`
	Images      []string `json:"images"`
}

type VerifyServiceRequest struct {
	Verified bool `json:"verified"`
}
