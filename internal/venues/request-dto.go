package venues

type HallRequest struct {
	Name        string   `json:"name" binding:"required"`
	Capacity    int      `json:"capacity" binding:"required,min=1"`
	PricePerDay float64  `json:"pricePerDay" binding:"required,min=0"`
	Amenities   []string `json:"amenities"`
}

type FoodServiceRequest struct {
	VegPricePerPlate    float64  `json:"vegPricePerPlate" binding:"min=0"`
	NonVegPricePerPlate float64  `json:"nonVegPricePerPlate" binding:"min=0"`
	MinPlates           int      `json:"minPlates"`
	VegMenuItems        []string `json:"vegMenuItems"`
	NonVegMenuItems     []string `json:"nonVegMenuItems"`
}

type CreateVenueRequest struct {
	Name        string              `json:"name" binding:"required,min=3,max=200"`
	Description string              `json:"description"`
	City        string              `json:"city" binding:"required"`
	Address     string              `json:"address" binding:"required"`
	Images      []string            `json:"images"`
	Capacity    int                 `json:"capacity" binding:"required,min=1"`
	Amenities   []string            `json:"amenities"`
	Halls       []HallRequest       `json:"halls" binding:"required,min=1,dive"`
	FoodService *FoodServiceRequest `json:"foodService"`
}

type UpdateVenueRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	City        *string  `json:"city"`
	Address     *string  `json:"address"`
	Images      []string `json:"images"`
	Capacity    *int     `json:"capacity"`
	Amenities   []string `json:"amenities"`
}

type ReplaceHallsRequest struct {
	Halls []HallRequest `json:"halls" binding:"required,min=1,dive"`
}

type VerifyVenueRequest struct {
	Verified bool `json:"verified"`
}
