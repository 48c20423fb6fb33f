package availability

// BlockDatesRequest marks a set of days as taken for a venue.
type BlockDatesRequest struct {
	Dates  []string `json:"dates" binding:"required,min=1"` // YYYY-MM-DD
	Status string   `json:"status" binding:"required"`
	Note   string   `json:"note"`
}

// UnblockDateRequest frees a single day.
type UnblockDateRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

// CheckAvailabilityRequest asks whether an inclusive range is free.
type CheckAvailabilityRequest struct {
	StartDate string `form:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate   string `form:"endDate" binding:"required"`   // YYYY-MM-DD
}
