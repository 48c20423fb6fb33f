package availability

import (
	"time"

	"github.com/google/uuid"
)

type BlockedDateResponse struct {
	ID        uuid.UUID `json:"id"`
	VenueID   uuid.UUID `json:"venueId"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	VenueID   uuid.UUID `json:"venueId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Available bool      `json:"available"`
}

func toBlockedDateResponse(rec *BlockedDate) BlockedDateResponse {
	return BlockedDateResponse{
		ID:        rec.ID,
		VenueID:   rec.VenueID,
		Date:      rec.Day().String(),
		Status:    rec.Status.String(),
		Note:      rec.Note,
		CreatedAt: rec.CreatedAt,
	}
}

func toBlockedDateResponses(records []BlockedDate) []BlockedDateResponse {
	out := make([]BlockedDateResponse, 0, len(records))
	for i := range records {
		out = append(out, toBlockedDateResponse(&records[i]))
	}
	return out
}
