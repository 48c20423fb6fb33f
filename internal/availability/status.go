package availability

type BlockStatus string

const (
	StatusBooked      BlockStatus = "booked"
	StatusUnavailable BlockStatus = "unavailable"
	StatusBlocked     BlockStatus = "blocked"
)

// IsValid checks if the block status is valid
func (s BlockStatus) IsValid() bool {
	switch s {
	case StatusBooked, StatusUnavailable, StatusBlocked:
		return true
	}
	return false
}

// String returns the string representation of BlockStatus
func (s BlockStatus) String() string {
	return string(s)
}
