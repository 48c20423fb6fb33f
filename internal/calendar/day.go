package calendar

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDateRange = errors.New("invalid date range: end date precedes start date")

// Day identifies a calendar day by year/month/day, ignoring time-of-day.
// Two Days are the same day iff the struct values are equal.
type Day struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// FromTime truncates a timestamp to its calendar day.
func FromTime(t time.Time) Day {
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current calendar day in local time.
func Today() Day {
	return FromTime(time.Now())
}

// Parse parses a day in "2006-01-02" format.
func Parse(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// Time returns the day at midnight UTC. Normalizes out-of-range values the
// same way time.Date does, so arithmetic via AddDays stays consistent.
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Day) String() string {
	return d.Time().Format("2006-01-02")
}

// Weekday returns the day of week.
func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the day n days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return FromTime(d.Time().AddDate(0, 0, n))
}

func (d Day) Equal(other Day) bool {
	return d == other
}

func (d Day) Before(other Day) bool {
	return d.Time().Before(other.Time())
}

func (d Day) After(other Day) bool {
	return d.Time().After(other.Time())
}

// IsZero reports whether d is the zero value, used as "no day selected".
func (d Day) IsZero() bool {
	return d == Day{}
}

// DaysBetween returns the number of whole days from start to end.
// DaysBetween(d, d) == 0.
func DaysBetween(start, end Day) int {
	return int(end.Time().Sub(start.Time()).Hours() / 24)
}

// Range returns every day in the inclusive range [start, end].
// A single day (end == start) is the minimal valid range; an inverted
// range is rejected rather than silently producing an empty result.
func Range(start, end Day) ([]Day, error) {
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	days := make([]Day, 0, DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days, nil
}
