package calendar

import "time"

// GridSize is the fixed number of cells in a month grid: 6 weeks of 7 days,
// padded with trailing days of the previous month and leading days of the next.
const GridSize = 42

// DayInfo annotates a single grid cell with everything the calendar view
// needs to render it and to decide whether it is clickable.
type DayInfo struct {
	Date            Day     `json:"date"`
	IsCurrentMonth  bool    `json:"is_current_month"`
	IsToday         bool    `json:"is_today"`
	IsPast          bool    `json:"is_past"`
	IsBlocked       bool    `json:"is_blocked"`
	BlockStatus     string  `json:"block_status,omitempty"`
	PriceMultiplier float64 `json:"price_multiplier"`
}

// Clickable reports whether the day can start or extend a selection.
func (di DayInfo) Clickable() bool {
	return di.IsCurrentMonth && !di.IsPast && !di.IsBlocked
}

// BlockLookup answers whether a day is blocked and, if so, why.
type BlockLookup func(day Day) (status string, blocked bool)

// MultiplierFunc returns the display price multiplier for a day.
type MultiplierFunc func(day Day) float64

// MonthGrid builds the 42-cell grid for the given month relative to today.
// Padding cells from the previous month carry no price signal; padding
// cells from the next month carry a multiplier. Both stay unclickable
// because they are out of the current month.
func MonthGrid(year int, month time.Month, today Day, blocked BlockLookup, multiplier MultiplierFunc) []DayInfo {
	first := Day{Year: year, Month: month, Day: 1}
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	startPadding := int(first.Weekday())

	cells := make([]DayInfo, 0, GridSize)

	for i := startPadding; i > 0; i-- {
		d := first.AddDays(-i)
		cells = append(cells, DayInfo{
			Date:            d,
			IsPast:          d.Before(today),
			PriceMultiplier: 1,
		})
	}

	for dayNum := 1; dayNum <= lastDay; dayNum++ {
		d := Day{Year: year, Month: month, Day: dayNum}
		status, isBlocked := blocked(d)
		cells = append(cells, DayInfo{
			Date:            d,
			IsCurrentMonth:  true,
			IsToday:         d == today,
			IsPast:          d.Before(today),
			IsBlocked:       isBlocked,
			BlockStatus:     status,
			PriceMultiplier: multiplier(d),
		})
	}

	next := first.AddDays(lastDay)
	for i := 0; len(cells) < GridSize; i++ {
		d := next.AddDays(i)
		cells = append(cells, DayInfo{
			Date:            d,
			PriceMultiplier: multiplier(d),
		})
	}

	return cells
}
