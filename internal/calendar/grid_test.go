package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utsav/internal/calendar"
)

func noBlocks(calendar.Day) (string, bool) { return "", false }

func flatPrice(calendar.Day) float64 { return 1 }

func TestMonthGridShape(t *testing.T) {
	today := calendar.Day{Year: 2025, Month: time.March, Day: 1}

	// March 2025 starts on a Saturday: 6 leading padding cells.
	cells := calendar.MonthGrid(2025, time.March, today, noBlocks, flatPrice)
	require.Len(t, cells, calendar.GridSize)

	for i := 0; i < 6; i++ {
		assert.False(t, cells[i].IsCurrentMonth, "cell %d should be padding", i)
		assert.False(t, cells[i].Clickable())
	}

	first := cells[6]
	assert.Equal(t, calendar.Day{Year: 2025, Month: time.March, Day: 1}, first.Date)
	assert.True(t, first.IsCurrentMonth)
	assert.True(t, first.IsToday)

	last := cells[6+30]
	assert.Equal(t, calendar.Day{Year: 2025, Month: time.March, Day: 31}, last.Date)
	assert.True(t, last.IsCurrentMonth)

	// Trailing padding comes from April and is never clickable.
	trailing := cells[6+31]
	assert.Equal(t, time.April, trailing.Date.Month)
	assert.False(t, trailing.IsCurrentMonth)
	assert.False(t, trailing.Clickable())
}

func TestMonthGridFutureMonthPaddingNotPast(t *testing.T) {
	today := calendar.Day{Year: 2025, Month: time.March, Day: 1}

	// May 2025 starts on a Thursday: 4 leading cells from late April,
	// all still in the future relative to today.
	cells := calendar.MonthGrid(2025, time.May, today, noBlocks, flatPrice)
	for i := 0; i < 4; i++ {
		assert.Equal(t, time.April, cells[i].Date.Month, "cell %d", i)
		assert.False(t, cells[i].IsPast, "cell %d", i)
		assert.False(t, cells[i].Clickable())
	}
}

func TestMonthGridMarksPastAndBlocked(t *testing.T) {
	today := calendar.Day{Year: 2025, Month: time.March, Day: 15}
	blocked := func(d calendar.Day) (string, bool) {
		if d.Day == 20 {
			return "booked", true
		}
		return "", false
	}

	cells := calendar.MonthGrid(2025, time.March, today, blocked, flatPrice)

	var day10, day15, day20 calendar.DayInfo
	for _, c := range cells {
		if !c.IsCurrentMonth {
			continue
		}
		switch c.Date.Day {
		case 10:
			day10 = c
		case 15:
			day15 = c
		case 20:
			day20 = c
		}
	}

	assert.True(t, day10.IsPast)
	assert.False(t, day10.Clickable())

	assert.True(t, day15.IsToday)
	assert.False(t, day15.IsPast)
	assert.True(t, day15.Clickable())

	assert.True(t, day20.IsBlocked)
	assert.Equal(t, "booked", day20.BlockStatus)
	assert.False(t, day20.Clickable())
}

func TestMonthGridCarriesMultiplier(t *testing.T) {
	today := calendar.Day{Year: 2025, Month: time.March, Day: 1}
	multiplier := func(d calendar.Day) float64 {
		if d.Weekday() == time.Saturday {
			return 1.2
		}
		return 1
	}

	cells := calendar.MonthGrid(2025, time.March, today, noBlocks, multiplier)
	for _, c := range cells {
		if c.IsCurrentMonth && c.Date.Weekday() == time.Saturday {
			assert.Equal(t, 1.2, c.PriceMultiplier, "day %s", c.Date)
		}
	}
}
