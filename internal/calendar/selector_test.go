package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utsav/internal/calendar"
)

func day(d int) calendar.Day {
	return calendar.Day{Year: 2025, Month: time.March, Day: d}
}

func clickable(d calendar.Day) calendar.DayInfo {
	return calendar.DayInfo{Date: d, IsCurrentMonth: true, PriceMultiplier: 1}
}

func allAvailable(start, end calendar.Day) bool { return true }

func TestSelectorTwoClickRange(t *testing.T) {
	s := calendar.NewSelector(calendar.ModeRange, allAvailable)
	assert.Equal(t, calendar.StateIdle, s.State())

	require.Nil(t, s.Click(clickable(day(10))))
	assert.Equal(t, calendar.StateSelectingEnd, s.State())

	sel := s.Click(clickable(day(12)))
	require.NotNil(t, sel)
	assert.Equal(t, day(10), sel.Start)
	assert.Equal(t, day(12), sel.End)
	assert.Equal(t, 3, sel.Days)
	assert.Equal(t, calendar.StateIdle, s.State())
}

func TestSelectorSwapsWhenEndPrecedesStart(t *testing.T) {
	s := calendar.NewSelector(calendar.ModeRange, allAvailable)

	s.Click(clickable(day(12)))
	sel := s.Click(clickable(day(10)))

	require.NotNil(t, sel)
	assert.Equal(t, day(10), sel.Start)
	assert.Equal(t, day(12), sel.End)
	assert.Equal(t, 3, sel.Days)
}

func TestSelectorResetsWhenRangeContainsBlockedDay(t *testing.T) {
	// Mar 11 is booked; selecting Mar 10 - Mar 12 must discard the selection.
	available := func(start, end calendar.Day) bool {
		days, err := calendar.Range(start, end)
		require.NoError(t, err)
		for _, d := range days {
			if d == day(11) {
				return false
			}
		}
		return true
	}

	s := calendar.NewSelector(calendar.ModeRange, available)
	s.Click(clickable(day(10)))
	sel := s.Click(clickable(day(12)))

	assert.Nil(t, sel)
	assert.Equal(t, calendar.StateIdle, s.State())

	start, end := s.Current()
	assert.True(t, start.IsZero())
	assert.True(t, end.IsZero())
}

func TestSelectorIgnoresUnclickableDays(t *testing.T) {
	s := calendar.NewSelector(calendar.ModeRange, allAvailable)

	tests := []struct {
		name string
		info calendar.DayInfo
	}{
		{"past day", calendar.DayInfo{Date: day(3), IsCurrentMonth: true, IsPast: true}},
		{"blocked day", calendar.DayInfo{Date: day(5), IsCurrentMonth: true, IsBlocked: true}},
		{"outside current month", calendar.DayInfo{Date: day(5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, s.Click(tt.info))
			assert.Equal(t, calendar.StateIdle, s.State())
		})
	}
}

func TestSelectorSingleMode(t *testing.T) {
	s := calendar.NewSelector(calendar.ModeSingle, allAvailable)

	sel := s.Click(clickable(day(7)))
	require.NotNil(t, sel)
	assert.Equal(t, day(7), sel.Start)
	assert.Equal(t, day(7), sel.End)
	assert.Equal(t, 1, sel.Days)
	assert.Equal(t, calendar.StateIdle, s.State())
}

func TestSelectorSecondRangeAfterCommit(t *testing.T) {
	s := calendar.NewSelector(calendar.ModeRange, allAvailable)

	s.Click(clickable(day(1)))
	require.NotNil(t, s.Click(clickable(day(2))))

	// Committed range over, next click starts a fresh selection.
	assert.Nil(t, s.Click(clickable(day(20))))
	assert.Equal(t, calendar.StateSelectingEnd, s.State())

	sel := s.Click(clickable(day(21)))
	require.NotNil(t, sel)
	assert.Equal(t, day(20), sel.Start)
	assert.Equal(t, day(21), sel.End)
}
