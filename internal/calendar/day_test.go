package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utsav/internal/calendar"
)

func TestFromTimeIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, time.March, 10, 6, 15, 0, 0, time.UTC)
	night := time.Date(2025, time.March, 10, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, calendar.FromTime(morning), calendar.FromTime(night))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start calendar.Day
		end   calendar.Day
		want  int
	}{
		{
			name:  "same day",
			start: calendar.Day{Year: 2025, Month: time.April, Day: 1},
			end:   calendar.Day{Year: 2025, Month: time.April, Day: 1},
			want:  0,
		},
		{
			name:  "two days apart",
			start: calendar.Day{Year: 2025, Month: time.April, Day: 1},
			end:   calendar.Day{Year: 2025, Month: time.April, Day: 3},
			want:  2,
		},
		{
			name:  "across month boundary",
			start: calendar.Day{Year: 2025, Month: time.January, Day: 30},
			end:   calendar.Day{Year: 2025, Month: time.February, Day: 2},
			want:  3,
		},
		{
			name:  "across leap day",
			start: calendar.Day{Year: 2024, Month: time.February, Day: 28},
			end:   calendar.Day{Year: 2024, Month: time.March, Day: 1},
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.DaysBetween(tt.start, tt.end))
		})
	}
}

func TestRangeInclusive(t *testing.T) {
	start := calendar.Day{Year: 2025, Month: time.March, Day: 10}
	end := calendar.Day{Year: 2025, Month: time.March, Day: 12}

	days, err := calendar.Range(start, end)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, start, days[0])
	assert.Equal(t, calendar.Day{Year: 2025, Month: time.March, Day: 11}, days[1])
	assert.Equal(t, end, days[2])
}

func TestRangeSingleDay(t *testing.T) {
	d := calendar.Day{Year: 2025, Month: time.June, Day: 5}

	days, err := calendar.Range(d, d)
	require.NoError(t, err)
	assert.Equal(t, []calendar.Day{d}, days)
}

func TestRangeInvertedIsRejected(t *testing.T) {
	start := calendar.Day{Year: 2025, Month: time.March, Day: 12}
	end := calendar.Day{Year: 2025, Month: time.March, Day: 10}

	days, err := calendar.Range(start, end)
	assert.ErrorIs(t, err, calendar.ErrInvalidDateRange)
	assert.Nil(t, days)
}

func TestAddDaysNormalizes(t *testing.T) {
	d := calendar.Day{Year: 2025, Month: time.December, Day: 31}
	assert.Equal(t, calendar.Day{Year: 2026, Month: time.January, Day: 1}, d.AddDays(1))
}

func TestParse(t *testing.T) {
	d, err := calendar.Parse("2025-10-04")
	require.NoError(t, err)
	assert.Equal(t, calendar.Day{Year: 2025, Month: time.October, Day: 4}, d)

	_, err = calendar.Parse("04-10-2025")
	assert.Error(t, err)
}
