package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDay(t *testing.T) {
	in := time.Date(2024, 3, 5, 23, 59, 10, 0, time.UTC)
	assert.Equal(t, date(2024, 3, 5), Day(in))
}

func TestAddMonths_ClampsToMonthEnd(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		n     int
		want  time.Time
	}{
		{"plain", date(2024, 1, 15), 1, date(2024, 2, 15)},
		{"leap february", date(2024, 1, 31), 1, date(2024, 2, 29)},
		{"non-leap february", date(2023, 1, 31), 1, date(2023, 2, 28)},
		{"year rollover", date(2024, 11, 30), 3, date(2025, 2, 28)},
		{"thirty day month", date(2024, 3, 31), 1, date(2024, 4, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.n))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 10, DaysBetween(date(2024, 2, 20), date(2024, 3, 1)))
	assert.Equal(t, -1, DaysBetween(date(2024, 3, 2), date(2024, 3, 1)))
	assert.Equal(t, 0, DaysBetween(date(2024, 3, 1), time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)))
}

func TestWithin(t *testing.T) {
	from, to := date(2024, 5, 1), date(2024, 5, 31)
	assert.True(t, Within(date(2024, 5, 1), from, to))
	assert.True(t, Within(time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC), from, to))
	assert.False(t, Within(date(2024, 6, 1), from, to))
	assert.False(t, Within(date(2024, 4, 30), from, to))
}

func TestMonthStart(t *testing.T) {
	assert.Equal(t, date(2024, 7, 1), MonthStart(time.Date(2024, 7, 19, 8, 0, 0, 0, time.UTC)))
}
