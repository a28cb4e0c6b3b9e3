package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        DateRange
		b        DateRange
		expected bool
	}{
		{
			name:     "disjoint ranges",
			a:        DateRange{Start: date(2026, 9, 1), End: date(2026, 9, 5)},
			b:        DateRange{Start: date(2026, 9, 10), End: date(2026, 9, 12)},
			expected: false,
		},
		{
			name:     "back-to-back ranges do not overlap",
			a:        DateRange{Start: date(2026, 9, 1), End: date(2026, 9, 5)},
			b:        DateRange{Start: date(2026, 9, 5), End: date(2026, 9, 8)},
			expected: false,
		},
		{
			name:     "partial overlap",
			a:        DateRange{Start: date(2026, 9, 1), End: date(2026, 9, 5)},
			b:        DateRange{Start: date(2026, 9, 4), End: date(2026, 9, 8)},
			expected: true,
		},
		{
			name:     "contained range",
			a:        DateRange{Start: date(2026, 9, 1), End: date(2026, 9, 10)},
			b:        DateRange{Start: date(2026, 9, 3), End: date(2026, 9, 5)},
			expected: true,
		},
		{
			name:     "identical ranges",
			a:        DateRange{Start: date(2026, 9, 1), End: date(2026, 9, 5)},
			b:        DateRange{Start: date(2026, 9, 1), End: date(2026, 9, 5)},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a))
		})
	}
}

func TestDateRange_DurationDays(t *testing.T) {
	tests := []struct {
		name     string
		rng      DateRange
		expected int
	}{
		{
			name:     "exactly three days",
			rng:      DateRange{Start: date(2026, 9, 1), End: date(2026, 9, 4)},
			expected: 3,
		},
		{
			name:     "single day",
			rng:      DateRange{Start: date(2026, 9, 1), End: date(2026, 9, 2)},
			expected: 1,
		},
		{
			name: "partial day rounds up",
			rng: DateRange{
				Start: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 9, 2, 16, 0, 0, 0, time.UTC),
			},
			expected: 2,
		},
		{
			// Вечерняя выдача и утренний возврат задевают три
			// календарных дня, хотя между ними меньше 48 часов
			name: "evening pickup to morning return two days later",
			rng: DateRange{
				Start: time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 1, 12, 9, 0, 0, 0, time.UTC),
			},
			expected: 3,
		},
		{
			name: "hours within one calendar day bill one day",
			rng: DateRange{
				Start: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC),
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rng.DurationDays())
		})
	}
}

func TestDateRange_IsValid(t *testing.T) {
	assert.True(t, DateRange{Start: date(2026, 9, 1), End: date(2026, 9, 2)}.IsValid())
	assert.False(t, DateRange{Start: date(2026, 9, 2), End: date(2026, 9, 1)}.IsValid())
	assert.False(t, DateRange{Start: date(2026, 9, 1), End: date(2026, 9, 1)}.IsValid())
	assert.False(t, DateRange{}.IsValid())
}

func TestCalculateQuote(t *testing.T) {
	rng := DateRange{Start: date(2026, 9, 1), End: date(2026, 9, 4)}

	quote := CalculateQuote(rng, 50.0, 200.0)

	assert.Equal(t, 150.0, quote.TotalDue)
	assert.Equal(t, 200.0, quote.DepositAmount)
}

func TestCalculateQuote_PartialDayBillsFullDay(t *testing.T) {
	rng := DateRange{
		Start: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 9, 3, 20, 0, 0, 0, time.UTC),
	}

	quote := CalculateQuote(rng, 100.0, 0)

	assert.Equal(t, 300.0, quote.TotalDue)
	assert.Equal(t, 0.0, quote.DepositAmount)
}

func TestCalculateQuote_CalendarDaysTouched(t *testing.T) {
	rng := DateRange{
		Start: time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 12, 9, 0, 0, 0, time.UTC),
	}

	quote := CalculateQuote(rng, 50.0, 0)

	assert.Equal(t, 150.0, quote.TotalDue)
}
