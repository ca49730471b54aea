package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

func TestEffectiveWindow_DaysBuffer(t *testing.T) {
	window := AvailabilityWindow{
		MaxDaysAhead: 30,
		Buffer:       BufferPeriod{Amount: 1, Unit: BufferDays},
	}

	earliest, latest := window.EffectiveWindow(testNow)

	assert.Equal(t, testNow.AddDate(0, 0, 1), earliest)
	assert.Equal(t, testNow.AddDate(0, 0, 30), latest)
}

func TestEffectiveWindow_HoursBuffer(t *testing.T) {
	window := AvailabilityWindow{
		MaxDaysAhead: 7,
		Buffer:       BufferPeriod{Amount: 12, Unit: BufferHours},
	}

	earliest, latest := window.EffectiveWindow(testNow)

	assert.Equal(t, testNow.Add(12*time.Hour), earliest)
	assert.Equal(t, testNow.AddDate(0, 0, 7), latest)
}

func TestEffectiveWindow_ZeroBuffer(t *testing.T) {
	window := AvailabilityWindow{MaxDaysAhead: 14}

	earliest, _ := window.EffectiveWindow(testNow)

	assert.Equal(t, testNow, earliest)
}

func TestContainsInstant(t *testing.T) {
	window := AvailabilityWindow{
		MaxDaysAhead: 10,
		Buffer:       BufferPeriod{Amount: 2, Unit: BufferHours},
	}

	assert.False(t, window.ContainsInstant(testNow, testNow.Add(time.Hour)), "inside buffer")
	assert.True(t, window.ContainsInstant(testNow, testNow.Add(3*time.Hour)))
	assert.True(t, window.ContainsInstant(testNow, testNow.AddDate(0, 0, 10)))
	assert.False(t, window.ContainsInstant(testNow, testNow.AddDate(0, 0, 11)), "beyond lookahead")
}

func TestContainsDate_DayGranularity(t *testing.T) {
	window := AvailabilityWindow{
		MaxDaysAhead: 5,
		Buffer:       BufferPeriod{Amount: 1, Unit: BufferDays},
	}

	// Сегодня внутри буфера, завтра уже доступно
	assert.False(t, window.ContainsDate(testNow, testNow))
	assert.True(t, window.ContainsDate(testNow, testNow.AddDate(0, 0, 1)))
	assert.True(t, window.ContainsDate(testNow, testNow.AddDate(0, 0, 5)))
	assert.False(t, window.ContainsDate(testNow, testNow.AddDate(0, 0, 6)))
	assert.False(t, window.ContainsDate(testNow, testNow.AddDate(0, 0, -1)), "past date")
}
