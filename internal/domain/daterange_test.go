package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveLimits_ClampAtRead(t *testing.T) {
	policy := DateRangePolicy{CustomLimitsEnabled: true, MinLengthDays: 0, MaxLengthDays: 0}
	minDays, maxDays := policy.EffectiveLimits()
	assert.Equal(t, 1, minDays)
	assert.Equal(t, 1, maxDays)

	policy = DateRangePolicy{CustomLimitsEnabled: true, MinLengthDays: 7, MaxLengthDays: 3}
	minDays, maxDays = policy.EffectiveLimits()
	assert.Equal(t, 7, minDays)
	assert.Equal(t, 7, maxDays, "max is raised to min")
}

func TestAllowsLength_WithLimits(t *testing.T) {
	policy := DateRangePolicy{CustomLimitsEnabled: true, MinLengthDays: 2, MaxLengthDays: 5}

	assert.False(t, policy.AllowsLength(1), "shorter than min")
	assert.True(t, policy.AllowsLength(2))
	assert.True(t, policy.AllowsLength(5))
	assert.False(t, policy.AllowsLength(6), "longer than max")
	assert.False(t, policy.AllowsLength(0))
}

func TestAllowsLength_LimitsDisabled(t *testing.T) {
	policy := DateRangePolicy{CustomLimitsEnabled: false, MinLengthDays: 2, MaxLengthDays: 5}

	assert.True(t, policy.AllowsLength(1))
	assert.True(t, policy.AllowsLength(30))
	assert.False(t, policy.AllowsLength(0))
}

func TestSetBookingMode(t *testing.T) {
	cfg := NewScheduleConfig(1, KindDays)

	require.NoError(t, cfg.SetBookingMode(ModeDateRange))
	assert.Equal(t, ModeDateRange, cfg.BookingMode)

	assert.ErrorIs(t, cfg.SetBookingMode("weekly"), ErrInvalidBookingMode)
	assert.Equal(t, ModeDateRange, cfg.BookingMode, "invalid mode is a no-op")
}

func TestBookingModeSwitch_KeepsRangeSettings(t *testing.T) {
	cfg := NewScheduleConfig(1, KindDays)
	require.NoError(t, cfg.SetBookingMode(ModeDateRange))
	cfg.SetRangeLimitsEnabled(true)
	cfg.SetRangeLimits(3, 14)

	// Переключение на single_day делает настройки диапазона неактивными, но не стирает их
	require.NoError(t, cfg.SetBookingMode(ModeSingleDay))
	require.NoError(t, cfg.SetBookingMode(ModeDateRange))

	assert.True(t, cfg.RangeLimits.CustomLimitsEnabled)
	assert.Equal(t, 3, cfg.RangeLimits.MinLengthDays)
	assert.Equal(t, 14, cfg.RangeLimits.MaxLengthDays)
}

func TestRangeLimitsToggle_KeepsValues(t *testing.T) {
	cfg := NewScheduleConfig(1, KindDays)
	cfg.SetRangeLimits(2, 10)

	cfg.SetRangeLimitsEnabled(true)
	cfg.SetRangeLimitsEnabled(false)
	cfg.SetRangeLimitsEnabled(true)

	assert.Equal(t, 2, cfg.RangeLimits.MinLengthDays)
	assert.Equal(t, 10, cfg.RangeLimits.MaxLengthDays)
}

func TestSetRangeLimits_ClampsNegative(t *testing.T) {
	cfg := NewScheduleConfig(1, KindDays)

	cfg.SetRangeLimits(-5, -1)

	assert.Equal(t, 0, cfg.RangeLimits.MinLengthDays)
	assert.Equal(t, 0, cfg.RangeLimits.MaxLengthDays)

	// Читающая сторона все равно видит валидные границы
	minDays, maxDays := cfg.RangeLimits.EffectiveLimits()
	assert.Equal(t, 1, minDays)
	assert.Equal(t, 1, maxDays)
}
