package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduleConfig_Defaults(t *testing.T) {
	cfg := NewScheduleConfig(42, KindTimeslots)

	assert.Equal(t, int64(42), cfg.ProductID)
	assert.Equal(t, KindTimeslots, cfg.Kind)
	assert.Equal(t, DefaultMaxDaysAhead, cfg.Availability.MaxDaysAhead)
	assert.Equal(t, 0, cfg.Availability.Buffer.Amount)
	assert.Equal(t, BufferDays, cfg.Availability.Buffer.Unit)
	assert.False(t, cfg.Quantity.Enabled)
	assert.Empty(t, cfg.Groups)
	assert.False(t, cfg.ExcludedDatesEnabled)
	assert.Empty(t, cfg.ExcludedDates)
	assert.Empty(t, cfg.ExcludedWeekdays)
	assert.Equal(t, ModeSingleDay, cfg.BookingMode)
}

func TestNewScheduleConfig_UnknownKindFallsBack(t *testing.T) {
	cfg := NewScheduleConfig(1, "hourly")

	assert.Equal(t, KindTimeslots, cfg.Kind)
}

func TestQuantityPolicy_Capacity(t *testing.T) {
	assert.Equal(t, 1, QuantityPolicy{Enabled: false, PerUnit: 5}.Capacity(), "disabled means one per unit")
	assert.Equal(t, 5, QuantityPolicy{Enabled: true, PerUnit: 5}.Capacity())
	assert.Equal(t, 1, QuantityPolicy{Enabled: true, PerUnit: 0}.Capacity(), "clamped to minimum")
}

func TestNormalize_ClampsNumerics(t *testing.T) {
	cfg := NewScheduleConfig(1, KindTimeslots)
	cfg.Availability.MaxDaysAhead = -10
	cfg.Availability.Buffer = BufferPeriod{Amount: -3, Unit: "weeks"}
	cfg.Quantity = QuantityPolicy{Enabled: true, PerUnit: 100500}

	cfg.Normalize()

	assert.Equal(t, 0, cfg.Availability.MaxDaysAhead)
	assert.Equal(t, 0, cfg.Availability.Buffer.Amount)
	assert.Equal(t, BufferDays, cfg.Availability.Buffer.Unit)
	assert.Equal(t, MaxQuantityPerUnit, cfg.Quantity.PerUnit)
}

func TestNormalize_ResolvesDuplicateDayClaims(t *testing.T) {
	// Состояние, которое не может возникнуть через SetGroupDays,
	// но может прийти из хранилища после ручной правки
	cfg := NewScheduleConfig(1, KindTimeslots)
	cfg.Groups = []WeekdayGroup{
		{Days: []Weekday{Monday, Tuesday}},
		{Days: []Weekday{Tuesday, Friday}},
	}

	cfg.Normalize()

	// День остается за первой по порядку группой
	assert.Equal(t, []Weekday{Monday, Tuesday}, cfg.Groups[0].Days)
	assert.Equal(t, []Weekday{Friday}, cfg.Groups[1].Days)
}

func TestNormalize_ClearsDatesWhenDisabled(t *testing.T) {
	cfg := NewScheduleConfig(1, KindDays)
	cfg.ExcludedDates = DateSet{"2026-05-01": {}}
	cfg.ExcludedDatesEnabled = false

	cfg.Normalize()

	assert.Empty(t, cfg.ExcludedDates)
}

func TestNormalize_NormalizesGroupSlots(t *testing.T) {
	cfg := NewScheduleConfig(1, KindTimeslots)
	cfg.Groups = []WeekdayGroup{{
		Days: []Weekday{Monday},
		Slots: []TimeInterval{
			interval("12:00", "11:00"),
			interval("10:00", "11:00"),
			interval("09:00", "10:00"),
			interval("09:00", "10:00"),
		},
	}}

	cfg.Normalize()

	assert.Equal(t, []TimeInterval{
		interval("09:00", "10:00"),
		interval("10:00", "11:00"),
	}, cfg.Groups[0].Slots)
}

// Сквозной сценарий: конфигурация со сгенерированным расписанием на понедельник и среду
func TestScheduleConfig_EndToEnd(t *testing.T) {
	cfg := NewScheduleConfig(7, KindTimeslots)
	cfg.Availability = AvailabilityWindow{
		MaxDaysAhead: 30,
		Buffer:       BufferPeriod{Amount: 1, Unit: BufferDays},
	}

	idx := cfg.AddGroup()
	require.NoError(t, cfg.SetGroupDays(idx, []Weekday{Monday, Wednesday}))

	generated := GenerateSlots("09:00", "12:00", 90, 15, 10)
	require.NoError(t, cfg.SetGroupSlots(idx, generated))

	// 09:00+90=10:30; следующий курсор 10:45, 10:45+90=12:15 > 12:00 - итог один слот
	require.Len(t, cfg.Groups[idx].Slots, 1)
	assert.Equal(t, interval("09:00", "10:30"), cfg.Groups[idx].Slots[0])

	group := cfg.GroupForWeekday(Wednesday)
	require.NotNil(t, group)
	assert.NotNil(t, group.FindSlot(interval("09:00", "10:30")))

	earliest, latest := cfg.Availability.EffectiveWindow(testNow)
	assert.Equal(t, testNow.AddDate(0, 0, 1), earliest)
	assert.Equal(t, testNow.AddDate(0, 0, 30), latest)

	assert.Equal(t, []Weekday{Tuesday, Thursday, Friday, Saturday, Sunday}, cfg.UnassignedDays())
}
