package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// ScheduleKind тип расписания: слоты по времени или целые дни
type ScheduleKind string

const (
	KindTimeslots ScheduleKind = "timeslots"
	KindDays      ScheduleKind = "days"
)

// IsValid returns true if the kind is timeslots or days
func (k ScheduleKind) IsValid() bool {
	return k == KindTimeslots || k == KindDays
}

// QuantityPolicy ограничение количества бронирований на единицу:
// слот для timeslots-расписания, день для days-расписания
type QuantityPolicy struct {
	Enabled bool `json:"enabled"`
	PerUnit int  `json:"perUnit"`
}

// Capacity возвращает действующую вместимость единицы бронирования
// Выключенная политика означает одно бронирование на единицу
func (q QuantityPolicy) Capacity() int {
	if !q.Enabled || q.PerUnit < MinQuantityPerUnit {
		return MinQuantityPerUnit
	}
	return q.PerUnit
}

// ScheduleConfig корневой агрегат расписания бронирования продукта
//
// Групповое расписание (Groups) действует только для Kind = timeslots;
// режим бронирования, исключенные дни недели и ограничения диапазона — только
// для Kind = days. Неактивные для текущего типа поля сохраняются, а не
// стираются: переключение типа туда-обратно не теряет настройки
type ScheduleConfig struct {
	ID        int64
	ProductID int64
	Kind      ScheduleKind

	Availability AvailabilityWindow
	Quantity     QuantityPolicy

	// Расписание по слотам (Kind = timeslots)
	Groups []WeekdayGroup

	// Исключенные календарные даты
	// Набор имеет смысл только при включенном флаге: выключение флага очищает набор,
	// скрытых исключений после выключения не остается
	ExcludedDatesEnabled bool
	ExcludedDates        DateSet

	// Посуточные бронирования (Kind = days)
	ExcludedWeekdays WeekdaySet
	BookingMode      BookingMode
	RangeLimits      DateRangePolicy

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewScheduleConfig создает конфигурацию с дефолтными значениями:
// без групп, с пустыми исключениями, окном в 365 дней и нулевым буфером
func NewScheduleConfig(productID int64, kind ScheduleKind) *ScheduleConfig {
	if !kind.IsValid() {
		kind = KindTimeslots
	}
	return &ScheduleConfig{
		ProductID: productID,
		Kind:      kind,
		Availability: AvailabilityWindow{
			MaxDaysAhead: DefaultMaxDaysAhead,
			Buffer:       BufferPeriod{Amount: DefaultBufferAmount, Unit: BufferDays},
		},
		Quantity:         QuantityPolicy{Enabled: false, PerUnit: DefaultQuantityPerUnit},
		Groups:           make([]WeekdayGroup, 0),
		ExcludedDates:    NewDateSet(),
		ExcludedWeekdays: NewWeekdaySet(),
		BookingMode:      ModeSingleDay,
		RangeLimits: DateRangePolicy{
			CustomLimitsEnabled: false,
			MinLengthDays:       DefaultMinRangeDays,
			MaxLengthDays:       DefaultMaxRangeDays,
		},
	}
}

// ToggleExcludedDate симметрично добавляет или убирает дату из исключений
func (c *ScheduleConfig) ToggleExcludedDate(date types.DateString) error {
	if err := date.Validate(); err != nil {
		return err
	}
	if c.ExcludedDates == nil {
		c.ExcludedDates = NewDateSet()
	}
	c.ExcludedDates.Toggle(date)
	return nil
}

// SetExcludedDatesEnabled включает или выключает исключение дат
// Выключение очищает набор: это контракт, а не деталь реализации
func (c *ScheduleConfig) SetExcludedDatesEnabled(enabled bool) {
	c.ExcludedDatesEnabled = enabled
	if !enabled {
		c.ExcludedDates = NewDateSet()
	}
}

// ToggleExcludedWeekday симметрично добавляет или убирает день недели из исключений
func (c *ScheduleConfig) ToggleExcludedWeekday(day Weekday) error {
	if !day.IsValid() {
		return ErrInvalidWeekday
	}
	if c.ExcludedWeekdays == nil {
		c.ExcludedWeekdays = NewWeekdaySet()
	}
	c.ExcludedWeekdays.Toggle(day)
	return nil
}

// SetBookingMode переключает режим посуточного бронирования
// Переключение на single_day не очищает настройки диапазона: они становятся
// неактивными и возвращаются при обратном переключении
func (c *ScheduleConfig) SetBookingMode(mode BookingMode) error {
	if !mode.IsValid() {
		return ErrInvalidBookingMode
	}
	c.BookingMode = mode
	return nil
}

// SetRangeLimitsEnabled включает или выключает кастомные лимиты длины диапазона
// Выключение сохраняет min/max для повторного включения
func (c *ScheduleConfig) SetRangeLimitsEnabled(enabled bool) {
	c.RangeLimits.CustomLimitsEnabled = enabled
}

// SetRangeLimits задает границы длины диапазона, зажимая отрицательные значения до нуля
// Инвариант max >= min >= 1 обеспечивается при чтении (EffectiveLimits)
func (c *ScheduleConfig) SetRangeLimits(minDays, maxDays int) {
	c.RangeLimits.MinLengthDays = clampInt(minDays, 0, MaxRangeLengthDays)
	c.RangeLimits.MaxLengthDays = clampInt(maxDays, 0, MaxRangeLengthDays)
}

// IsDateExcluded возвращает true, если дата исключена из бронирования
func (c *ScheduleConfig) IsDateExcluded(date types.DateString) bool {
	return c.ExcludedDatesEnabled && c.ExcludedDates.Contains(date)
}

// IsWeekdayExcluded возвращает true, если день недели исключен из посуточных бронирований
func (c *ScheduleConfig) IsWeekdayExcluded(day Weekday) bool {
	return c.Kind == KindDays && c.ExcludedWeekdays.Contains(day)
}

// Normalize приводит агрегат к валидному состоянию, не отвергая его:
// числовые поля зажимаются в допустимые границы, списки слотов нормализуются,
// дни, заявленные несколькими группами (например, после ручной правки в БД),
// остаются за первой по порядку группой
func (c *ScheduleConfig) Normalize() {
	if !c.Kind.IsValid() {
		c.Kind = KindTimeslots
	}

	c.Availability.MaxDaysAhead = clampInt(c.Availability.MaxDaysAhead, MinLookaheadDays, MaxLookaheadDays)
	if !c.Availability.Buffer.Unit.IsValid() {
		c.Availability.Buffer.Unit = BufferDays
	}
	maxBuffer := MaxBufferDays
	if c.Availability.Buffer.Unit == BufferHours {
		maxBuffer = MaxBufferHours
	}
	c.Availability.Buffer.Amount = clampInt(c.Availability.Buffer.Amount, 0, maxBuffer)

	c.Quantity.PerUnit = clampInt(c.Quantity.PerUnit, MinQuantityPerUnit, MaxQuantityPerUnit)

	claimed := make(map[Weekday]struct{})
	for i := range c.Groups {
		days := make([]Weekday, 0, len(c.Groups[i].Days))
		for _, day := range c.Groups[i].Days {
			if !day.IsValid() {
				continue
			}
			if _, ok := claimed[day]; ok {
				continue
			}
			claimed[day] = struct{}{}
			days = append(days, day)
		}
		c.Groups[i].Days = days
		c.Groups[i].Slots = NormalizeSlots(c.Groups[i].Slots)
	}

	if c.ExcludedDates == nil {
		c.ExcludedDates = NewDateSet()
	}
	if !c.ExcludedDatesEnabled && len(c.ExcludedDates) > 0 {
		c.ExcludedDates = NewDateSet()
	}
	if c.ExcludedWeekdays == nil {
		c.ExcludedWeekdays = NewWeekdaySet()
	}

	if !c.BookingMode.IsValid() {
		c.BookingMode = ModeSingleDay
	}
	c.RangeLimits.MinLengthDays = clampInt(c.RangeLimits.MinLengthDays, 0, MaxRangeLengthDays)
	c.RangeLimits.MaxLengthDays = clampInt(c.RangeLimits.MaxLengthDays, 0, MaxRangeLengthDays)
}

// clampInt зажимает значение в границы [min, max]
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
