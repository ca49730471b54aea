package domain

// BookingMode режим посуточного бронирования: один день или диапазон дат
type BookingMode string

const (
	ModeSingleDay BookingMode = "single_day"
	ModeDateRange BookingMode = "date_range"
)

// IsValid returns true if the mode is single_day or date_range
func (m BookingMode) IsValid() bool {
	return m == ModeSingleDay || m == ModeDateRange
}

// DateRangePolicy ограничения длины диапазона дат (только для посуточных бронирований)
// Поля min/max сохраняются и при выключенном CustomLimitsEnabled: выключение флага
// делает их неактивными, но не стирает, чтобы повторное включение вернуло прежние значения
type DateRangePolicy struct {
	CustomLimitsEnabled bool `json:"customLimitsEnabled"`
	MinLengthDays       int  `json:"minLengthDays"`
	MaxLengthDays       int  `json:"maxLengthDays"`
}

// EffectiveLimits возвращает действующие границы длины диапазона в днях
// Инвариант min >= 1 и max >= min обеспечивается в момент чтения, а не записи:
// на записи значения лишь зажимаются до неотрицательных
func (p DateRangePolicy) EffectiveLimits() (minDays, maxDays int) {
	minDays = p.MinLengthDays
	if minDays < 1 {
		minDays = 1
	}
	maxDays = p.MaxLengthDays
	if maxDays < minDays {
		maxDays = minDays
	}
	return minDays, maxDays
}

// AllowsLength возвращает true, если диапазон указанной длины допустим политикой
// При выключенных лимитах допустима любая положительная длина
func (p DateRangePolicy) AllowsLength(lengthDays int) bool {
	if lengthDays < 1 {
		return false
	}
	if !p.CustomLimitsEnabled {
		return true
	}
	minDays, maxDays := p.EffectiveLimits()
	return lengthDays >= minDays && lengthDays <= maxDays
}
