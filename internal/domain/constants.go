package domain

// Default configuration values
const (
	DefaultMaxDaysAhead    = 365
	DefaultBufferAmount    = 0
	DefaultQuantityPerUnit = 1
	DefaultMinRangeDays    = 1
	DefaultMaxRangeDays    = 1
)

// Business validation constants
const (
	MinLookaheadDays = 0
	MaxLookaheadDays = 365 // 1 year

	MaxBufferDays  = 365
	MaxBufferHours = 8760 // 1 year

	MinQuantityPerUnit = 1
	MaxQuantityPerUnit = 100

	MinSlotLengthMinutes = 1
	MaxSlotLengthMinutes = 1440 // full day

	MaxGeneratedSlots = 100

	MaxRangeLengthDays = 365

	MaxCancellationReasonLength = 500
)

// WeekdayCount number of weekdays in a schedule week
const WeekdayCount = 7
