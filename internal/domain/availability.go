package domain

import "time"

// BufferUnit unit of the booking buffer period
type BufferUnit string

const (
	BufferDays  BufferUnit = "days"
	BufferHours BufferUnit = "hours"
)

// IsValid returns true if the unit is days or hours
func (u BufferUnit) IsValid() bool {
	return u == BufferDays || u == BufferHours
}

// BufferPeriod lead time subtracted from "now" before the earliest bookable moment
type BufferPeriod struct {
	Amount int        `json:"amount"`
	Unit   BufferUnit `json:"unit"`
}

// addTo возвращает момент now, сдвинутый вперед на величину буфера
func (b BufferPeriod) addTo(now time.Time) time.Time {
	if b.Amount <= 0 {
		return now
	}
	if b.Unit == BufferHours {
		return now.Add(time.Duration(b.Amount) * time.Hour)
	}
	return now.AddDate(0, 0, b.Amount)
}

// AvailabilityWindow governs how far into the future bookings are offered,
// net of the buffer subtracted from "now"
type AvailabilityWindow struct {
	MaxDaysAhead int          `json:"maxDaysAhead"`
	Buffer       BufferPeriod `json:"buffer"`
}

// EffectiveWindow вычисляет действующее окно бронирования [earliest, latest]
// относительно переданного момента времени
// Функция без состояния: результат должен пересчитываться на каждый запрос,
// кэшировать его между запросами нельзя
func (w AvailabilityWindow) EffectiveWindow(now time.Time) (earliest, latest time.Time) {
	earliest = w.Buffer.addTo(now)
	latest = now.AddDate(0, 0, w.MaxDaysAhead)
	return earliest, latest
}

// ContainsInstant возвращает true, если момент t попадает в действующее окно
func (w AvailabilityWindow) ContainsInstant(now, t time.Time) bool {
	earliest, latest := w.EffectiveWindow(now)
	return !t.Before(earliest) && !t.After(latest)
}

// ContainsDate проверяет попадание календарной даты в окно с точностью до дня:
// дата допустима, если её день не раньше дня earliest и не позже дня latest
func (w AvailabilityWindow) ContainsDate(now, date time.Time) bool {
	earliest, latest := w.EffectiveWindow(now)
	day := truncateToDay(date)
	return !day.Before(truncateToDay(earliest)) && !day.After(truncateToDay(latest))
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
