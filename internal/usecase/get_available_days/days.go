package get_available_days

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// clampRange зажимает запрошенный диапазон в действующее окно бронирования
// Возвращает ok=false, если после зажатия диапазон пуст
func clampRange(window domain.AvailabilityWindow, now, from, to time.Time) (time.Time, time.Time, bool) {
	earliest, latest := window.EffectiveWindow(now)
	earliestDay := truncateToDay(earliest)
	latestDay := truncateToDay(latest)

	start := truncateToDay(from)
	end := truncateToDay(to)

	if start.Before(earliestDay) {
		start = earliestDay
	}
	if end.After(latestDay) {
		end = latestDay
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// collectDays собирает дни диапазона с их занятостью
// Исключенные даты и дни недели в ответ не попадают
func collectDays(
	config *domain.ScheduleConfig,
	start, end time.Time,
	reservations []*domain.Reservation,
) []Day {
	capacity := config.Quantity.Capacity()
	days := make([]Day, 0)

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if config.IsDateExcluded(types.NewDateString(date)) {
			continue
		}
		if config.IsWeekdayExcluded(domain.WeekdayFromTime(date)) {
			continue
		}

		taken := countReservationsCoveringDate(date, reservations)
		available := capacity - taken
		if available < 0 {
			available = 0
		}

		days = append(days, Day{
			Date:           date,
			AvailableSpots: available,
			TotalSpots:     capacity,
		})
	}

	return days
}

// countReservationsCoveringDate подсчитывает активные бронирования,
// покрывающие указанную календарную дату
func countReservationsCoveringDate(date time.Time, reservations []*domain.Reservation) int {
	count := 0
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		if res.CoversDate(date) {
			count++
		}
	}
	return count
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
