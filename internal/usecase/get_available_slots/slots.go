package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// collectDaySlots возвращает слоты расписания на указанную дату,
// отфильтрованные по действующему окну бронирования
// Для сегодняшнего дня (или буфера в часах) слоты, начинающиеся раньше
// earliest, не предлагаются
func collectDaySlots(
	config *domain.ScheduleConfig,
	date time.Time,
	now time.Time,
) []domain.TimeInterval {
	group := config.GroupForWeekday(domain.WeekdayFromTime(date))
	if group == nil {
		return []domain.TimeInterval{}
	}

	available := make([]domain.TimeInterval, 0, len(group.Slots))
	for _, slot := range group.Slots {
		slotStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location()).
			Add(time.Duration(slot.From.Minutes()) * time.Minute)
		if !config.Availability.ContainsInstant(now, slotStart) {
			continue
		}
		available = append(available, slot)
	}

	return available
}

// calculateAvailableSpots вычисляет количество свободных мест для каждого слота
func calculateAvailableSpots(
	slots []domain.TimeInterval,
	reservations []*domain.Reservation,
	capacity int,
) []Slot {
	result := make([]Slot, len(slots))

	for i, slot := range slots {
		overlappingCount := countOverlappingReservations(slot, reservations)

		availableSpots := capacity - overlappingCount
		if availableSpots < 0 {
			availableSpots = 0
		}

		result[i] = Slot{
			StartTime:       slot.From,
			EndTime:         slot.To,
			DurationMinutes: slot.DurationMinutes(),
			AvailableSpots:  availableSpots,
			TotalSpots:      capacity,
		}
	}

	return result
}

// countOverlappingReservations подсчитывает бронирования, пересекающиеся со слотом
// Пересечение строгое: если бронирование заканчивается ровно там, где начинается
// слот (или наоборот), пересечения нет
func countOverlappingReservations(slot domain.TimeInterval, reservations []*domain.Reservation) int {
	count := 0

	for _, res := range reservations {
		if !res.IsActive() || res.StartTime == nil {
			continue
		}

		resStart := *res.StartTime
		resEnd, err := resStart.AddMinutes(res.DurationMinutes)
		if err != nil {
			continue
		}

		if resStart.IsBefore(slot.To) && resEnd.IsAfter(slot.From) {
			count++
		}
	}

	return count
}
