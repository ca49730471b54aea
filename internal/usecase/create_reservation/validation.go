package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ProductID <= 0 {
		return fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	// Времена слота передаются парой
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return fmt.Errorf("%w: startTime and endTime must be provided together", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
		if !req.EndTime.IsAfter(*req.StartTime) {
			return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
		}
		if req.EndDate != nil {
			return fmt.Errorf("%w: endDate is not allowed for slot reservations", ErrInvalidInput)
		}
	}

	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	return nil
}

// validateSlotInstant проверяет, что начало слота попадает в действующее окно
// Для буфера в часах проверка по календарному дню недостаточна: слот сегодняшнего
// дня может начинаться раньше earliest
func validateSlotInstant(window domain.AvailabilityWindow, now, date time.Time, start types.TimeString) error {
	slotStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location()).
		Add(time.Duration(start.Minutes()) * time.Minute)

	if !window.ContainsInstant(now, slotStart) {
		return ErrDateOutOfWindow
	}
	return nil
}

// countOverlappingReservations подсчитывает активные бронирования,
// пересекающиеся со слотом по времени
// Пересечение строгое: соприкосновение границ пересечением не считается
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
