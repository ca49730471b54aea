package create_reservation

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукт не найден
	ErrProductNotFound = errors.New("create_reservation: product not found")

	// ErrBookingDisabled возвращается, когда бронирование продукта выключено
	ErrBookingDisabled = errors.New("create_reservation: booking is disabled for this product")

	// ErrDateOutOfWindow возвращается, когда дата вне действующего окна бронирования
	ErrDateOutOfWindow = errors.New("create_reservation: date is outside the booking window")

	// ErrDateExcluded возвращается, когда дата исключена из бронирования
	ErrDateExcluded = errors.New("create_reservation: date is excluded from booking")

	// ErrWeekdayExcluded возвращается, когда день недели исключен из посуточных бронирований
	ErrWeekdayExcluded = errors.New("create_reservation: weekday is excluded from booking")

	// ErrSlotNotFound возвращается, когда запрошенный слот не входит в расписание дня
	ErrSlotNotFound = errors.New("create_reservation: slot is not in the schedule for this day")

	// ErrSlotNotAvailable возвращается, когда все места слота заняты
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrDayNotAvailable возвращается, когда все места дня заняты
	ErrDayNotAvailable = errors.New("create_reservation: day is not available")

	// ErrRangeNotAllowed возвращается, когда диапазон дат недопустим для продукта
	ErrRangeNotAllowed = errors.New("create_reservation: date range is not allowed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
