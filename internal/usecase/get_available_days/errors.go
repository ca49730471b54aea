package get_available_days

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукт не найден
	ErrProductNotFound = errors.New("product not found")

	// ErrBookingDisabled возвращается, когда бронирование продукта выключено
	ErrBookingDisabled = errors.New("booking is disabled for this product")

	// ErrWrongScheduleKind возвращается, когда расписание продукта слотовое
	ErrWrongScheduleKind = errors.New("product has a timeslot schedule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
