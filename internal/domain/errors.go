package domain

import "errors"

var (
	// ErrGroupIndexOutOfRange возвращается при обращении к несуществующей группе дней
	ErrGroupIndexOutOfRange = errors.New("domain: group index out of range")

	// ErrDayConflict возвращается при попытке назначить день, уже занятый другой группой
	ErrDayConflict = errors.New("domain: day already assigned to another group")

	// ErrInvalidWeekday возвращается при некорректном дне недели
	ErrInvalidWeekday = errors.New("domain: invalid weekday")

	// ErrInvalidBookingMode возвращается при некорректном режиме бронирования
	ErrInvalidBookingMode = errors.New("domain: invalid booking mode")

	// ErrInvalidScheduleKind возвращается при некорректном типе расписания
	ErrInvalidScheduleKind = errors.New("domain: invalid schedule kind")
)
