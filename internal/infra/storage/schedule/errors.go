package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание продукта не найдено
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrScheduleAlreadyExists возвращается при попытке создать дублирующее расписание
	ErrScheduleAlreadyExists = errors.New("schedule.repository: schedule already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")

	// ErrMarshal возвращается при ошибке сериализации jsonb-полей
	ErrMarshal = errors.New("schedule.repository: failed to marshal jsonb field")
)
