package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на создание бронирования
//
// Для расписания по слотам указываются StartTime и EndTime выбранного слота,
// EndDate не передается. Для посуточного расписания указывается StartDate и,
// в режиме диапазона, EndDate; времена не передаются
type Request struct {
	UserID    int64             // ID пользователя
	ProductID int64             // ID продукта
	StartDate time.Time         // Дата бронирования (без времени)
	EndDate   *time.Time        // Конец диапазона (только посуточный режим date_range)
	StartTime *types.TimeString // Начало слота (только расписание по слотам)
	EndTime   *types.TimeString // Конец слота (только расписание по слотам)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64 // ID созданного бронирования
	UserID    int64 // ID пользователя
	ProductID int64 // ID продукта

	StartDate       time.Time         // Первый день бронирования
	EndDate         time.Time         // Последний день бронирования (включительно)
	StartTime       *types.TimeString // Начало слота (nil для посуточного)
	DurationMinutes int               // Длительность слота в минутах
	Status          string            // Статус бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
