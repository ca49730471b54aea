package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProductID int64     // ID продукта
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов дня
type Response struct {
	ProductID int64     // ID продукта
	Date      time.Time // Дата, на которую запрашивались слоты
	Slots     []Slot    // Слоты дня с информацией о занятости
}

// Slot модель временного слота с занятостью
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	EndTime         types.TimeString // Время конца слота
	DurationMinutes int              // Длительность слота в минутах
	AvailableSpots  int              // Количество свободных мест
	TotalSpots      int              // Общее количество мест
}
