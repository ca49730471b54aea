package get_available_days

import "time"

// Request модель запроса на получение доступных дней
// Запрошенный диапазон зажимается в действующее окно бронирования
type Request struct {
	ProductID int64     // ID продукта
	From      time.Time // Начало запрошенного диапазона (без времени)
	To        time.Time // Конец запрошенного диапазона (включительно)
}

// Response модель ответа со списком дней
type Response struct {
	ProductID int64 // ID продукта
	Days      []Day // Дни диапазона с информацией о доступности
}

// Day модель календарного дня с занятостью
type Day struct {
	Date           time.Time // Календарная дата
	AvailableSpots int       // Количество свободных мест
	TotalSpots     int       // Общее количество мест
}
