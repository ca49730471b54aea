package domain

import "time"

// Weekday represents a day of the week in schedule configuration
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays список дней недели в отображаемом порядке (с понедельника)
var AllWeekdays = []Weekday{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

var weekdayOrder = map[Weekday]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
	Saturday:  5,
	Sunday:    6,
}

// IsValid returns true if the weekday is one of monday..sunday
func (w Weekday) IsValid() bool {
	_, ok := weekdayOrder[w]
	return ok
}

// Order returns the display position of the weekday, monday first
func (w Weekday) Order() int {
	return weekdayOrder[w]
}

// ParseWeekday парсит день недели из строки
func ParseWeekday(s string) (Weekday, error) {
	w := Weekday(s)
	if !w.IsValid() {
		return "", ErrInvalidWeekday
	}
	return w, nil
}

// WeekdayFromTime возвращает день недели для указанной даты
func WeekdayFromTime(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}
