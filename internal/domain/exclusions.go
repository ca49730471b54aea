package domain

import (
	"encoding/json"
	"sort"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// DateSet набор исключенных календарных дат
// Хранится неупорядоченно, сериализуется и отображается в отсортированном виде
type DateSet map[types.DateString]struct{}

// NewDateSet создает пустой набор дат
func NewDateSet() DateSet {
	return make(DateSet)
}

// Toggle симметрично добавляет или удаляет дату из набора
func (s DateSet) Toggle(date types.DateString) {
	if _, ok := s[date]; ok {
		delete(s, date)
		return
	}
	s[date] = struct{}{}
}

// Contains возвращает true, если дата входит в набор
func (s DateSet) Contains(date types.DateString) bool {
	_, ok := s[date]
	return ok
}

// Sorted возвращает даты набора в возрастающем порядке
func (s DateSet) Sorted() []types.DateString {
	dates := make([]types.DateString, 0, len(s))
	for date := range s {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(a, b int) bool { return dates[a] < dates[b] })
	return dates
}

// MarshalJSON сериализует набор как отсортированный массив дат
func (s DateSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON десериализует набор из массива дат
// Некорректные даты отбрасываются
func (s *DateSet) UnmarshalJSON(data []byte) error {
	var dates []types.DateString
	if err := json.Unmarshal(data, &dates); err != nil {
		return err
	}

	set := NewDateSet()
	for _, date := range dates {
		if date.Validate() != nil {
			continue
		}
		set[date] = struct{}{}
	}
	*s = set
	return nil
}

// WeekdaySet набор исключенных дней недели (только для посуточных бронирований)
type WeekdaySet map[Weekday]struct{}

// NewWeekdaySet создает пустой набор дней недели
func NewWeekdaySet() WeekdaySet {
	return make(WeekdaySet)
}

// Toggle симметрично добавляет или удаляет день недели
func (s WeekdaySet) Toggle(day Weekday) {
	if _, ok := s[day]; ok {
		delete(s, day)
		return
	}
	s[day] = struct{}{}
}

// Contains возвращает true, если день недели входит в набор
func (s WeekdaySet) Contains(day Weekday) bool {
	_, ok := s[day]
	return ok
}

// Sorted возвращает дни недели в отображаемом порядке (с понедельника)
func (s WeekdaySet) Sorted() []Weekday {
	days := make([]Weekday, 0, len(s))
	for day := range s {
		days = append(days, day)
	}
	sort.Slice(days, func(a, b int) bool { return days[a].Order() < days[b].Order() })
	return days
}

// MarshalJSON сериализует набор как упорядоченный массив дней недели
func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON десериализует набор из массива дней недели
// Некорректные значения отбрасываются
func (s *WeekdaySet) UnmarshalJSON(data []byte) error {
	var days []Weekday
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}

	set := NewWeekdaySet()
	for _, day := range days {
		if !day.IsValid() {
			continue
		}
		set[day] = struct{}{}
	}
	*s = set
	return nil
}
