package types

import (
	"fmt"
	"time"
)

// DateFormat формат календарной даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// DateString календарная дата в формате "YYYY-MM-DD" без времени и таймзоны
type DateString string

// NewDateString создает DateString из time.Time
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString создает DateString из строки с валидацией формата
func NewDateStringFromString(s string) (DateString, error) {
	d := DateString(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate проверяет, что строка имеет формат YYYY-MM-DD
func (d DateString) Validate() error {
	if _, err := time.Parse(DateFormat, string(d)); err != nil {
		return fmt.Errorf("invalid date format %q, expected YYYY-MM-DD: %v", string(d), err)
	}
	return nil
}

// IsZero возвращает true, если дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Time возвращает дату как time.Time (полночь UTC)
// Для некорректного значения возвращает нулевое время
func (d DateString) Time() time.Time {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// String возвращает строковое представление
func (d DateString) String() string {
	return string(d)
}
