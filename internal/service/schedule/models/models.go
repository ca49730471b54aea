package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модели

// UpdateScheduleRequest запрос на обновление расписания продукта
// Все секции опциональны - применяются только переданные значения
type UpdateScheduleRequest struct {
	UserID int64 `json:"-"`

	Kind                 *string             `json:"kind,omitempty"`
	Availability         *AvailabilityUpdate `json:"availability,omitempty"`
	Quantity             *QuantityUpdate     `json:"quantity,omitempty"`
	Groups               *[]WeekdayGroupDTO  `json:"groups,omitempty"` // nil = не менять, [] = очистить
	ExcludedDatesEnabled *bool               `json:"excludedDatesEnabled,omitempty"`
	ToggleExcludedDates  []string            `json:"toggleExcludedDates,omitempty"`
	ToggleExcludedDays   []string            `json:"toggleExcludedWeekdays,omitempty"`
	BookingMode          *string             `json:"bookingMode,omitempty"`
	RangeLimits          *RangeLimitsUpdate  `json:"rangeLimits,omitempty"`
}

// AvailabilityUpdate частичное обновление окна доступности
type AvailabilityUpdate struct {
	MaxDaysAhead *int    `json:"maxDaysAhead,omitempty"`
	BufferAmount *int    `json:"bufferAmount,omitempty"`
	BufferUnit   *string `json:"bufferUnit,omitempty"` // days | hours
}

// QuantityUpdate частичное обновление политики количества
type QuantityUpdate struct {
	Enabled *bool `json:"enabled,omitempty"`
	PerUnit *int  `json:"perUnit,omitempty"`
}

// RangeLimitsUpdate частичное обновление лимитов длины диапазона
type RangeLimitsUpdate struct {
	Enabled       *bool `json:"enabled,omitempty"`
	MinLengthDays *int  `json:"minLengthDays,omitempty"`
	MaxLengthDays *int  `json:"maxLengthDays,omitempty"`
}

// PreviewSlotsRequest запрос на генерацию сетки слотов
type PreviewSlotsRequest struct {
	From          string `json:"from"` // HH:MM
	To            string `json:"to"`   // HH:MM
	LengthMinutes int    `json:"lengthMinutes"`
	GapMinutes    int    `json:"gapMinutes"`
	MaxCount      int    `json:"maxCount"` // 0 = без ограничения сверх системного
}

// Response модели

// TimeIntervalDTO интервал времени в пределах суток
type TimeIntervalDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WeekdayGroupDTO группа дней недели с общим списком слотов
type WeekdayGroupDTO struct {
	Days  []string          `json:"days"`
	Slots []TimeIntervalDTO `json:"slots"`
}

// AvailabilityDTO окно доступности бронирования
type AvailabilityDTO struct {
	MaxDaysAhead int    `json:"maxDaysAhead"`
	BufferAmount int    `json:"bufferAmount"`
	BufferUnit   string `json:"bufferUnit"`
}

// QuantityDTO политика количества бронирований на слот/день
type QuantityDTO struct {
	Enabled bool `json:"enabled"`
	PerUnit int  `json:"perUnit"`
}

// RangeLimitsDTO лимиты длины диапазона дат
type RangeLimitsDTO struct {
	Enabled       bool `json:"enabled"`
	MinLengthDays int  `json:"minLengthDays"`
	MaxLengthDays int  `json:"maxLengthDays"`
}

// ScheduleResponse ответ с расписанием продукта
type ScheduleResponse struct {
	ProductID            int64             `json:"productId"`
	Kind                 string            `json:"kind"`
	Availability         AvailabilityDTO   `json:"availability"`
	Quantity             QuantityDTO       `json:"quantity"`
	Groups               []WeekdayGroupDTO `json:"groups"`
	ExcludedDatesEnabled bool              `json:"excludedDatesEnabled"`
	ExcludedDates        []string          `json:"excludedDates"`
	ExcludedWeekdays     []string          `json:"excludedWeekdays"`
	BookingMode          string            `json:"bookingMode"`
	RangeLimits          RangeLimitsDTO    `json:"rangeLimits"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

// PreviewSlotsResponse ответ с сгенерированной сеткой слотов
type PreviewSlotsResponse struct {
	Slots []TimeIntervalDTO `json:"slots"`
}

// Методы конвертации

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(c *domain.ScheduleConfig) *ScheduleResponse {
	if c == nil {
		return nil
	}

	groups := make([]WeekdayGroupDTO, 0, len(c.Groups))
	for i := range c.Groups {
		groups = append(groups, fromDomainGroup(&c.Groups[i]))
	}

	dates := make([]string, 0, len(c.ExcludedDates))
	for _, d := range c.ExcludedDates.Sorted() {
		dates = append(dates, string(d))
	}

	weekdays := make([]string, 0, len(c.ExcludedWeekdays))
	for _, d := range c.ExcludedWeekdays.Sorted() {
		weekdays = append(weekdays, string(d))
	}

	return &ScheduleResponse{
		ProductID: c.ProductID,
		Kind:      string(c.Kind),
		Availability: AvailabilityDTO{
			MaxDaysAhead: c.Availability.MaxDaysAhead,
			BufferAmount: c.Availability.Buffer.Amount,
			BufferUnit:   string(c.Availability.Buffer.Unit),
		},
		Quantity: QuantityDTO{
			Enabled: c.Quantity.Enabled,
			PerUnit: c.Quantity.PerUnit,
		},
		Groups:               groups,
		ExcludedDatesEnabled: c.ExcludedDatesEnabled,
		ExcludedDates:        dates,
		ExcludedWeekdays:     weekdays,
		BookingMode:          string(c.BookingMode),
		RangeLimits: RangeLimitsDTO{
			Enabled:       c.RangeLimits.CustomLimitsEnabled,
			MinLengthDays: c.RangeLimits.MinLengthDays,
			MaxLengthDays: c.RangeLimits.MaxLengthDays,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainSlots конвертирует список интервалов в DTO
func FromDomainSlots(slots []domain.TimeInterval) *PreviewSlotsResponse {
	out := make([]TimeIntervalDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, TimeIntervalDTO{From: s.From.String(), To: s.To.String()})
	}
	return &PreviewSlotsResponse{Slots: out}
}

func fromDomainGroup(g *domain.WeekdayGroup) WeekdayGroupDTO {
	days := make([]string, 0, len(g.Days))
	for _, d := range g.Days {
		days = append(days, string(d))
	}
	slots := make([]TimeIntervalDTO, 0, len(g.Slots))
	for _, s := range g.Slots {
		slots = append(slots, TimeIntervalDTO{From: s.From.String(), To: s.To.String()})
	}
	return WeekdayGroupDTO{Days: days, Slots: slots}
}

// ApplyToConfig применяет обновления к расписанию через доменные операции
// Возвращает доменную ошибку при конфликте дней или некорректных значениях
func (r *UpdateScheduleRequest) ApplyToConfig(config *domain.ScheduleConfig) error {
	if r.Kind != nil {
		kind := domain.ScheduleKind(*r.Kind)
		if !kind.IsValid() {
			return domain.ErrInvalidScheduleKind
		}
		config.Kind = kind
	}

	if r.Availability != nil {
		if r.Availability.MaxDaysAhead != nil {
			config.Availability.MaxDaysAhead = *r.Availability.MaxDaysAhead
		}
		if r.Availability.BufferAmount != nil {
			config.Availability.Buffer.Amount = *r.Availability.BufferAmount
		}
		if r.Availability.BufferUnit != nil {
			config.Availability.Buffer.Unit = domain.BufferUnit(*r.Availability.BufferUnit)
		}
	}

	if r.Quantity != nil {
		if r.Quantity.Enabled != nil {
			config.Quantity.Enabled = *r.Quantity.Enabled
		}
		if r.Quantity.PerUnit != nil {
			config.Quantity.PerUnit = *r.Quantity.PerUnit
		}
	}

	if r.Groups != nil {
		if err := r.applyGroups(config); err != nil {
			return err
		}
	}

	// Флаг исключения дат применяется до тумблеров,
	// чтобы включение и выбор дат работали в одном запросе
	if r.ExcludedDatesEnabled != nil {
		config.SetExcludedDatesEnabled(*r.ExcludedDatesEnabled)
	}
	for _, raw := range r.ToggleExcludedDates {
		if err := config.ToggleExcludedDate(types.DateString(raw)); err != nil {
			return err
		}
	}
	for _, raw := range r.ToggleExcludedDays {
		day, err := domain.ParseWeekday(raw)
		if err != nil {
			return err
		}
		if err := config.ToggleExcludedWeekday(day); err != nil {
			return err
		}
	}

	if r.BookingMode != nil {
		if err := config.SetBookingMode(domain.BookingMode(*r.BookingMode)); err != nil {
			return err
		}
	}

	if r.RangeLimits != nil {
		if r.RangeLimits.Enabled != nil {
			config.SetRangeLimitsEnabled(*r.RangeLimits.Enabled)
		}
		min := config.RangeLimits.MinLengthDays
		max := config.RangeLimits.MaxLengthDays
		if r.RangeLimits.MinLengthDays != nil {
			min = *r.RangeLimits.MinLengthDays
		}
		if r.RangeLimits.MaxLengthDays != nil {
			max = *r.RangeLimits.MaxLengthDays
		}
		config.SetRangeLimits(min, max)
	}

	return nil
}

// applyGroups заменяет групповое расписание целиком
// Конфликт дней внутри нового набора групп отклоняет весь запрос
func (r *UpdateScheduleRequest) applyGroups(config *domain.ScheduleConfig) error {
	config.Groups = make([]domain.WeekdayGroup, 0, len(*r.Groups))

	for _, groupDTO := range *r.Groups {
		index := config.AddGroup()

		days := make([]domain.Weekday, 0, len(groupDTO.Days))
		for _, raw := range groupDTO.Days {
			day, err := domain.ParseWeekday(raw)
			if err != nil {
				return err
			}
			days = append(days, day)
		}
		if err := config.SetGroupDays(index, days); err != nil {
			return err
		}

		slots := make([]domain.TimeInterval, 0, len(groupDTO.Slots))
		for _, slotDTO := range groupDTO.Slots {
			from, err := types.NewTimeStringFromString(slotDTO.From)
			if err != nil {
				return err
			}
			to, err := types.NewTimeStringFromString(slotDTO.To)
			if err != nil {
				return err
			}
			slots = append(slots, domain.TimeInterval{From: from, To: to})
		}
		if err := config.SetGroupSlots(index, slots); err != nil {
			return err
		}
	}

	return nil
}
