package domain

import "sort"

// WeekdayGroup a bundle of weekdays sharing one time-of-day slot list
// Across all groups of one ScheduleConfig the day sets are pairwise disjoint:
// a weekday is claimed by at most one group at a time
type WeekdayGroup struct {
	Days  []Weekday      `json:"days"`
	Slots []TimeInterval `json:"slots"`
}

// HasDay returns true if the group owns the weekday
func (g *WeekdayGroup) HasDay(day Weekday) bool {
	for _, d := range g.Days {
		if d == day {
			return true
		}
	}
	return false
}

// FindSlot returns the group's slot with the given bounds, or nil
func (g *WeekdayGroup) FindSlot(slot TimeInterval) *TimeInterval {
	for i := range g.Slots {
		if g.Slots[i] == slot {
			return &g.Slots[i]
		}
	}
	return nil
}

// AddGroup добавляет новую пустую группу в конец списка и возвращает её индекс
// Дни назначаются отдельным вызовом SetGroupDays: пустая группа легальна как
// переходное состояние
func (c *ScheduleConfig) AddGroup() int {
	c.Groups = append(c.Groups, WeekdayGroup{
		Days:  make([]Weekday, 0),
		Slots: make([]TimeInterval, 0),
	})
	return len(c.Groups) - 1
}

// RemoveGroup удаляет группу по индексу
// Удаление не затрагивает остальные группы, освободившиеся дни снова
// становятся доступными для назначения
func (c *ScheduleConfig) RemoveGroup(index int) error {
	if index < 0 || index >= len(c.Groups) {
		return ErrGroupIndexOutOfRange
	}
	c.Groups = append(c.Groups[:index], c.Groups[index+1:]...)
	return nil
}

// UnassignedDays возвращает дни недели, не занятые ни одной группой,
// в отображаемом порядке. Если список пуст, новая группа бесполезна
func (c *ScheduleConfig) UnassignedDays() []Weekday {
	assigned := make(map[Weekday]struct{})
	for i := range c.Groups {
		for _, day := range c.Groups[i].Days {
			assigned[day] = struct{}{}
		}
	}

	free := make([]Weekday, 0, WeekdayCount)
	for _, day := range AllWeekdays {
		if _, ok := assigned[day]; !ok {
			free = append(free, day)
		}
	}
	return free
}

// IsDayAvailable возвращает true, если день можно выбрать для группы groupIndex:
// день уже принадлежит этой группе (повторный выбор всегда разрешен) либо
// не занят ни одной другой группой
func (c *ScheduleConfig) IsDayAvailable(day Weekday, groupIndex int) bool {
	if !day.IsValid() {
		return false
	}
	for i := range c.Groups {
		if !c.Groups[i].HasDay(day) {
			continue
		}
		return i == groupIndex
	}
	return true
}

// SetGroupDays заменяет набор дней группы целиком
// Назначение проверяется против всех остальных групп: если хотя бы один день
// уже занят другой группой, возвращается ErrDayConflict и состояние не меняется
// Дубликаты и некорректные значения во входном наборе отбрасываются
func (c *ScheduleConfig) SetGroupDays(index int, days []Weekday) error {
	if index < 0 || index >= len(c.Groups) {
		return ErrGroupIndexOutOfRange
	}

	newDays := make([]Weekday, 0, len(days))
	seen := make(map[Weekday]struct{}, len(days))
	for _, day := range days {
		if !day.IsValid() {
			continue
		}
		if _, ok := seen[day]; ok {
			continue
		}
		if !c.IsDayAvailable(day, index) {
			return ErrDayConflict
		}
		seen[day] = struct{}{}
		newDays = append(newDays, day)
	}

	sort.Slice(newDays, func(a, b int) bool { return newDays[a].Order() < newDays[b].Order() })
	c.Groups[index].Days = newDays
	return nil
}

// SetGroupSlots заменяет список слотов группы, приводя его к каноническому виду
func (c *ScheduleConfig) SetGroupSlots(index int, slots []TimeInterval) error {
	if index < 0 || index >= len(c.Groups) {
		return ErrGroupIndexOutOfRange
	}
	c.Groups[index].Slots = NormalizeSlots(slots)
	return nil
}

// GroupForWeekday возвращает группу, владеющую указанным днем недели, либо nil
func (c *ScheduleConfig) GroupForWeekday(day Weekday) *WeekdayGroup {
	for i := range c.Groups {
		if c.Groups[i].HasDay(day) {
			return &c.Groups[i]
		}
	}
	return nil
}
