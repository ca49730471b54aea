package domain

import (
	"sort"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// TimeInterval represents a time-of-day slot within a single day
// Invariant: To > From, no overnight wraparound
type TimeInterval struct {
	From types.TimeString `json:"from"`
	To   types.TimeString `json:"to"`
}

// IsValid returns true if both bounds are well-formed and To is strictly after From
func (i TimeInterval) IsValid() bool {
	if i.From.Validate() != nil || i.To.Validate() != nil {
		return false
	}
	return i.To.IsAfter(i.From)
}

// DurationMinutes returns the interval length in minutes
func (i TimeInterval) DurationMinutes() int {
	return i.To.Minutes() - i.From.Minutes()
}

// Overlaps returns true if the two intervals share time
// Boundary-touching intervals (one ends exactly where the other starts) do not overlap
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.From.IsBefore(other.To) && other.From.IsBefore(i.To)
}

// NormalizeSlots приводит список слотов к каноническому виду:
// отбрасывает некорректные интервалы (To <= From), убирает точные дубликаты
// и сортирует по времени начала
// Операция идемпотентна: NormalizeSlots(NormalizeSlots(x)) == NormalizeSlots(x)
func NormalizeSlots(slots []TimeInterval) []TimeInterval {
	result := make([]TimeInterval, 0, len(slots))
	seen := make(map[TimeInterval]struct{}, len(slots))

	for _, slot := range slots {
		if !slot.IsValid() {
			continue
		}
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		result = append(result, slot)
	}

	sort.SliceStable(result, func(a, b int) bool {
		if result[a].From == result[b].From {
			return result[a].To.IsBefore(result[b].To)
		}
		return result[a].From.IsBefore(result[b].From)
	})

	return result
}
