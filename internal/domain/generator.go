package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// GenerateSlots генерирует равномерную последовательность слотов в диапазоне [from, to]
// Жадная укладка без пересечений: очередной слот [cursor, cursor+length] добавляется,
// пока его конец не выходит за to и не достигнут maxCount; затем курсор сдвигается
// на length+gap. Частичный слот в конце диапазона не создается
//
// Возвращает пустой список, если границы не заданы, length < 1 или maxCount < 1
// Отрицательный gap трактуется как 0
// После слияния с уже существующим списком вызывающая сторона обязана повторно
// выполнить NormalizeSlots — генерация сама по себе не дедуплицирует
func GenerateSlots(from, to types.TimeString, lengthMinutes, gapMinutes, maxCount int) []TimeInterval {
	slots := make([]TimeInterval, 0)

	if from.IsZero() || to.IsZero() {
		return slots
	}
	if from.Validate() != nil || to.Validate() != nil {
		return slots
	}
	if lengthMinutes < MinSlotLengthMinutes || maxCount < 1 {
		return slots
	}
	if gapMinutes < 0 {
		gapMinutes = 0
	}

	end := to.Minutes()
	for cursor := from.Minutes(); cursor+lengthMinutes <= end && len(slots) < maxCount; cursor += lengthMinutes + gapMinutes {
		slots = append(slots, TimeInterval{
			From: types.NewTimeStringFromMinutes(cursor),
			To:   types.NewTimeStringFromMinutes(cursor + lengthMinutes),
		})
	}

	return slots
}
