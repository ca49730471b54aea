package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	ProductID int64  `json:"productId"`
	Date      string `json:"date"` // YYYY-MM-DD
	Slots     []Slot `json:"slots"`
}

// Slot модель слота с занятостью
type Slot struct {
	StartTime       string `json:"startTime"` // HH:MM
	EndTime         string `json:"endTime"`   // HH:MM
	DurationMinutes int    `json:"durationMinutes"`
	AvailableSpots  int    `json:"availableSpots"`
	TotalSpots      int    `json:"totalSpots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			StartTime:       s.StartTime.String(),
			EndTime:         s.EndTime.String(),
			DurationMinutes: s.DurationMinutes,
			AvailableSpots:  s.AvailableSpots,
			TotalSpots:      s.TotalSpots,
		}
	}

	return &SlotsResponse{
		ProductID: resp.ProductID,
		Date:      resp.Date.Format(types.DateFormat),
		Slots:     slots,
	}
}
