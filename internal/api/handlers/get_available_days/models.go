package get_available_days

import (
	getAvailableDays "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_days"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// DaysResponse HTTP response model
type DaysResponse struct {
	ProductID int64 `json:"productId"`
	Days      []Day `json:"days"`
}

// Day модель дня с занятостью
type Day struct {
	Date           string `json:"date"` // YYYY-MM-DD
	AvailableSpots int    `json:"availableSpots"`
	TotalSpots     int    `json:"totalSpots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDays.Response) *DaysResponse {
	days := make([]Day, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = Day{
			Date:           d.Date.Format(types.DateFormat),
			AvailableSpots: d.AvailableSpots,
			TotalSpots:     d.TotalSpots,
		}
	}

	return &DaysResponse{
		ProductID: resp.ProductID,
		Days:      days,
	}
}
