package create_reservation

import (
	"fmt"
	"time"

	createReservation "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ProductID int64   `json:"productId"`
	StartDate string  `json:"startDate"`           // YYYY-MM-DD
	EndDate   *string `json:"endDate,omitempty"`   // YYYY-MM-DD, только для посуточных
	StartTime *string `json:"startTime,omitempty"` // HH:MM, только для слотов
	EndTime   *string `json:"endTime,omitempty"`   // HH:MM, только для слотов
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	startDate, err := time.Parse(types.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid startDate: %w", err)
	}

	req := &createReservation.Request{
		UserID:    userID,
		ProductID: r.ProductID,
		StartDate: startDate,
	}

	if r.EndDate != nil {
		endDate, err := time.Parse(types.DateFormat, *r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		req.EndDate = &endDate
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("invalid startTime: %w", err)
		}
		req.StartTime = &startTime
	}

	if r.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("invalid endTime: %w", err)
		}
		req.EndTime = &endTime
	}

	return req, nil
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	ProductID       int64   `json:"productId"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	StartTime       *string `json:"startTime,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	var startTime *string
	if resp.StartTime != nil {
		s := resp.StartTime.String()
		startTime = &s
	}

	return &ReservationResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		ProductID:       resp.ProductID,
		StartDate:       resp.StartDate.Format(types.DateFormat),
		EndDate:         resp.EndDate.Format(types.DateFormat),
		StartTime:       startTime,
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
