package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модели

// GetProductReservationsRequest запрос на получение бронирований продукта
type GetProductReservationsRequest struct {
	UserID    int64
	ProductID int64

	StartDate       *string // YYYY-MM-DD, начало периода
	EndDate         *string // YYYY-MM-DD, конец периода
	Status          *string
	IncludeInactive bool
}

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	UserID int64   `json:"-"`
	Reason *string `json:"reason,omitempty"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"productId"`
	UserID    int64 `json:"userId"`

	StartDate       string  `json:"startDate"` // YYYY-MM-DD
	EndDate         string  `json:"endDate"`   // YYYY-MM-DD
	StartTime       *string `json:"startTime,omitempty"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`

	Status string `json:"status"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		ProductID:          r.ProductID,
		UserID:             r.UserID,
		StartDate:          r.StartDate.Format(types.DateFormat),
		EndDate:            r.EndDate.Format(types.DateFormat),
		DurationMinutes:    r.DurationMinutes,
		Status:             string(r.Status),
		CancellationReason: r.CancellationReason,
		CancelledAt:        r.CancelledAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.StartTime != nil {
		s := r.StartTime.String()
		resp.StartTime = &s
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}
	for _, r := range reservations {
		if dto := FromDomainReservation(r); dto != nil {
			resp.Reservations = append(resp.Reservations, *dto)
		}
	}
	return resp
}
