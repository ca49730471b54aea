package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending            ReservationStatus = "pending"
	StatusConfirmed          ReservationStatus = "confirmed"
	StatusCompleted          ReservationStatus = "completed"
	StatusCancelledByUser    ReservationStatus = "cancelled_by_user"
	StatusCancelledByManager ReservationStatus = "cancelled_by_manager"
	StatusNoShow             ReservationStatus = "no_show"
)

// InactiveStatuses список статусов неактивных бронирований
// Используется при подсчете занятости слотов и дней
var InactiveStatuses = []ReservationStatus{
	StatusCancelledByUser,
	StatusCancelledByManager,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// Reservation represents an accepted reservation of a product
//
// For a timeslots schedule StartDate == EndDate and StartTime/DurationMinutes
// describe the reserved slot. For a days schedule StartTime is nil and the
// reservation covers every date of [StartDate, EndDate] inclusive
type Reservation struct {
	ID        int64
	ProductID int64
	UserID    int64

	StartDate       time.Time
	EndDate         time.Time
	StartTime       *types.TimeString
	DurationMinutes int

	Status ReservationStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies capacity
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelledByUser &&
		r.Status != StatusCancelledByManager &&
		r.Status != StatusNoShow
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelledByUser || r.Status == StatusCancelledByManager
}

// LengthDays returns the inclusive number of days the reservation covers
func (r *Reservation) LengthDays() int {
	start := truncateToDay(r.StartDate)
	end := truncateToDay(r.EndDate)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// CoversDate returns true if the reservation covers the given calendar date
func (r *Reservation) CoversDate(date time.Time) bool {
	day := truncateToDay(date)
	return !day.Before(truncateToDay(r.StartDate)) && !day.After(truncateToDay(r.EndDate))
}

// ProductReservationsFilter фильтр для выборки бронирований продукта
type ProductReservationsFilter struct {
	ProductID       int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные и no-show
}
