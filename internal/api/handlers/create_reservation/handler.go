package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "пользователь не авторизован"
	msgProductNotFound    = "продукт не найден"
	msgBookingDisabled    = "бронирование для продукта выключено"
	msgDateOutOfWindow    = "дата вне окна доступности"
	msgDateExcluded       = "дата исключена из расписания"
	msgWeekdayExcluded    = "день недели исключен из расписания"
	msgSlotNotFound       = "слот не найден в расписании"
	msgSlotNotAvailable   = "слот уже занят"
	msgDayNotAvailable    = "день уже занят"
	msgRangeNotAllowed    = "недопустимая длина диапазона дат"
	msgInvalidInput       = "некорректные параметры бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var httpReq CreateReservationRequest
	if err := handlers.DecodeJSON(r, &httpReq); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req, err := httpReq.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrProductNotFound):
			h.logger.Warn("POST /reservations - Product not found: product_id=%d", httpReq.ProductID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, createReservation.ErrBookingDisabled):
			h.logger.Warn("POST /reservations - Booking disabled: product_id=%d", httpReq.ProductID)
			handlers.RespondBadRequest(w, msgBookingDisabled)

		case errors.Is(err, createReservation.ErrDateOutOfWindow):
			h.logger.Warn("POST /reservations - Date out of window: product_id=%d, user_id=%d",
				httpReq.ProductID, userID)
			handlers.RespondBadRequest(w, msgDateOutOfWindow)

		case errors.Is(err, createReservation.ErrDateExcluded):
			h.logger.Warn("POST /reservations - Date excluded: product_id=%d, user_id=%d",
				httpReq.ProductID, userID)
			handlers.RespondBadRequest(w, msgDateExcluded)

		case errors.Is(err, createReservation.ErrWeekdayExcluded):
			h.logger.Warn("POST /reservations - Weekday excluded: product_id=%d, user_id=%d",
				httpReq.ProductID, userID)
			handlers.RespondBadRequest(w, msgWeekdayExcluded)

		case errors.Is(err, createReservation.ErrSlotNotFound):
			h.logger.Warn("POST /reservations - Slot not found: product_id=%d, user_id=%d",
				httpReq.ProductID, userID)
			handlers.RespondBadRequest(w, msgSlotNotFound)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: product_id=%d, user_id=%d",
				httpReq.ProductID, userID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrDayNotAvailable):
			h.logger.Warn("POST /reservations - Day not available: product_id=%d, user_id=%d",
				httpReq.ProductID, userID)
			handlers.RespondError(w, http.StatusConflict, msgDayNotAvailable)

		case errors.Is(err, createReservation.ErrRangeNotAllowed):
			h.logger.Warn("POST /reservations - Range not allowed: product_id=%d, user_id=%d",
				httpReq.ProductID, userID)
			handlers.RespondBadRequest(w, msgRangeNotAllowed)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: product_id=%d, user_id=%d, error=%v",
				httpReq.ProductID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, product_id=%d, user_id=%d",
		result.ID, result.ProductID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
