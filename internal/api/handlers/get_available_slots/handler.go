package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

const (
	msgInvalidProductID = "некорректный ID продукта"
	msgInvalidDate      = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgProductNotFound  = "продукт не найден"
	msgBookingDisabled  = "бронирование для продукта выключено"
	msgWrongKind        = "у продукта посуточное расписание"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/products/{productId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseInt(vars["productId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /products/{id}/available-slots - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	date, err := time.Parse(types.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /products/{id}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ProductID: productID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrProductNotFound):
			h.logger.Warn("GET /products/{id}/available-slots - Product not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, getAvailableSlots.ErrBookingDisabled):
			h.logger.Warn("GET /products/{id}/available-slots - Booking disabled: product_id=%d", productID)
			handlers.RespondBadRequest(w, msgBookingDisabled)

		case errors.Is(err, getAvailableSlots.ErrWrongScheduleKind):
			h.logger.Warn("GET /products/{id}/available-slots - Wrong schedule kind: product_id=%d", productID)
			handlers.RespondBadRequest(w, msgWrongKind)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /products/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /products/{id}/available-slots - Failed: product_id=%d, error=%v",
				productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /products/{id}/available-slots - %d slots: product_id=%d, date=%s",
		len(result.Slots), productID, date.Format(types.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
