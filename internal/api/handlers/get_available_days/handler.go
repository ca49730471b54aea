package get_available_days

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getAvailableDays "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_days"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

const (
	msgInvalidProductID = "некорректный ID продукта"
	msgInvalidRange     = "некорректные параметры from/to, ожидается YYYY-MM-DD"
	msgProductNotFound  = "продукт не найден"
	msgBookingDisabled  = "бронирование для продукта выключено"
	msgWrongKind        = "у продукта расписание по слотам"
)

type Handler struct {
	useCase GetAvailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/products/{productId}/available-days?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseInt(vars["productId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /products/{id}/available-days - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	from, err := time.Parse(types.DateFormat, r.URL.Query().Get("from"))
	if err != nil {
		h.logger.Warn("GET /products/{id}/available-days - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	to, err := time.Parse(types.DateFormat, r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /products/{id}/available-days - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDays.Request{
		ProductID: productID,
		From:      from,
		To:        to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrProductNotFound):
			h.logger.Warn("GET /products/{id}/available-days - Product not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, getAvailableDays.ErrBookingDisabled):
			h.logger.Warn("GET /products/{id}/available-days - Booking disabled: product_id=%d", productID)
			handlers.RespondBadRequest(w, msgBookingDisabled)

		case errors.Is(err, getAvailableDays.ErrWrongScheduleKind):
			h.logger.Warn("GET /products/{id}/available-days - Wrong schedule kind: product_id=%d", productID)
			handlers.RespondBadRequest(w, msgWrongKind)

		case errors.Is(err, getAvailableDays.ErrInvalidInput):
			h.logger.Warn("GET /products/{id}/available-days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /products/{id}/available-days - Failed: product_id=%d, error=%v",
				productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /products/{id}/available-days - %d days: product_id=%d", len(result.Days), productID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
