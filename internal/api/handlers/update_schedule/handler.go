package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	scheduleService "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
)

const (
	msgInvalidProductID   = "некорректный ID продукта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgProductNotFound    = "продукт не найден"
	msgForbidden          = "доступ запрещен"
	msgDayConflict        = "день недели уже занят другой группой"
	msgInvalidInput       = "некорректные данные расписания"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/products/{productId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseInt(vars["productId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /products/{id}/schedule - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /products/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /products/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	schedule, err := h.service.Update(r.Context(), productID, &req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrProductNotFound):
			h.logger.Warn("PUT /products/{id}/schedule - Product not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, scheduleService.ErrAccessDenied):
			h.logger.Warn("PUT /products/{id}/schedule - Access denied: product_id=%d, user_id=%d",
				productID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, scheduleService.ErrDayConflict):
			h.logger.Warn("PUT /products/{id}/schedule - Day conflict: product_id=%d", productID)
			handlers.RespondError(w, http.StatusConflict, msgDayConflict)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /products/{id}/schedule - Invalid input: product_id=%d, error=%v",
				productID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /products/{id}/schedule - Failed to update schedule: product_id=%d, error=%v",
				productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /products/{id}/schedule - Schedule updated: product_id=%d, user_id=%d",
		productID, userID)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
