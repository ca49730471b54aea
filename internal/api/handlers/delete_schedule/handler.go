package delete_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	scheduleService "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
)

const (
	msgInvalidProductID = "некорректный ID продукта"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgProductNotFound  = "продукт не найден"
	msgScheduleNotFound = "расписание не найдено"
	msgForbidden        = "доступ запрещен"
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

// Handle DELETE /api/v1/products/{productId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseInt(vars["productId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /products/{id}/schedule - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /products/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), productID, userID); err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrProductNotFound):
			h.logger.Warn("DELETE /products/{id}/schedule - Product not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, scheduleService.ErrScheduleNotFound):
			h.logger.Warn("DELETE /products/{id}/schedule - Schedule not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, scheduleService.ErrAccessDenied):
			h.logger.Warn("DELETE /products/{id}/schedule - Access denied: product_id=%d, user_id=%d",
				productID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /products/{id}/schedule - Failed to delete schedule: product_id=%d, error=%v",
				productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /products/{id}/schedule - Schedule deleted: product_id=%d, user_id=%d",
		productID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
