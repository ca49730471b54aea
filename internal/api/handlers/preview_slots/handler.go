package preview_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	scheduleService "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректные параметры генерации, ожидается время в формате HH:MM"
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

// Handle POST /api/v1/schedule/slots/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.PreviewSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/slots/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.PreviewSlots(&req)
	if err != nil {
		if errors.Is(err, scheduleService.ErrInvalidInput) {
			h.logger.Warn("POST /schedule/slots/preview - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("POST /schedule/slots/preview - Failed to generate slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /schedule/slots/preview - Generated %d slots", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
