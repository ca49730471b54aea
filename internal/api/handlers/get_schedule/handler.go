package get_schedule

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

const (
	msgInvalidProductID = "некорректный ID продукта"
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

// Handle GET /api/v1/products/{productId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseInt(vars["productId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /products/{id}/schedule - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	schedule, err := h.service.Get(r.Context(), productID)
	if err != nil {
		h.logger.Error("GET /products/{id}/schedule - Failed to get schedule: product_id=%d, error=%v",
			productID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /products/{id}/schedule - Schedule retrieved: product_id=%d", productID)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
