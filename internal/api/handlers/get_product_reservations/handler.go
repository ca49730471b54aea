package get_product_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	reservationsService "github.com/m04kA/SMC-ScheduleService/internal/service/reservations"
	"github.com/m04kA/SMC-ScheduleService/internal/service/reservations/models"
)

const (
	msgInvalidProductID = "некорректный ID продукта"
	msgUnauthorized     = "пользователь не авторизован"
	msgProductNotFound  = "продукт не найден"
	msgAccessDenied     = "нет доступа к бронированиям продукта"
	msgInvalidFilter    = "некорректные параметры фильтра"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/products/{productId}/reservations?startDate=&endDate=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /products/{id}/reservations - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	productID, err := strconv.ParseInt(vars["productId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /products/{id}/reservations - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	query := r.URL.Query()
	req := &models.GetProductReservationsRequest{
		UserID:          userID,
		ProductID:       productID,
		IncludeInactive: query.Get("includeInactive") == "true",
	}
	if s := query.Get("startDate"); s != "" {
		req.StartDate = &s
	}
	if s := query.Get("endDate"); s != "" {
		req.EndDate = &s
	}
	if s := query.Get("status"); s != "" {
		req.Status = &s
	}

	result, err := h.service.GetProductReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrProductNotFound):
			h.logger.Warn("GET /products/{id}/reservations - Product not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("GET /products/{id}/reservations - Access denied: product_id=%d, user_id=%d",
				productID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /products/{id}/reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /products/{id}/reservations - Failed: product_id=%d, error=%v",
				productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /products/{id}/reservations - %d reservations: product_id=%d",
		len(result.Reservations), productID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
