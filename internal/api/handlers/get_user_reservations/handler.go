package get_user_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	reservationsService "github.com/m04kA/SMC-ScheduleService/internal/service/reservations"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgUnauthorized  = "пользователь не авторизован"
	msgAccessDenied  = "нет доступа к бронированиям другого пользователя"
	msgInvalidStatus = "некорректный статус бронирования"
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

// Handle GET /api/v1/users/{userId}/reservations?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/reservations - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/reservations - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Смотреть можно только свои бронирования
	if userID != authUserID {
		h.logger.Warn("GET /users/{id}/reservations - Access denied: user_id=%d, auth_user_id=%d",
			userID, authUserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.GetUserReservations(r.Context(), userID, status)
	if err != nil {
		if errors.Is(err, reservationsService.ErrInvalidInput) {
			h.logger.Warn("GET /users/{id}/reservations - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /users/{id}/reservations - Failed: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/reservations - %d reservations: user_id=%d",
		len(result.Reservations), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
