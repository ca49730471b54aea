package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/reservation"
	catalogClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-ScheduleService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	catalogClient   CatalogServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		catalogClient:   catalogClient,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Доступно владельцу бронирования, владельцу и менеджерам продукта
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d by user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if reservation.UserID != userID {
		manages, err := s.userManagesProduct(ctx, reservation.ProductID, userID)
		if err != nil {
			return nil, err
		}
		if !manages {
			s.logger.Warn("GetByID: user=%d has no access to reservation id=%d", userID, id)
			return nil, ErrAccessDenied
		}
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations получает бронирования пользователя
// Пользователь видит только свои бронирования
func (s *Service) GetUserReservations(ctx context.Context, userID int64, statusFilter *string) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d", userID)

	status, err := parseStatus(statusFilter)
	if err != nil {
		s.logger.Warn("GetUserReservations: invalid status filter %q", *statusFilter)
		return nil, err
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, userID, status)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: fetched %d reservations for user=%d", len(reservations), userID)
	return models.FromDomainReservationList(reservations), nil
}

// GetProductReservations получает бронирования продукта
// Доступно только владельцу и менеджерам продукта
func (s *Service) GetProductReservations(ctx context.Context, req *models.GetProductReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetProductReservations: fetching reservations for product=%d by user=%d",
		req.ProductID, req.UserID)

	manages, err := s.userManagesProduct(ctx, req.ProductID, req.UserID)
	if err != nil {
		return nil, err
	}
	if !manages {
		s.logger.Warn("GetProductReservations: user=%d is not a manager of product=%d",
			req.UserID, req.ProductID)
		return nil, ErrAccessDenied
	}

	filter, err := buildProductFilter(req)
	if err != nil {
		s.logger.Warn("GetProductReservations: invalid filter: %v", err)
		return nil, err
	}

	reservations, err := s.reservationRepo.GetByProductWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProductReservations: repository error for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: GetProductReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProductReservations: fetched %d reservations for product=%d",
		len(reservations), req.ProductID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование
// Владелец бронирования отменяет от своего имени, менеджер продукта - от имени продукта
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", id, req.UserID)

	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for reservation id=%d", id)
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Определяем, от чьего имени выполняется отмена
	status := domain.StatusCancelledByUser
	if reservation.UserID != req.UserID {
		manages, err := s.userManagesProduct(ctx, reservation.ProductID, req.UserID)
		if err != nil {
			return nil, err
		}
		if !manages {
			s.logger.Warn("Cancel: user=%d has no access to reservation id=%d", req.UserID, id)
			return nil, ErrAccessDenied
		}
		status = domain.StatusCancelledByManager
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d in status %s cannot be cancelled", id, reservation.Status)
		return nil, ErrCancellationNotAllowed
	}

	cancelled, err := s.reservationRepo.Cancel(ctx, id, status, req.Reason)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d with status %s", id, status)
	return models.FromDomainReservation(cancelled), nil
}

// Вспомогательные методы

// userManagesProduct проверяет, что пользователь является владельцем или менеджером продукта
func (s *Service) userManagesProduct(ctx context.Context, productID, userID int64) (bool, error) {
	product, err := s.catalogClient.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrProductNotFound) {
			s.logger.Warn("userManagesProduct: product id=%d not found", productID)
			return false, ErrProductNotFound
		}
		s.logger.Error("userManagesProduct: failed to get product id=%d: %v", productID, err)
		return false, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
	}
	return product.IsManagedBy(userID), nil
}

// parseStatus парсит опциональный фильтр статуса
func parseStatus(raw *string) (*domain.ReservationStatus, error) {
	if raw == nil {
		return nil, nil
	}
	status := domain.ReservationStatus(*raw)
	switch status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted,
		domain.StatusCancelledByUser, domain.StatusCancelledByManager, domain.StatusNoShow:
		return &status, nil
	}
	return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *raw)
}

// buildProductFilter собирает доменный фильтр из запроса
func buildProductFilter(req *models.GetProductReservationsRequest) (domain.ProductReservationsFilter, error) {
	filter := domain.ProductReservationsFilter{
		ProductID:       req.ProductID,
		IncludeInactive: req.IncludeInactive,
	}

	if req.StartDate != nil {
		t, err := time.Parse(types.DateFormat, *req.StartDate)
		if err != nil {
			return filter, fmt.Errorf("%w: startDate: %v", ErrInvalidInput, err)
		}
		filter.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := time.Parse(types.DateFormat, *req.EndDate)
		if err != nil {
			return filter, fmt.Errorf("%w: endDate: %v", ErrInvalidInput, err)
		}
		filter.EndDate = &t
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		return filter, err
	}
	filter.Status = status

	return filter, nil
}
