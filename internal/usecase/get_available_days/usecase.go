package get_available_days

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/schedule"
	catalogClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// UseCase use case для получения доступных дней посуточного бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	catalogClient   CatalogServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		catalogClient:   catalogClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных дней
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDays: product=%d, from=%s, to=%s",
		req.ProductID, req.From.Format(types.DateFormat), req.To.Format(types.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDays: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем продукт и проверяем, что бронирование включено
	product, err := uc.catalogClient.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrProductNotFound) {
			uc.logger.Warn("GetAvailableDays: product id=%d not found", req.ProductID)
			return nil, ErrProductNotFound
		}
		uc.logger.Error("GetAvailableDays: failed to get product id=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
	}

	if !product.BookingEnabled {
		uc.logger.Warn("GetAvailableDays: booking disabled for product id=%d", req.ProductID)
		return nil, ErrBookingDisabled
	}

	// 4. Получаем расписание продукта
	config, err := uc.scheduleRepo.GetByProduct(ctx, req.ProductID)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Error("GetAvailableDays: failed to get schedule: %v", err)
			return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
		config = domain.NewScheduleConfig(req.ProductID, domain.KindDays)
		uc.logger.Info("GetAvailableDays: using default schedule for product=%d", req.ProductID)
	}

	if config.Kind != domain.KindDays {
		uc.logger.Warn("GetAvailableDays: product id=%d has a timeslot schedule", req.ProductID)
		return nil, ErrWrongScheduleKind
	}

	// 5. Зажимаем запрошенный диапазон в действующее окно
	start, end, ok := clampRange(config.Availability, now, req.From, req.To)
	if !ok {
		uc.logger.Info("GetAvailableDays: requested range is outside the window")
		return &Response{ProductID: req.ProductID, Days: []Day{}}, nil
	}

	// 6. Получаем активные бронирования на диапазон
	filter := domain.ProductReservationsFilter{
		ProductID:       req.ProductID,
		StartDate:       &start,
		EndDate:         &end,
		IncludeInactive: false,
	}

	reservations, err := uc.reservationRepo.GetByProductWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 7. Собираем дни с занятостью
	days := collectDays(config, start, end, reservations)

	uc.logger.Info("GetAvailableDays: %d days for product=%d", len(days), req.ProductID)

	return &Response{
		ProductID: req.ProductID,
		Days:      days,
	}, nil
}
