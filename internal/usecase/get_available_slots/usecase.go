package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/schedule"
	catalogClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// UseCase use case для получения доступных слотов на дату
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

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: product=%d, date=%s",
		req.ProductID, req.Date.Format(types.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем продукт и проверяем, что бронирование включено
	product, err := uc.catalogClient.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrProductNotFound) {
			uc.logger.Warn("GetAvailableSlots: product id=%d not found", req.ProductID)
			return nil, ErrProductNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get product id=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
	}

	if !product.BookingEnabled {
		uc.logger.Warn("GetAvailableSlots: booking disabled for product id=%d", req.ProductID)
		return nil, ErrBookingDisabled
	}

	// 4. Получаем расписание продукта
	config, err := uc.scheduleRepo.GetByProduct(ctx, req.ProductID)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
			return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
		config = domain.NewScheduleConfig(req.ProductID, domain.KindTimeslots)
		uc.logger.Info("GetAvailableSlots: using default schedule for product=%d", req.ProductID)
	}

	if config.Kind != domain.KindTimeslots {
		uc.logger.Warn("GetAvailableSlots: product id=%d has a day-based schedule", req.ProductID)
		return nil, ErrWrongScheduleKind
	}

	// 5. Дата вне окна или исключена - слотов нет
	if !config.Availability.ContainsDate(now, req.Date) ||
		config.IsDateExcluded(types.NewDateString(req.Date)) {
		uc.logger.Info("GetAvailableSlots: date %s is not bookable", req.Date.Format(types.DateFormat))
		return &Response{
			ProductID: req.ProductID,
			Date:      req.Date,
			Slots:     []Slot{},
		}, nil
	}

	// 6. Собираем слоты дня, отфильтрованные по окну
	daySlots := collectDaySlots(config, req.Date, now)
	if len(daySlots) == 0 {
		return &Response{
			ProductID: req.ProductID,
			Date:      req.Date,
			Slots:     []Slot{},
		}, nil
	}

	// 7. Получаем активные бронирования на эту дату
	filter := domain.ProductReservationsFilter{
		ProductID:       req.ProductID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	reservations, err := uc.reservationRepo.GetByProductWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 8. Вычисляем занятость каждого слота
	slots := calculateAvailableSpots(daySlots, reservations, config.Quantity.Capacity())

	uc.logger.Info("GetAvailableSlots: %d slots for product=%d on %s",
		len(slots), req.ProductID, req.Date.Format(types.DateFormat))

	return &Response{
		ProductID: req.ProductID,
		Date:      req.Date,
		Slots:     slots,
	}, nil
}
