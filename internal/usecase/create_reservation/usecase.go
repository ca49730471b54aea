package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/schedule"
	catalogClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	catalogClient   CatalogServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		catalogClient:   catalogClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, product=%d, date=%s",
		req.UserID, req.ProductID, req.StartDate.Format(types.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем продукт и проверяем, что бронирование включено
	product, err := uc.catalogClient.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrProductNotFound) {
			uc.logger.Warn("CreateReservation: product id=%d not found", req.ProductID)
			return nil, ErrProductNotFound
		}
		uc.logger.Error("CreateReservation: failed to get product id=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
	}

	if !product.BookingEnabled {
		uc.logger.Warn("CreateReservation: booking disabled for product id=%d", req.ProductID)
		return nil, ErrBookingDisabled
	}

	var result *domain.Reservation

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем расписание продукта
		config, err := uc.scheduleRepo.GetByProduct(txCtx, req.ProductID)
		if err != nil {
			if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Error("CreateReservation: failed to get schedule: %v", err)
				return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
			}
			config = domain.NewScheduleConfig(req.ProductID, domain.KindTimeslots)
			uc.logger.Info("CreateReservation: using default schedule for product=%d", req.ProductID)
		}

		// 4.2. Ветка по типу расписания
		if config.Kind == domain.KindTimeslots {
			result, err = uc.reserveSlot(txCtx, req, config, now)
		} else {
			result, err = uc.reserveDays(txCtx, req, config, now)
		}
		return err
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		ProductID:       result.ProductID,
		StartDate:       result.StartDate,
		EndDate:         result.EndDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// reserveSlot бронирует слот времени в расписании по слотам
func (uc *UseCase) reserveSlot(ctx context.Context, req *Request, config *domain.ScheduleConfig, now time.Time) (*domain.Reservation, error) {
	if req.StartTime == nil || req.EndTime == nil {
		return nil, fmt.Errorf("%w: startTime and endTime are required for slot reservations", ErrInvalidInput)
	}

	date := req.StartDate

	// Дата должна попадать в окно и не быть исключенной
	if !config.Availability.ContainsDate(now, date) {
		uc.logger.Warn("CreateReservation: date %s outside window", date.Format(types.DateFormat))
		return nil, ErrDateOutOfWindow
	}
	if config.IsDateExcluded(types.NewDateString(date)) {
		uc.logger.Warn("CreateReservation: date %s is excluded", date.Format(types.DateFormat))
		return nil, ErrDateExcluded
	}

	// Для буфера в часах проверяем момент начала слота, а не только день
	if err := validateSlotInstant(config.Availability, now, date, *req.StartTime); err != nil {
		uc.logger.Warn("CreateReservation: slot start is before effective window")
		return nil, err
	}

	// Слот должен существовать в группе, владеющей этим днем недели
	slot := domain.TimeInterval{From: *req.StartTime, To: *req.EndTime}
	group := config.GroupForWeekday(domain.WeekdayFromTime(date))
	if group == nil || group.FindSlot(slot) == nil {
		uc.logger.Warn("CreateReservation: slot %s-%s not found for %s",
			slot.From, slot.To, date.Format(types.DateFormat))
		return nil, ErrSlotNotFound
	}

	// Считаем занятость слота среди активных бронирований этой даты
	reservations, err := uc.activeReservations(ctx, req.ProductID, date, date)
	if err != nil {
		return nil, err
	}

	capacity := config.Quantity.Capacity()
	taken := countOverlappingReservations(slot, reservations)
	if taken >= capacity {
		uc.logger.Warn("CreateReservation: slot not available, %d/%d spots taken", taken, capacity)
		return nil, ErrSlotNotAvailable
	}

	uc.logger.Info("CreateReservation: slot available, %d/%d spots taken", taken, capacity)

	reservation := &domain.Reservation{
		ProductID:       req.ProductID,
		UserID:          req.UserID,
		StartDate:       date,
		EndDate:         date,
		StartTime:       req.StartTime,
		DurationMinutes: slot.DurationMinutes(),
		Status:          domain.StatusConfirmed,
	}

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}
	return created, nil
}

// reserveDays бронирует день или диапазон дней в посуточном расписании
func (uc *UseCase) reserveDays(ctx context.Context, req *Request, config *domain.ScheduleConfig, now time.Time) (*domain.Reservation, error) {
	if req.StartTime != nil {
		return nil, fmt.Errorf("%w: startTime is not allowed for day reservations", ErrInvalidInput)
	}

	startDate := req.StartDate
	endDate := startDate
	if req.EndDate != nil {
		endDate = *req.EndDate
	}

	lengthDays := int(endDate.Sub(startDate).Hours()/24) + 1

	// В режиме одного дня диапазон недопустим; лимиты длины действуют
	// только в режиме date_range, в single_day они неактивны
	if config.BookingMode == domain.ModeSingleDay && lengthDays > 1 {
		uc.logger.Warn("CreateReservation: range of %d days requested in single_day mode", lengthDays)
		return nil, ErrRangeNotAllowed
	}
	if config.BookingMode == domain.ModeDateRange && !config.RangeLimits.AllowsLength(lengthDays) {
		uc.logger.Warn("CreateReservation: range length %d violates limits", lengthDays)
		return nil, ErrRangeNotAllowed
	}

	// Получаем активные бронирования на весь диапазон одним запросом
	reservations, err := uc.activeReservations(ctx, req.ProductID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	capacity := config.Quantity.Capacity()

	// Каждый день диапазона должен быть доступен
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		if !config.Availability.ContainsDate(now, date) {
			uc.logger.Warn("CreateReservation: date %s outside window", date.Format(types.DateFormat))
			return nil, ErrDateOutOfWindow
		}
		if config.IsDateExcluded(types.NewDateString(date)) {
			uc.logger.Warn("CreateReservation: date %s is excluded", date.Format(types.DateFormat))
			return nil, ErrDateExcluded
		}
		if config.IsWeekdayExcluded(domain.WeekdayFromTime(date)) {
			uc.logger.Warn("CreateReservation: weekday of %s is excluded", date.Format(types.DateFormat))
			return nil, ErrWeekdayExcluded
		}

		taken := countReservationsCoveringDate(date, reservations)
		if taken >= capacity {
			uc.logger.Warn("CreateReservation: day %s not available, %d/%d spots taken",
				date.Format(types.DateFormat), taken, capacity)
			return nil, ErrDayNotAvailable
		}
	}

	reservation := &domain.Reservation{
		ProductID: req.ProductID,
		UserID:    req.UserID,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    domain.StatusConfirmed,
	}

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}
	return created, nil
}

// activeReservations получает активные бронирования продукта, пересекающиеся с диапазоном дат
func (uc *UseCase) activeReservations(ctx context.Context, productID int64, startDate, endDate time.Time) ([]*domain.Reservation, error) {
	filter := domain.ProductReservationsFilter{
		ProductID:       productID,
		StartDate:       &startDate,
		EndDate:         &endDate,
		IncludeInactive: false,
	}

	reservations, err := uc.reservationRepo.GetByProductWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}
	return reservations, nil
}
