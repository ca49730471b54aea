package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/schedule"
	catalogClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Service сервис для работы с расписаниями продуктов
type Service struct {
	scheduleRepo  ScheduleRepository
	catalogClient CatalogServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:  scheduleRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Get получает расписание продукта
// Публичный метод - доступен всем
// Для продукта без сохраненного расписания возвращается дефолтное
func (s *Service) Get(ctx context.Context, productID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: fetching schedule for product=%d", productID)

	config, err := s.scheduleRepo.GetByProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Info("Get: no schedule for product=%d, returning defaults", productID)
			return models.FromDomainSchedule(domain.NewScheduleConfig(productID, domain.KindTimeslots)), nil
		}
		s.logger.Error("Get: repository error for product=%d: %v", productID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched schedule id=%d for product=%d", config.ID, productID)
	return models.FromDomainSchedule(config), nil
}

// Update обновляет расписание продукта
// Доступно только владельцу и менеджерам продукта
// Если расписания еще нет, оно создается от дефолтного состояния
func (s *Service) Update(ctx context.Context, productID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule for product=%d by user=%d", productID, req.UserID)

	// 1. Получаем продукт для проверки прав доступа
	product, err := s.catalogClient.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrProductNotFound) {
			s.logger.Warn("Update: product id=%d not found", productID)
			return nil, ErrProductNotFound
		}
		s.logger.Error("Update: failed to get product id=%d: %v", productID, err)
		return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа (только владелец или менеджер продукта)
	if !product.IsManagedBy(req.UserID) {
		s.logger.Warn("Update: user=%d is not a manager of product=%d", req.UserID, productID)
		return nil, ErrAccessDenied
	}

	// 3. Получаем существующее расписание или создаем дефолтное
	existing := true
	config, err := s.scheduleRepo.GetByProduct(ctx, productID)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Error("Update: repository error for product=%d: %v", productID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		existing = false
		config = domain.NewScheduleConfig(productID, domain.KindTimeslots)
	}

	// 4. Применяем обновления через доменные операции
	if err := req.ApplyToConfig(config); err != nil {
		if errors.Is(err, domain.ErrDayConflict) {
			s.logger.Warn("Update: weekday conflict for product=%d: %v", productID, err)
			return nil, ErrDayConflict
		}
		s.logger.Warn("Update: validation failed for product=%d: %v", productID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 5. Приводим числовые поля к допустимым границам
	config.Normalize()

	// 6. Сохраняем расписание
	var saved *domain.ScheduleConfig
	if existing {
		saved, err = s.scheduleRepo.Update(ctx, productID, config)
	} else {
		saved, err = s.scheduleRepo.Create(ctx, config)
	}
	if err != nil {
		s.logger.Error("Update: failed to save schedule for product=%d: %v", productID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully saved schedule id=%d for product=%d", saved.ID, productID)
	return models.FromDomainSchedule(saved), nil
}

// Delete удаляет расписание продукта
// Доступно только владельцу и менеджерам продукта
func (s *Service) Delete(ctx context.Context, productID int64, userID int64) error {
	s.logger.Info("Delete: deleting schedule for product=%d by user=%d", productID, userID)

	product, err := s.catalogClient.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrProductNotFound) {
			s.logger.Warn("Delete: product id=%d not found", productID)
			return ErrProductNotFound
		}
		s.logger.Error("Delete: failed to get product id=%d: %v", productID, err)
		return fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
	}

	if !product.IsManagedBy(userID) {
		s.logger.Warn("Delete: user=%d is not a manager of product=%d", userID, productID)
		return ErrAccessDenied
	}

	if err := s.scheduleRepo.DeleteByProduct(ctx, productID); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: schedule for product=%d not found", productID)
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for product=%d: %v", productID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted schedule for product=%d", productID)
	return nil
}

// PreviewSlots генерирует сетку слотов по заданным параметрам без сохранения
// Публичный метод - используется интерфейсом настройки расписания
func (s *Service) PreviewSlots(req *models.PreviewSlotsRequest) (*models.PreviewSlotsResponse, error) {
	from, err := types.NewTimeStringFromString(req.From)
	if err != nil {
		return nil, fmt.Errorf("%w: from: %v", ErrInvalidInput, err)
	}
	to, err := types.NewTimeStringFromString(req.To)
	if err != nil {
		return nil, fmt.Errorf("%w: to: %v", ErrInvalidInput, err)
	}

	maxCount := req.MaxCount
	if maxCount <= 0 || maxCount > domain.MaxGeneratedSlots {
		maxCount = domain.MaxGeneratedSlots
	}

	slots := domain.GenerateSlots(from, to, req.LengthMinutes, req.GapMinutes, maxCount)
	return models.FromDomainSlots(slots), nil
}
