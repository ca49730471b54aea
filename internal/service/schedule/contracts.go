package schedule

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/catalogservice"
)

// ScheduleRepository интерфейс репозитория расписаний продуктов
type ScheduleRepository interface {
	Create(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
	GetByProduct(ctx context.Context, productID int64) (*domain.ScheduleConfig, error)
	Update(ctx context.Context, productID int64, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
	DeleteByProduct(ctx context.Context, productID int64) error
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetProduct(ctx context.Context, productID int64) (*catalogservice.Product, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
