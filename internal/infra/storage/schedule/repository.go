package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL "duplicate key value"
const pgUniqueViolation = "23505"

var scheduleColumns = []string{
	"id",
	"product_id",
	"kind",
	"max_days_ahead",
	"buffer_amount",
	"buffer_unit",
	"quantity_enabled",
	"quantity_per_unit",
	"groups",
	"excluded_dates_enabled",
	"excluded_dates",
	"excluded_weekdays",
	"booking_mode",
	"range_limits_enabled",
	"min_range_days",
	"max_range_days",
	"created_at",
	"updated_at",
}

// Repository репозиторий расписаний продуктов
// Групповое расписание и наборы исключений хранятся в jsonb-колонках
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает расписание продукта
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	groupsJSON, datesJSON, weekdaysJSON, err := marshalSets(config)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("product_schedules").
		Columns(
			"product_id",
			"kind",
			"max_days_ahead",
			"buffer_amount",
			"buffer_unit",
			"quantity_enabled",
			"quantity_per_unit",
			"groups",
			"excluded_dates_enabled",
			"excluded_dates",
			"excluded_weekdays",
			"booking_mode",
			"range_limits_enabled",
			"min_range_days",
			"max_range_days",
		).
		Values(
			config.ProductID,
			string(config.Kind),
			config.Availability.MaxDaysAhead,
			config.Availability.Buffer.Amount,
			string(config.Availability.Buffer.Unit),
			config.Quantity.Enabled,
			config.Quantity.PerUnit,
			groupsJSON,
			config.ExcludedDatesEnabled,
			datesJSON,
			weekdaysJSON,
			string(config.BookingMode),
			config.RangeLimits.CustomLimitsEnabled,
			config.RangeLimits.MinLengthDays,
			config.RangeLimits.MaxLengthDays,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&config.ID, &createdAt, &updatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrScheduleAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// GetByProduct получает расписание продукта
func (r *Repository) GetByProduct(ctx context.Context, productID int64) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("product_schedules").
		Where(squirrel.Eq{"product_id": productID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProduct - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByProduct")
}

// Update обновляет расписание продукта целиком
// Агрегат никогда не пишется частично: каждая мутация заменяет его полностью
func (r *Repository) Update(ctx context.Context, productID int64, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	groupsJSON, datesJSON, weekdaysJSON, err := marshalSets(config)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Update("product_schedules").
		Set("kind", string(config.Kind)).
		Set("max_days_ahead", config.Availability.MaxDaysAhead).
		Set("buffer_amount", config.Availability.Buffer.Amount).
		Set("buffer_unit", string(config.Availability.Buffer.Unit)).
		Set("quantity_enabled", config.Quantity.Enabled).
		Set("quantity_per_unit", config.Quantity.PerUnit).
		Set("groups", groupsJSON).
		Set("excluded_dates_enabled", config.ExcludedDatesEnabled).
		Set("excluded_dates", datesJSON).
		Set("excluded_weekdays", weekdaysJSON).
		Set("booking_mode", string(config.BookingMode)).
		Set("range_limits_enabled", config.RangeLimits.CustomLimitsEnabled).
		Set("min_range_days", config.RangeLimits.MinLengthDays).
		Set("max_range_days", config.RangeLimits.MaxLengthDays).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"product_id": productID}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&config.ID, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	config.ProductID = productID
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// DeleteByProduct удаляет расписание продукта
func (r *Repository) DeleteByProduct(ctx context.Context, productID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("product_schedules").
		Where(squirrel.Eq{"product_id": productID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByProduct - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByProduct - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByProduct - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// scanOne сканирует одну строку расписания
func (r *Repository) scanOne(row *sql.Row, op string) (*domain.ScheduleConfig, error) {
	var (
		config                              domain.ScheduleConfig
		kind, bufferUnit, bookingMode       string
		groupsJSON, datesJSON, weekdaysJSON []byte
		createdAt, updatedAt                sql.NullTime
	)

	err := row.Scan(
		&config.ID,
		&config.ProductID,
		&kind,
		&config.Availability.MaxDaysAhead,
		&config.Availability.Buffer.Amount,
		&bufferUnit,
		&config.Quantity.Enabled,
		&config.Quantity.PerUnit,
		&groupsJSON,
		&config.ExcludedDatesEnabled,
		&datesJSON,
		&weekdaysJSON,
		&bookingMode,
		&config.RangeLimits.CustomLimitsEnabled,
		&config.RangeLimits.MinLengthDays,
		&config.RangeLimits.MaxLengthDays,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan schedule: %v", ErrScanRow, op, err)
	}

	config.Kind = domain.ScheduleKind(kind)
	config.Availability.Buffer.Unit = domain.BufferUnit(bufferUnit)
	config.BookingMode = domain.BookingMode(bookingMode)
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	if err := json.Unmarshal(groupsJSON, &config.Groups); err != nil {
		return nil, fmt.Errorf("%w: %s - decode groups: %v", ErrScanRow, op, err)
	}
	if err := json.Unmarshal(datesJSON, &config.ExcludedDates); err != nil {
		return nil, fmt.Errorf("%w: %s - decode excluded dates: %v", ErrScanRow, op, err)
	}
	if err := json.Unmarshal(weekdaysJSON, &config.ExcludedWeekdays); err != nil {
		return nil, fmt.Errorf("%w: %s - decode excluded weekdays: %v", ErrScanRow, op, err)
	}

	// Защита от ручных правок данных в БД
	config.Normalize()

	return &config, nil
}

// marshalSets сериализует jsonb-поля агрегата
func marshalSets(config *domain.ScheduleConfig) (groups, dates, weekdays []byte, err error) {
	groups, err = json.Marshal(config.Groups)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: groups: %v", ErrMarshal, err)
	}
	dates, err = json.Marshal(config.ExcludedDates)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: excluded dates: %v", ErrMarshal, err)
	}
	weekdays, err = json.Marshal(config.ExcludedWeekdays)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: excluded weekdays: %v", ErrMarshal, err)
	}
	return groups, dates, weekdays, nil
}

// isUniqueViolation определяет нарушение уникального ограничения
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
