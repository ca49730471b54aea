package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Пятница, 10:00 UTC
var testNow = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	nextID       int64
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	f.nextID++
	r.ID = f.nextID
	r.CreatedAt = testNow
	r.UpdatedAt = testNow
	f.reservations = append(f.reservations, r)
	return r, nil
}

func (f *fakeReservationRepo) GetByProductWithFilter(_ context.Context, filter domain.ProductReservationsFilter) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.ProductID != filter.ProductID {
			continue
		}
		if !filter.IncludeInactive && !r.IsActive() {
			continue
		}
		if filter.StartDate != nil && r.EndDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && r.StartDate.After(*filter.EndDate) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeScheduleRepo struct {
	config *domain.ScheduleConfig
}

func (f *fakeScheduleRepo) GetByProduct(_ context.Context, _ int64) (*domain.ScheduleConfig, error) {
	if f.config == nil {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return f.config, nil
}

type fakeCatalogClient struct {
	product *catalogservice.Product
	err     error
}

func (f *fakeCatalogClient) GetProduct(_ context.Context, _ int64) (*catalogservice.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.product, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func interval(from, to string) domain.TimeInterval {
	return domain.TimeInterval{From: types.TimeString(from), To: types.TimeString(to)}
}

func timeslotConfig(t *testing.T) *domain.ScheduleConfig {
	t.Helper()
	config := domain.NewScheduleConfig(1, domain.KindTimeslots)
	config.Availability.MaxDaysAhead = 30

	index := config.AddGroup()
	require.NoError(t, config.SetGroupDays(index, []domain.Weekday{domain.Friday}))
	require.NoError(t, config.SetGroupSlots(index, []domain.TimeInterval{
		interval("10:00", "11:00"),
		interval("11:00", "12:00"),
	}))
	return config
}

func daysConfig(t *testing.T) *domain.ScheduleConfig {
	t.Helper()
	config := domain.NewScheduleConfig(1, domain.KindDays)
	config.Availability.MaxDaysAhead = 30
	require.NoError(t, config.SetBookingMode(domain.ModeDateRange))
	return config
}

func newTestUseCase(config *domain.ScheduleConfig, resRepo *fakeReservationRepo) *UseCase {
	uc := NewUseCase(
		resRepo,
		&fakeScheduleRepo{config: config},
		&fakeCatalogClient{product: &catalogservice.Product{ID: 1, OwnerID: 99, BookingEnabled: true}},
		&fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedClock{t: testNow}
	return uc
}

func TestExecute_SlotReservation(t *testing.T) {
	// Пятница через неделю
	date := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	t.Run("successfully reserves an existing slot", func(t *testing.T) {
		repo := &fakeReservationRepo{}
		uc := newTestUseCase(timeslotConfig(t), repo)

		resp, err := uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: date,
			StartTime: ptr.Ptr(types.TimeString("10:00")),
			EndTime:   ptr.Ptr(types.TimeString("11:00")),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, date, resp.StartDate)
		assert.Equal(t, date, resp.EndDate)
		assert.Equal(t, 60, resp.DurationMinutes)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	})

	t.Run("rejects slot that is not in the schedule", func(t *testing.T) {
		uc := newTestUseCase(timeslotConfig(t), &fakeReservationRepo{})

		_, err := uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: date,
			StartTime: ptr.Ptr(types.TimeString("09:00")),
			EndTime:   ptr.Ptr(types.TimeString("10:00")),
		})

		assert.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("rejects weekday without a group", func(t *testing.T) {
		uc := newTestUseCase(timeslotConfig(t), &fakeReservationRepo{})

		// Суббота
		_, err := uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			StartTime: ptr.Ptr(types.TimeString("10:00")),
			EndTime:   ptr.Ptr(types.TimeString("11:00")),
		})

		assert.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("rejects date outside the booking window", func(t *testing.T) {
		uc := newTestUseCase(timeslotConfig(t), &fakeReservationRepo{})

		_, err := uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: testNow.AddDate(0, 0, 40),
			StartTime: ptr.Ptr(types.TimeString("10:00")),
			EndTime:   ptr.Ptr(types.TimeString("11:00")),
		})

		assert.ErrorIs(t, err, ErrDateOutOfWindow)
	})

	t.Run("rejects excluded date", func(t *testing.T) {
		config := timeslotConfig(t)
		config.SetExcludedDatesEnabled(true)
		require.NoError(t, config.ToggleExcludedDate(types.NewDateString(date)))
		uc := newTestUseCase(config, &fakeReservationRepo{})

		_, err := uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: date,
			StartTime: ptr.Ptr(types.TimeString("10:00")),
			EndTime:   ptr.Ptr(types.TimeString("11:00")),
		})

		assert.ErrorIs(t, err, ErrDateExcluded)
	})

	t.Run("rejects full slot and respects quantity policy", func(t *testing.T) {
		config := timeslotConfig(t)
		repo := &fakeReservationRepo{}
		uc := newTestUseCase(config, repo)

		req := &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: date,
			StartTime: ptr.Ptr(types.TimeString("10:00")),
			EndTime:   ptr.Ptr(types.TimeString("11:00")),
		}

		// Вместимость по умолчанию: одно бронирование на слот
		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		_, err = uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotAvailable)

		// С включенной политикой количества помещается второе
		config.Quantity = domain.QuantityPolicy{Enabled: true, PerUnit: 2}
		_, err = uc.Execute(context.Background(), req)
		require.NoError(t, err)
		_, err = uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("cancelled reservation frees the slot", func(t *testing.T) {
		repo := &fakeReservationRepo{}
		uc := newTestUseCase(timeslotConfig(t), repo)

		req := &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: date,
			StartTime: ptr.Ptr(types.TimeString("10:00")),
			EndTime:   ptr.Ptr(types.TimeString("11:00")),
		}

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		repo.reservations[0].Status = domain.StatusCancelledByUser

		_, err = uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("rejects disabled booking", func(t *testing.T) {
		uc := newTestUseCase(timeslotConfig(t), &fakeReservationRepo{})
		uc.catalogClient = &fakeCatalogClient{
			product: &catalogservice.Product{ID: 1, BookingEnabled: false},
		}

		_, err := uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: date,
			StartTime: ptr.Ptr(types.TimeString("10:00")),
			EndTime:   ptr.Ptr(types.TimeString("11:00")),
		})

		assert.ErrorIs(t, err, ErrBookingDisabled)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		uc := newTestUseCase(timeslotConfig(t), &fakeReservationRepo{})
		uc.catalogClient = &fakeCatalogClient{err: catalogservice.ErrProductNotFound}

		_, err := uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 404,
			StartDate: date,
			StartTime: ptr.Ptr(types.TimeString("10:00")),
			EndTime:   ptr.Ptr(types.TimeString("11:00")),
		})

		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestExecute_DayReservation(t *testing.T) {
	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	t.Run("successfully reserves a date range", func(t *testing.T) {
		repo := &fakeReservationRepo{}
		uc := newTestUseCase(daysConfig(t), repo)

		resp, err := uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: start,
			EndDate:   ptr.Ptr(start.AddDate(0, 0, 2)),
		})

		require.NoError(t, err)
		assert.Equal(t, start, resp.StartDate)
		assert.Equal(t, start.AddDate(0, 0, 2), resp.EndDate)
		assert.Nil(t, resp.StartTime)
	})

	t.Run("rejects range in single_day mode", func(t *testing.T) {
		config := daysConfig(t)
		require.NoError(t, config.SetBookingMode(domain.ModeSingleDay))
		uc := newTestUseCase(config, &fakeReservationRepo{})

		_, err := uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: start,
			EndDate:   ptr.Ptr(start.AddDate(0, 0, 1)),
		})

		assert.ErrorIs(t, err, ErrRangeNotAllowed)
	})

	t.Run("ignores dormant range limits in single_day mode", func(t *testing.T) {
		config := daysConfig(t)
		require.NoError(t, config.SetBookingMode(domain.ModeSingleDay))
		config.SetRangeLimitsEnabled(true)
		config.SetRangeLimits(2, 4)
		uc := newTestUseCase(config, &fakeReservationRepo{})

		// Минимум в два дня не должен блокировать бронирование одного дня
		resp, err := uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: start,
		})

		require.NoError(t, err)
		assert.Equal(t, start, resp.StartDate)
		assert.Equal(t, start, resp.EndDate)
	})

	t.Run("enforces custom range limits", func(t *testing.T) {
		config := daysConfig(t)
		config.SetRangeLimitsEnabled(true)
		config.SetRangeLimits(2, 4)
		uc := newTestUseCase(config, &fakeReservationRepo{})

		// Один день короче минимума
		_, err := uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: start,
		})
		assert.ErrorIs(t, err, ErrRangeNotAllowed)

		// Шесть дней длиннее максимума
		_, err = uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: start,
			EndDate:   ptr.Ptr(start.AddDate(0, 0, 5)),
		})
		assert.ErrorIs(t, err, ErrRangeNotAllowed)

		// Три дня в границах
		_, err = uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: start,
			EndDate:   ptr.Ptr(start.AddDate(0, 0, 2)),
		})
		assert.NoError(t, err)
	})

	t.Run("rejects range containing an excluded weekday", func(t *testing.T) {
		config := daysConfig(t)
		require.NoError(t, config.ToggleExcludedWeekday(domain.Tuesday))
		uc := newTestUseCase(config, &fakeReservationRepo{})

		// Понедельник - среда, вторник исключен
		_, err := uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: start,
			EndDate:   ptr.Ptr(start.AddDate(0, 0, 2)),
		})

		assert.ErrorIs(t, err, ErrWeekdayExcluded)
	})

	t.Run("rejects day already taken by an overlapping range", func(t *testing.T) {
		repo := &fakeReservationRepo{}
		uc := newTestUseCase(daysConfig(t), repo)

		_, err := uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: start,
			EndDate:   ptr.Ptr(start.AddDate(0, 0, 2)),
		})
		require.NoError(t, err)

		// Пересечение по последнему дню первого диапазона
		_, err = uc.Execute(context.Background(), &Request{
			UserID:    8,
			ProductID: 1,
			StartDate: start.AddDate(0, 0, 2),
			EndDate:   ptr.Ptr(start.AddDate(0, 0, 4)),
		})
		assert.ErrorIs(t, err, ErrDayNotAvailable)

		// Диапазон сразу после первого свободен
		_, err = uc.Execute(context.Background(), &Request{
			UserID:    8,
			ProductID: 1,
			StartDate: start.AddDate(0, 0, 3),
			EndDate:   ptr.Ptr(start.AddDate(0, 0, 4)),
		})
		assert.NoError(t, err)
	})

	t.Run("rejects startTime for day reservations", func(t *testing.T) {
		uc := newTestUseCase(daysConfig(t), &fakeReservationRepo{})

		_, err := uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: start,
			StartTime: ptr.Ptr(types.TimeString("10:00")),
			EndTime:   ptr.Ptr(types.TimeString("11:00")),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(timeslotConfig(t), &fakeReservationRepo{})

	t.Run("rejects non-positive IDs", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			UserID:    0,
			ProductID: 1,
			StartDate: testNow,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects unpaired slot times", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: testNow,
			StartTime: ptr.Ptr(types.TimeString("10:00")),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects inverted slot times", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			UserID:    7,
			ProductID: 1,
			StartDate: testNow,
			StartTime: ptr.Ptr(types.TimeString("11:00")),
			EndTime:   ptr.Ptr(types.TimeString("10:00")),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
