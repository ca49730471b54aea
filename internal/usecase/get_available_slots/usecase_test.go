package get_available_slots

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
}

func (f *fakeCatalogClient) GetProduct(_ context.Context, _ int64) (*catalogservice.Product, error) {
	if f.product == nil {
		return nil, catalogservice.ErrProductNotFound
	}
	return f.product, nil
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

func testConfig(t *testing.T) *domain.ScheduleConfig {
	t.Helper()
	config := domain.NewScheduleConfig(1, domain.KindTimeslots)
	config.Availability.MaxDaysAhead = 30

	index := config.AddGroup()
	require.NoError(t, config.SetGroupDays(index, []domain.Weekday{domain.Friday}))
	require.NoError(t, config.SetGroupSlots(index, []domain.TimeInterval{
		interval("09:00", "10:00"),
		interval("10:00", "11:00"),
		interval("11:00", "12:00"),
	}))
	return config
}

func newTestUseCase(config *domain.ScheduleConfig, repo *fakeReservationRepo) *UseCase {
	uc := NewUseCase(
		repo,
		&fakeScheduleRepo{config: config},
		&fakeCatalogClient{product: &catalogservice.Product{ID: 1, BookingEnabled: true}},
		nopLogger{},
	)
	uc.timeProvider = &fixedClock{t: testNow}
	return uc
}

func TestExecute(t *testing.T) {
	// Пятница через неделю
	date := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	t.Run("returns all slots of the day group", func(t *testing.T) {
		uc := newTestUseCase(testConfig(t), &fakeReservationRepo{})

		resp, err := uc.Execute(context.Background(), &Request{ProductID: 1, Date: date})

		require.NoError(t, err)
		require.Len(t, resp.Slots, 3)
		assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
		assert.Equal(t, 60, resp.Slots[0].DurationMinutes)
		assert.Equal(t, 1, resp.Slots[0].AvailableSpots)
		assert.Equal(t, 1, resp.Slots[0].TotalSpots)
	})

	t.Run("reservation takes a spot from the overlapping slot only", func(t *testing.T) {
		repo := &fakeReservationRepo{reservations: []*domain.Reservation{{
			ID:              1,
			ProductID:       1,
			UserID:          7,
			StartDate:       date,
			EndDate:         date,
			StartTime:       ptr.Ptr(types.TimeString("10:00")),
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
		}}}
		uc := newTestUseCase(testConfig(t), repo)

		resp, err := uc.Execute(context.Background(), &Request{ProductID: 1, Date: date})

		require.NoError(t, err)
		require.Len(t, resp.Slots, 3)
		assert.Equal(t, 1, resp.Slots[0].AvailableSpots)
		assert.Equal(t, 0, resp.Slots[1].AvailableSpots)
		assert.Equal(t, 1, resp.Slots[2].AvailableSpots)
	})

	t.Run("cancelled reservation does not take a spot", func(t *testing.T) {
		repo := &fakeReservationRepo{reservations: []*domain.Reservation{{
			ID:              1,
			ProductID:       1,
			StartDate:       date,
			EndDate:         date,
			StartTime:       ptr.Ptr(types.TimeString("10:00")),
			DurationMinutes: 60,
			Status:          domain.StatusCancelledByUser,
		}}}
		uc := newTestUseCase(testConfig(t), repo)

		resp, err := uc.Execute(context.Background(), &Request{ProductID: 1, Date: date})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Slots[1].AvailableSpots)
	})

	t.Run("hour buffer hides slots starting before earliest", func(t *testing.T) {
		config := testConfig(t)
		config.Availability.Buffer = domain.BufferPeriod{Amount: 1, Unit: domain.BufferHours}
		uc := newTestUseCase(config, &fakeReservationRepo{})

		// Сегодняшняя пятница: now = 10:00, earliest = 11:00
		resp, err := uc.Execute(context.Background(), &Request{ProductID: 1, Date: testNow})

		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, types.TimeString("11:00"), resp.Slots[0].StartTime)
	})

	t.Run("empty result for unassigned weekday", func(t *testing.T) {
		uc := newTestUseCase(testConfig(t), &fakeReservationRepo{})

		// Суббота
		resp, err := uc.Execute(context.Background(), &Request{
			ProductID: 1,
			Date:      time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		})

		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("empty result for excluded date", func(t *testing.T) {
		config := testConfig(t)
		config.SetExcludedDatesEnabled(true)
		require.NoError(t, config.ToggleExcludedDate(types.NewDateString(date)))
		uc := newTestUseCase(config, &fakeReservationRepo{})

		resp, err := uc.Execute(context.Background(), &Request{ProductID: 1, Date: date})

		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("rejects day-based schedule", func(t *testing.T) {
		uc := newTestUseCase(domain.NewScheduleConfig(1, domain.KindDays), &fakeReservationRepo{})

		_, err := uc.Execute(context.Background(), &Request{ProductID: 1, Date: date})

		assert.ErrorIs(t, err, ErrWrongScheduleKind)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		uc := newTestUseCase(testConfig(t), &fakeReservationRepo{})
		uc.catalogClient = &fakeCatalogClient{}

		_, err := uc.Execute(context.Background(), &Request{ProductID: 404, Date: date})

		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
