package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

type fakeScheduleRepo struct {
	config       *domain.ScheduleConfig
	createCalled bool
	updateCalled bool
	deleteCalled bool
}

func (f *fakeScheduleRepo) Create(_ context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	f.createCalled = true
	config.ID = 1
	f.config = config
	return config, nil
}

func (f *fakeScheduleRepo) GetByProduct(_ context.Context, _ int64) (*domain.ScheduleConfig, error) {
	if f.config == nil {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return f.config, nil
}

func (f *fakeScheduleRepo) Update(_ context.Context, _ int64, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	f.updateCalled = true
	f.config = config
	return config, nil
}

func (f *fakeScheduleRepo) DeleteByProduct(_ context.Context, _ int64) error {
	f.deleteCalled = true
	if f.config == nil {
		return scheduleRepo.ErrScheduleNotFound
	}
	f.config = nil
	return nil
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func managedProduct() *catalogservice.Product {
	return &catalogservice.Product{
		ID:             10,
		Name:           "Коворкинг на Тверской",
		OwnerID:        100,
		ManagerIDs:     []int64{200},
		BookingEnabled: true,
	}
}

func newTestService(repo *fakeScheduleRepo, catalog *fakeCatalogClient) *Service {
	return NewService(repo, catalog, nopLogger{})
}

func TestService_Get_ReturnsDefaultsWhenMissing(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeCatalogClient{product: managedProduct()})

	resp, err := svc.Get(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ProductID)
	assert.Equal(t, string(domain.KindTimeslots), resp.Kind)
	assert.Equal(t, domain.DefaultMaxDaysAhead, resp.Availability.MaxDaysAhead)
	assert.Empty(t, resp.Groups)
	assert.Equal(t, string(domain.ModeSingleDay), resp.BookingMode)
}

func TestService_Update_CreatesScheduleOnFirstUpdate(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := newTestService(repo, &fakeCatalogClient{product: managedProduct()})

	req := &models.UpdateScheduleRequest{
		UserID: 100,
		Groups: &[]models.WeekdayGroupDTO{
			{
				Days: []string{"monday", "tuesday"},
				Slots: []models.TimeIntervalDTO{
					{From: "10:00", To: "11:00"},
					{From: "11:00", To: "12:00"},
				},
			},
		},
	}

	resp, err := svc.Update(context.Background(), 10, req)

	require.NoError(t, err)
	assert.True(t, repo.createCalled)
	assert.False(t, repo.updateCalled)
	require.Len(t, resp.Groups, 1)
	assert.Equal(t, []string{"monday", "tuesday"}, resp.Groups[0].Days)
	assert.Len(t, resp.Groups[0].Slots, 2)
}

func TestService_Update_UpdatesExistingSchedule(t *testing.T) {
	repo := &fakeScheduleRepo{config: domain.NewScheduleConfig(10, domain.KindTimeslots)}
	svc := newTestService(repo, &fakeCatalogClient{product: managedProduct()})

	req := &models.UpdateScheduleRequest{
		UserID: 200, // менеджер, не владелец
		Availability: &models.AvailabilityUpdate{
			MaxDaysAhead: ptr.Ptr(14),
		},
	}

	resp, err := svc.Update(context.Background(), 10, req)

	require.NoError(t, err)
	assert.True(t, repo.updateCalled)
	assert.Equal(t, 14, resp.Availability.MaxDaysAhead)
}

func TestService_Update_RejectsWeekdayConflict(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := newTestService(repo, &fakeCatalogClient{product: managedProduct()})

	req := &models.UpdateScheduleRequest{
		UserID: 100,
		Groups: &[]models.WeekdayGroupDTO{
			{Days: []string{"monday"}, Slots: []models.TimeIntervalDTO{{From: "10:00", To: "11:00"}}},
			{Days: []string{"monday"}, Slots: []models.TimeIntervalDTO{{From: "14:00", To: "15:00"}}},
		},
	}

	_, err := svc.Update(context.Background(), 10, req)

	require.ErrorIs(t, err, ErrDayConflict)
	assert.False(t, repo.createCalled)
}

func TestService_Update_ClampsOutOfRangeValues(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := newTestService(repo, &fakeCatalogClient{product: managedProduct()})

	req := &models.UpdateScheduleRequest{
		UserID: 100,
		Availability: &models.AvailabilityUpdate{
			MaxDaysAhead: ptr.Ptr(100000),
		},
		Quantity: &models.QuantityUpdate{
			Enabled: ptr.Ptr(true),
			PerUnit: ptr.Ptr(0),
		},
	}

	resp, err := svc.Update(context.Background(), 10, req)

	require.NoError(t, err)
	assert.Equal(t, domain.MaxLookaheadDays, resp.Availability.MaxDaysAhead)
	assert.Equal(t, domain.MinQuantityPerUnit, resp.Quantity.PerUnit)
}

func TestService_Update_TogglesExcludedDates(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := newTestService(repo, &fakeCatalogClient{product: managedProduct()})

	req := &models.UpdateScheduleRequest{
		UserID:               100,
		ExcludedDatesEnabled: ptr.Ptr(true),
		ToggleExcludedDates:  []string{"2026-09-10", "2026-09-11", "2026-09-10"},
	}

	resp, err := svc.Update(context.Background(), 10, req)

	require.NoError(t, err)
	assert.True(t, resp.ExcludedDatesEnabled)
	// Повторный тумблер убирает дату
	assert.Equal(t, []string{"2026-09-11"}, resp.ExcludedDates)
}

func TestService_Update_SwitchesToDateRangeMode(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := newTestService(repo, &fakeCatalogClient{product: managedProduct()})

	req := &models.UpdateScheduleRequest{
		UserID:      100,
		Kind:        ptr.Ptr(string(domain.KindDays)),
		BookingMode: ptr.Ptr(string(domain.ModeDateRange)),
		RangeLimits: &models.RangeLimitsUpdate{
			Enabled:       ptr.Ptr(true),
			MinLengthDays: ptr.Ptr(2),
			MaxLengthDays: ptr.Ptr(7),
		},
	}

	resp, err := svc.Update(context.Background(), 10, req)

	require.NoError(t, err)
	assert.Equal(t, string(domain.KindDays), resp.Kind)
	assert.Equal(t, string(domain.ModeDateRange), resp.BookingMode)
	assert.True(t, resp.RangeLimits.Enabled)
	assert.Equal(t, 2, resp.RangeLimits.MinLengthDays)
	assert.Equal(t, 7, resp.RangeLimits.MaxLengthDays)
}

func TestService_Update_AccessDeniedForStranger(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeCatalogClient{product: managedProduct()})

	req := &models.UpdateScheduleRequest{
		UserID: 999,
		Kind:   ptr.Ptr(string(domain.KindDays)),
	}

	_, err := svc.Update(context.Background(), 10, req)

	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Update_ProductNotFound(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeCatalogClient{err: catalogservice.ErrProductNotFound})

	req := &models.UpdateScheduleRequest{
		UserID: 100,
		Kind:   ptr.Ptr(string(domain.KindDays)),
	}

	_, err := svc.Update(context.Background(), 10, req)

	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestService_Update_InvalidKind(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeCatalogClient{product: managedProduct()})

	req := &models.UpdateScheduleRequest{
		UserID: 100,
		Kind:   ptr.Ptr("hourly"),
	}

	_, err := svc.Update(context.Background(), 10, req)

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete_Success(t *testing.T) {
	repo := &fakeScheduleRepo{config: domain.NewScheduleConfig(10, domain.KindTimeslots)}
	svc := newTestService(repo, &fakeCatalogClient{product: managedProduct()})

	err := svc.Delete(context.Background(), 10, 100)

	require.NoError(t, err)
	assert.True(t, repo.deleteCalled)
	assert.Nil(t, repo.config)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeCatalogClient{product: managedProduct()})

	err := svc.Delete(context.Background(), 10, 100)

	require.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestService_Delete_AccessDenied(t *testing.T) {
	repo := &fakeScheduleRepo{config: domain.NewScheduleConfig(10, domain.KindTimeslots)}
	svc := newTestService(repo, &fakeCatalogClient{product: managedProduct()})

	err := svc.Delete(context.Background(), 10, 999)

	require.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.deleteCalled)
}

func TestService_PreviewSlots_GeneratesGrid(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeCatalogClient{product: managedProduct()})

	resp, err := svc.PreviewSlots(&models.PreviewSlotsRequest{
		From:          "09:00",
		To:            "12:00",
		LengthMinutes: 60,
		GapMinutes:    30,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, models.TimeIntervalDTO{From: "09:00", To: "10:00"}, resp.Slots[0])
	assert.Equal(t, models.TimeIntervalDTO{From: "10:30", To: "11:30"}, resp.Slots[1])
}

func TestService_PreviewSlots_RespectsMaxCount(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeCatalogClient{product: managedProduct()})

	resp, err := svc.PreviewSlots(&models.PreviewSlotsRequest{
		From:          "00:00",
		To:            "23:59",
		LengthMinutes: 30,
		GapMinutes:    0,
		MaxCount:      5,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 5)
}

func TestService_PreviewSlots_InvalidTime(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeCatalogClient{product: managedProduct()})

	_, err := svc.PreviewSlots(&models.PreviewSlotsRequest{
		From:          "9am",
		To:            "12:00",
		LengthMinutes: 60,
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}
