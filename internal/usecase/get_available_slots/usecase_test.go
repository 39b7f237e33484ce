package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeRepo struct {
	appointments []*domain.Appointment
	err          error
	lastFilter   *domain.ConflictFilter
	calls        int
}

func (f *fakeRepo) GetForConflictCheck(_ context.Context, filter domain.ConflictFilter) ([]*domain.Appointment, error) {
	f.calls++
	f.lastFilter = &filter
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type fakeCatalog struct {
	service *catalogservice.Service
	err     error
}

func (f *fakeCatalog) GetActiveService(_ context.Context, _ int64) (*catalogservice.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type fixedClock struct {
	now time.Time
}

func (f *fixedClock) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeService(durationMinutes int) *catalogservice.Service {
	return &catalogservice.Service{
		ID:              1,
		Name:            "Мужская стрижка",
		DurationMinutes: durationMinutes,
		Price:           1500,
		Active:          true,
	}
}

func scheduled(start, end types.TimeString) *domain.Appointment {
	return &domain.Appointment{
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusScheduled,
	}
}

func newTestUseCase(repo *fakeRepo, catalog *fakeCatalog, now time.Time) *UseCase {
	uc := NewUseCase(repo, catalog, domain.DefaultSchedule(), nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func timesAsStrings(times []types.TimeString) []string {
	out := make([]string, len(times))
	for i, t := range times {
		out[i] = t.String()
	}
	return out
}

func TestExecute_EmptyDayFullGrid(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{service: activeService(30)}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	// 08:00 .. 17:30 с шагом 30 минут
	require.Len(t, resp.Times, 20)
	assert.Equal(t, types.TimeString("08:00"), resp.Times[0])
	assert.Equal(t, types.TimeString("17:30"), resp.Times[19])
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestExecute_BookedSlotExcluded(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	repo := &fakeRepo{appointments: []*domain.Appointment{
		scheduled("10:00", "10:30"),
	}}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService(30)}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	got := timesAsStrings(resp.Times)
	assert.NotContains(t, got, "10:00")
	assert.Contains(t, got, "09:30")
	assert.Contains(t, got, "10:30")
	assert.Len(t, got, 19)
}

func TestExecute_BoundaryTouchingIsNotConflict(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	repo := &fakeRepo{appointments: []*domain.Appointment{
		scheduled("10:00", "11:00"),
	}}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService(60)}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	got := timesAsStrings(resp.Times)
	// Интервалы полуоткрытые: 09:00-10:00 и 11:00-12:00 не конфликтуют
	assert.Contains(t, got, "09:00")
	assert.Contains(t, got, "11:00")
	// Любое пересечение с 10:00-11:00 исключается
	assert.NotContains(t, got, "09:30")
	assert.NotContains(t, got, "10:00")
	assert.NotContains(t, got, "10:30")
}

func TestExecute_TodayPastSlotsExcluded(t *testing.T) {
	// Сегодня 14:03, запас 5 минут: слоты до 14:08 включительно недоступны
	now := time.Date(2026, 9, 15, 14, 3, 0, 0, time.Local)
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{service: activeService(30)}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	got := timesAsStrings(resp.Times)
	assert.NotContains(t, got, "08:00")
	assert.NotContains(t, got, "14:00")
	assert.Contains(t, got, "14:30")
	assert.Equal(t, "14:30", got[0])
}

func TestExecute_LongServiceFitsBeforeClose(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{service: activeService(90)}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	got := timesAsStrings(resp.Times)
	// Последний кандидат, умещающийся до 18:00, начинается в 16:30
	assert.Equal(t, "16:30", got[len(got)-1])
	assert.NotContains(t, got, "17:00")
}

func TestExecute_PastDateReturnsEmptyList(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.Local)
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService(30)}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Times)
	assert.NotNil(t, resp.Times)
	// До хранилища запрос не доходит
	assert.Zero(t, repo.calls)
}

func TestExecute_Deterministic(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	repo := &fakeRepo{appointments: []*domain.Appointment{
		scheduled("09:00", "09:30"),
		scheduled("13:00", "14:00"),
	}}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService(30)}, now)

	req := &Request{
		ServiceID: 1,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
	}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Times, second.Times)
}

func TestExecute_CancelledAppointmentIgnored(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	cancelled := scheduled("10:00", "10:30")
	cancelled.Status = domain.StatusCancelled
	repo := &fakeRepo{appointments: []*domain.Appointment{cancelled}}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService(30)}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	assert.Contains(t, timesAsStrings(resp.Times), "10:00")
}

func TestExecute_ProfessionalFilterPassedToStorage(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService(30)}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID:      1,
		ProfessionalID: ptr.Ptr(int64(7)),
		Date:           time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter)
	require.NotNil(t, repo.lastFilter.ProfessionalID)
	assert.Equal(t, int64(7), *repo.lastFilter.ProfessionalID)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{err: catalogservice.ErrServiceNotFound}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 42,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_StorageUnavailable(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	repo := &fakeRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService(30)}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
	})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{service: activeService(30)}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 0,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ServiceID:      1,
		ProfessionalID: ptr.Ptr(int64(-1)),
		Date:           time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
