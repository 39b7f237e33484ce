package create_appointment

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// fakeRepo хранит записи в памяти и изображает хранилище внутри транзакции
type fakeRepo struct {
	mu           sync.Mutex
	appointments []*domain.Appointment
	nextID       int64
	conflictErr  error
	createErr    error
}

func (f *fakeRepo) GetForConflictCheck(_ context.Context, filter domain.ConflictFilter) ([]*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.conflictErr != nil {
		return nil, f.conflictErr
	}

	var result []*domain.Appointment
	for _, apt := range f.appointments {
		if !types.SameDay(apt.Date, filter.Date) || apt.Status == domain.StatusCancelled {
			continue
		}
		if filter.ProfessionalID != nil {
			if apt.ProfessionalID == nil || *apt.ProfessionalID != *filter.ProfessionalID {
				continue
			}
		} else if apt.ProfessionalID != nil {
			continue
		}
		result = append(result, apt)
	}
	return result, nil
}

func (f *fakeRepo) Create(_ context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.nextID++
	created := *apt
	created.ID = f.nextID
	created.CreatedAt = time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	created.UpdatedAt = created.CreatedAt
	f.appointments = append(f.appointments, &created)
	return &created, nil
}

// fakeTxManager последовательно выполняет переданную функцию:
// сериализуемость обеспечивается реальным хранилищем, в тестах
// достаточно имитации однопоточного исполнения
type fakeTxManager struct {
	beginErr error
	calls    int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.beginErr != nil {
		return f.beginErr
	}
	return fn(ctx)
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

func newTestUseCase(repo *fakeRepo, catalog *fakeCatalog, txMgr *fakeTxManager, now time.Time) *UseCase {
	uc := NewUseCase(repo, catalog, txMgr, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:    100,
		ServiceID: 1,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
		StartTime: "10:00",
	}
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService(30)}, &fakeTxManager{}, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("10:30"), resp.EndTime)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, "Мужская стрижка", resp.ServiceName)
	assert.Equal(t, 1500.0, resp.ServicePrice)
}

func TestExecute_EndTimeCarriesIntoNextHour(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{service: activeService(45)}, &fakeTxManager{}, now)

	req := validRequest()
	req.StartTime = "17:45"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("18:30"), resp.EndTime)
}

func TestExecute_EndTimePastMidnightRejected(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{service: activeService(90)}, &fakeTxManager{}, now)

	req := validRequest()
	req.StartTime = "23:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestExecute_PastDate(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{service: activeService(30)}, &fakeTxManager{}, now)

	req := validRequest()
	req.Date = time.Date(2026, 9, 14, 0, 0, 0, 0, time.Local)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_PastTimeToday(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{service: activeService(30)}, &fakeTxManager{}, now)

	t.Run("earlier today", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "10:00"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrPastTime)
	})

	t.Run("exactly now", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "14:00"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrPastTime)
	})

	t.Run("later today", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "16:00"
		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestExecute_SlotConflict(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService(60)}, &fakeTxManager{}, now)

	first := validRequest()
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	t.Run("same start", func(t *testing.T) {
		req := validRequest()
		req.UserID = 200
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("partial overlap", func(t *testing.T) {
		req := validRequest()
		req.UserID = 200
		req.StartTime = "10:30"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("touching boundary is allowed", func(t *testing.T) {
		req := validRequest()
		req.UserID = 200
		req.StartTime = "11:00"
		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestExecute_SequentialDoubleBooking(t *testing.T) {
	// Два клиента просят один слот: первый создает запись,
	// второй внутри транзакции видит её и получает отказ
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	repo := &fakeRepo{}
	txMgr := &fakeTxManager{}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService(30)}, txMgr, now)

	reqA := validRequest()
	reqB := validRequest()
	reqB.UserID = 200

	_, errA := uc.Execute(context.Background(), reqA)
	_, errB := uc.Execute(context.Background(), reqB)

	require.NoError(t, errA)
	assert.ErrorIs(t, errB, ErrSlotUnavailable)
	assert.Len(t, repo.appointments, 1)
	assert.Equal(t, 2, txMgr.calls)
}

func TestExecute_ConcurrentInsertLoserGetsSlotUnavailable(t *testing.T) {
	// Конкурент вставил запись на то же время между проверкой пересечений
	// и вставкой: уникальный индекс отдает проигравшему занятый слот, не 503
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	repo := &fakeRepo{createErr: appointmentRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService(30)}, &fakeTxManager{}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}

func TestExecute_ProfessionalIsolation(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{service: activeService(30)}, &fakeTxManager{}, now)

	reqA := validRequest()
	reqA.ProfessionalID = ptr.Ptr(int64(1))
	_, err := uc.Execute(context.Background(), reqA)
	require.NoError(t, err)

	// Тот же слот у другого мастера свободен
	reqB := validRequest()
	reqB.UserID = 200
	reqB.ProfessionalID = ptr.Ptr(int64(2))
	_, err = uc.Execute(context.Background(), reqB)
	assert.NoError(t, err)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{err: catalogservice.ErrServiceNotFound}, &fakeTxManager{}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_NotesTooLong(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{service: activeService(30)}, &fakeTxManager{}, now)

	req := validRequest()
	notes := strings.Repeat("a", domain.MaxNotesLength+1)
	req.Notes = &notes

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestExecute_InvalidRequest(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{service: activeService(30)}, &fakeTxManager{}, now)

	t.Run("missing user", func(t *testing.T) {
		req := validRequest()
		req.UserID = 0
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("missing start time", func(t *testing.T) {
		req := validRequest()
		req.StartTime = ""
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("malformed start time", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "9:00"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestExecute_StorageUnavailable(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)

	t.Run("conflict check fails", func(t *testing.T) {
		repo := &fakeRepo{conflictErr: errors.New("connection refused")}
		uc := newTestUseCase(repo, &fakeCatalog{service: activeService(30)}, &fakeTxManager{}, now)
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("insert fails", func(t *testing.T) {
		repo := &fakeRepo{createErr: errors.New("connection refused")}
		uc := newTestUseCase(repo, &fakeCatalog{service: activeService(30)}, &fakeTxManager{}, now)
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("transaction cannot begin", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{service: activeService(30)}, &fakeTxManager{beginErr: errors.New("too many clients")}, now)
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}
