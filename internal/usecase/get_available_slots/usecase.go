package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UseCase use case получения доступных времён для записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogClient   CatalogClient
	schedule        domain.Schedule
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog CatalogClient,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogClient:   catalog,
		schedule:        schedule,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных времён.
// Результат детерминирован для фиксированных входов: повторный вызов
// без изменений в хранилище возвращает идентичный список.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, professional=%v, date=%s",
		req.ServiceID, req.ProfessionalID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу: неактивная или отсутствующая услуга означает отказ клиенту
	service, err := uc.catalogClient.GetActiveService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Для прошедшего календарного дня доступных времён нет:
	// возвращается пустой список, а не ошибка
	if types.DayBefore(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return uc.buildResponse(req, service.DurationMinutes, []types.TimeString{}), nil
	}

	// 5. Получаем существующие записи на дату с фильтром по мастеру
	existing, err := uc.appointmentRepo.GetForConflictCheck(ctx, domain.ConflictFilter{
		Date:           req.Date,
		ProfessionalID: req.ProfessionalID,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrStorageUnavailable, err)
	}

	// 6. Генерируем доступные времена начала
	times, err := generateAvailableTimes(uc.schedule, service.DurationMinutes, req.Date, now, existing)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate times: %v", err)
		return nil, fmt.Errorf("%w: failed to generate times: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d available times for service=%d, date=%s",
		len(times), req.ServiceID, req.Date.Format(domain.DateFormat))

	return uc.buildResponse(req, service.DurationMinutes, times), nil
}

func (uc *UseCase) buildResponse(req *Request, durationMinutes int, times []types.TimeString) *Response {
	return &Response{
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		ProfessionalID:  req.ProfessionalID,
		DurationMinutes: durationMinutes,
		Times:           times,
	}
}
