package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	catalogClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/catalogservice"
)

// UseCase use case создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogClient   CatalogClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog CatalogClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogClient:   catalog,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка пересечений и вставка выполняются в одной сериализуемой
// транзакции с блокировкой строк дня: последовательность check-then-act
// сама по себе не свободна от гонок, атомарность обеспечивает хранилище.
// Из двух конкурентных запросов на один слот ровно один получает
// ErrSlotUnavailable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, service=%d, professional=%v, date=%s, time=%s",
		req.UserID, req.ServiceID, req.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу
	service, err := uc.catalogClient.GetActiveService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Временная валидация: прошедшая дата или прошедшее время сегодня
	if err := validateNotInPast(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: temporal validation failed: %v", err)
		return nil, err
	}

	// 5. Вычисляем время окончания: начало + длительность услуги,
	// с переносом минут в часы
	endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateAppointment: end time out of day range: %v", err)
		return nil, fmt.Errorf("%w: end time is out of day range: %v", ErrInvalidRequest, err)
	}

	var result *domain.Appointment

	// 6. Проверка пересечений и вставка в сериализуемой транзакции
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем записи дня с блокировкой (FOR UPDATE)
		existing, err := uc.appointmentRepo.GetForConflictCheck(txCtx, domain.ConflictFilter{
			Date:           req.Date,
			ProfessionalID: req.ProfessionalID,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			// Причина сохраняется в цепочке: конфликт сериализации (40001)
			// внутри транзакции должен быть виден менеджеру для повтора
			return fmt.Errorf("%w: failed to get appointments: %w", ErrStorageUnavailable, err)
		}

		// 6.2. Проверяем пересечение с существующими записями
		overlaps, err := hasOverlap(req.StartTime, service.DurationMinutes, existing)
		if err != nil {
			uc.logger.Error("CreateAppointment: overlap check failed: %v", err)
			return fmt.Errorf("%w: overlap check failed: %v", ErrInternal, err)
		}
		if overlaps {
			uc.logger.Warn("CreateAppointment: slot %s-%s on %s is taken",
				req.StartTime, endTime, req.Date.Format(domain.DateFormat))
			return ErrSlotUnavailable
		}

		// 6.3. Создаем запись в статусе scheduled с денормализацией услуги
		apt := &domain.Appointment{
			UserID:         req.UserID,
			ServiceID:      req.ServiceID,
			ProfessionalID: req.ProfessionalID,
			Date:           req.Date,
			StartTime:      req.StartTime,
			EndTime:        endTime,
			Status:         domain.StatusScheduled,
			ServiceName:    service.Name,
			ServicePrice:   service.Price,
			Notes:          req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, apt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				// Конкурент успел вставить запись на то же время после
				// проверки пересечений: для клиента это занятый слот
				uc.logger.Warn("CreateAppointment: slot %s on %s taken concurrently",
					req.StartTime, req.Date.Format(domain.DateFormat))
				return ErrSlotUnavailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrStorageUnavailable, err)
		}

		result = created
		return nil
	})

	if txErr != nil {
		// Бизнес-отказы пробрасываем как есть, отказ самой транзакции
		// (begin/commit) считается недоступностью хранилища
		if isBusinessError(txErr) || errors.Is(txErr, ErrStorageUnavailable) || errors.Is(txErr, ErrInternal) {
			return nil, txErr
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", txErr)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrStorageUnavailable, txErr)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d, %s %s-%s",
		result.ID, result.Date.Format(domain.DateFormat), result.StartTime, result.EndTime)

	return &Response{
		ID:             result.ID,
		UserID:         result.UserID,
		ServiceID:      result.ServiceID,
		ProfessionalID: result.ProfessionalID,
		Date:           result.Date,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		Status:         string(result.Status),
		ServiceName:    result.ServiceName,
		ServicePrice:   result.ServicePrice,
		Notes:          result.Notes,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

func isBusinessError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrServiceNotFound) ||
		errors.Is(err, ErrPastDate) ||
		errors.Is(err, ErrPastTime) ||
		errors.Is(err, ErrSlotUnavailable)
}
