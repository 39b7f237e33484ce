package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Service сервис для работы с существующими записями:
// чтение, отмена и удаление с временными политиками
type Service struct {
	appointmentRepo AppointmentRepository
	schedule        domain.Schedule
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	repo AppointmentRepository,
	schedule domain.Schedule,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: repo,
		schedule:        schedule,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись по ID.
// Чужая запись неотличима от отсутствующей: в обоих случаях not found.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	apt, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(apt), nil
}

// GetUserAppointments получает историю записей пользователя.
// Фильтр Upcoming отбирает записи с сегодняшнего календарного дня.
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: user=%d, status=%v, upcoming=%v", req.UserID, req.Status, req.Upcoming)

	filter := domain.UserAppointmentsFilter{
		UserID: req.UserID,
		Limit:  req.Limit,
	}

	if req.Status != nil {
		status, ok := domain.ParseStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetUserAppointments: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	if req.Upcoming {
		today := types.DayStart(s.timeProvider.Now())
		filter.UpcomingFrom = &today
	}

	appointments, err := s.appointmentRepo.GetByUser(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("GetUserAppointments: fetched %d appointments for user=%d", len(appointments), req.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись пользователя.
// Разрешен единственный переход scheduled -> cancelled, и только если
// до начала записи осталось не меньше минимального времени отмены.
func (s *Service) Cancel(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", id, userID)

	apt, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if !apt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, apt.Status)
		return nil, ErrAlreadyCancelled
	}

	startsAt, err := apt.StartsAt()
	if err != nil {
		s.logger.Error("Cancel: invalid start time for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: invalid appointment start time: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	if startsAt.Sub(now) < s.schedule.MinCancelNotice {
		s.logger.Warn("Cancel: window expired for appointment id=%d, starts at %s", id, startsAt)
		return nil, ErrCancellationTooLate
	}

	if err := s.appointmentRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			// Запись сменила статус между чтением и отменой
			s.logger.Warn("Cancel: appointment id=%d lost scheduled status during cancellation", id)
			return nil, ErrAlreadyCancelled
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrStorageUnavailable, err)
	}

	updated, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: failed to reload appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - reload error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("Cancel: appointment id=%d cancelled", id)
	return models.FromDomainAppointment(updated), nil
}

// Delete физически удаляет запись пользователя.
// Разрешено только для записей, которые больше не являются активными:
// отмененных либо с уже прошедшим моментом начала. Для будущей
// активной записи следует использовать отмену.
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting appointment id=%d by user=%d", id, userID)

	apt, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	startsAt, err := apt.StartsAt()
	if err != nil {
		s.logger.Error("Delete: invalid start time for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: invalid appointment start time: %v", ErrInternal, err)
	}

	isPast := startsAt.Before(s.timeProvider.Now())
	if !isPast && !apt.IsCancelled() {
		s.logger.Warn("Delete: appointment id=%d is still active, deletion not allowed", id)
		return ErrDeletionNotAllowed
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("Delete: appointment id=%d deleted", id)
	return nil
}

// getOwned получает запись и проверяет владельца
func (s *Service) getOwned(ctx context.Context, id int64, userID int64) (*domain.Appointment, error) {
	apt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("getOwned: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("getOwned: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrStorageUnavailable, err)
	}

	if apt.UserID != userID {
		s.logger.Warn("getOwned: appointment id=%d belongs to another user", id)
		return nil, ErrAppointmentNotFound
	}

	return apt, nil
}
