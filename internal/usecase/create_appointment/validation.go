package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidRequest)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidRequest)
	}

	if req.ProfessionalID != nil && *req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidRequest)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidRequest)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidRequest)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidRequest, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidRequest, domain.MaxNotesLength)
	}

	return nil
}

// validateNotInPast проверяет временную допустимость записи.
// Дата сравнивается по календарным дням: полночь сегодняшнего дня
// не считается прошлым. Для записи на сегодня момент начала
// обязан быть строго позже текущего.
func validateNotInPast(date time.Time, startTime types.TimeString, now time.Time) error {
	if types.DayBefore(date, now) {
		return ErrPastDate
	}

	if !types.SameDay(date, now) {
		return nil
	}

	startsAt, err := types.At(date, startTime)
	if err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidRequest, err)
	}

	if !startsAt.After(now) {
		return ErrPastTime
	}

	return nil
}

// hasOverlap проверяет пересечение кандидата [startTime, startTime+duration)
// с существующими записями. Интервалы полуоткрытые, касание границ
// пересечением не считается.
func hasOverlap(startTime types.TimeString, durationMinutes int, existing []*domain.Appointment) (bool, error) {
	candidateStart, err := startTime.Minutes()
	if err != nil {
		return false, err
	}
	candidateEnd := candidateStart + durationMinutes

	for _, apt := range existing {
		if !apt.IsActive() {
			continue
		}

		aptStart, err := apt.StartTime.Minutes()
		if err != nil {
			continue
		}
		aptEnd, err := apt.EndTime.Minutes()
		if err != nil {
			continue
		}

		if candidateStart < aptEnd && candidateEnd > aptStart {
			return true, nil
		}
	}

	return false, nil
}
