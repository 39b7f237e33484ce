package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Schedule рабочий график и временные политики бизнеса.
// Единый интервал рабочих часов на все дни, без вариаций по мастерам.
type Schedule struct {
	OpenTime  types.TimeString
	CloseTime types.TimeString

	// SlotStepMinutes шаг сетки слотов
	SlotStepMinutes int

	// PastSlotMargin запас от текущего момента: слот на сегодня,
	// начинающийся не позже now+PastSlotMargin, не предлагается
	PastSlotMargin time.Duration

	// MinCancelNotice минимальное время до начала записи,
	// при котором ещё разрешена отмена
	MinCancelNotice time.Duration
}

// NewSchedule создает график с валидацией параметров
func NewSchedule(openTime, closeTime string, slotStepMinutes, pastMarginMinutes, minCancelNoticeHours int) (Schedule, error) {
	open, err := types.NewTimeStringFromString(openTime)
	if err != nil {
		return Schedule{}, fmt.Errorf("domain: invalid schedule open time: %w", err)
	}

	closeTS, err := types.NewTimeStringFromString(closeTime)
	if err != nil {
		return Schedule{}, fmt.Errorf("domain: invalid schedule close time: %w", err)
	}

	if !open.IsBefore(closeTS) {
		return Schedule{}, fmt.Errorf("domain: schedule open time %s must be before close time %s", open, closeTS)
	}

	if slotStepMinutes <= 0 {
		return Schedule{}, fmt.Errorf("domain: slot step must be positive, got %d", slotStepMinutes)
	}

	if pastMarginMinutes < 0 {
		return Schedule{}, fmt.Errorf("domain: past slot margin must be non-negative, got %d", pastMarginMinutes)
	}

	if minCancelNoticeHours < 0 {
		return Schedule{}, fmt.Errorf("domain: min cancel notice must be non-negative, got %d", minCancelNoticeHours)
	}

	return Schedule{
		OpenTime:        open,
		CloseTime:       closeTS,
		SlotStepMinutes: slotStepMinutes,
		PastSlotMargin:  time.Duration(pastMarginMinutes) * time.Minute,
		MinCancelNotice: time.Duration(minCancelNoticeHours) * time.Hour,
	}, nil
}

// DefaultSchedule возвращает график по умолчанию (08:00–18:00, шаг 30 минут)
func DefaultSchedule() Schedule {
	schedule, err := NewSchedule(
		DefaultOpenTime,
		DefaultCloseTime,
		DefaultSlotStepMinutes,
		DefaultPastSlotMarginMinutes,
		DefaultMinCancelNoticeHours,
	)
	if err != nil {
		// Константы по умолчанию корректны, сюда попасть невозможно
		panic(err)
	}
	return schedule
}
