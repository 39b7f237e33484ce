package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// busyInterval занятый интервал [start, end) в минутах с начала суток
type busyInterval struct {
	start int
	end   int
}

// generateAvailableTimes строит упорядоченный список доступных времён начала
// для услуги длительностью durationMinutes на календарный день date.
//
// Кандидаты перебираются в минутах с начала суток от открытия до
// закрытия минус длительность (включительно) с шагом schedule.SlotStepMinutes.
// Кандидат отбрасывается, если:
//   - date сегодня и момент начала не позже now + PastSlotMargin;
//   - интервал [start, start+duration) пересекается с существующей записью.
func generateAvailableTimes(
	schedule domain.Schedule,
	durationMinutes int,
	date time.Time,
	now time.Time,
	existing []*domain.Appointment,
) ([]types.TimeString, error) {
	openMinutes, err := schedule.OpenTime.Minutes()
	if err != nil {
		return nil, err
	}

	closeMinutes, err := schedule.CloseTime.Minutes()
	if err != nil {
		return nil, err
	}

	busy := collectBusyIntervals(existing)

	isToday := types.SameDay(date, now)
	cutoff := now.Add(schedule.PastSlotMargin)

	times := make([]types.TimeString, 0)

	for minutes := openMinutes; minutes+durationMinutes <= closeMinutes; minutes += schedule.SlotStepMinutes {
		if isToday {
			slotInstant := time.Date(date.Year(), date.Month(), date.Day(),
				minutes/60, minutes%60, 0, 0, date.Location())
			if !slotInstant.After(cutoff) {
				continue
			}
		}

		if overlapsAny(minutes, minutes+durationMinutes, busy) {
			continue
		}

		slot, err := types.NewTimeStringFromMinutes(minutes)
		if err != nil {
			return nil, err
		}
		times = append(times, slot)
	}

	return times, nil
}

// collectBusyIntervals переводит существующие записи в занятые интервалы.
// Отмененные записи не участвуют в проверке пересечений.
func collectBusyIntervals(appointments []*domain.Appointment) []busyInterval {
	busy := make([]busyInterval, 0, len(appointments))

	for _, apt := range appointments {
		if !apt.IsActive() {
			continue
		}

		start, err := apt.StartTime.Minutes()
		if err != nil {
			// Запись с некорректным временем в хранилище пропускается
			continue
		}

		end, err := apt.EndTime.Minutes()
		if err != nil {
			continue
		}

		busy = append(busy, busyInterval{start: start, end: end})
	}

	return busy
}

// overlapsAny проверяет пересечение интервала [start, end) с занятыми интервалами.
// Интервалы полуоткрытые, касание границ пересечением не считается:
// запись, заканчивающаяся в 10:00, не конфликтует с записью, начинающейся в 10:00.
func overlapsAny(start, end int, busy []busyInterval) bool {
	for _, b := range busy {
		if start < b.end && end > b.start {
			return true
		}
	}
	return false
}
