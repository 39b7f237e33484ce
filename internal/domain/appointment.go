package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	// StatusScheduled запись создана и ожидает визита
	StatusScheduled AppointmentStatus = "scheduled"
	// StatusCompleted визит состоялся (статус проставляется оператором)
	StatusCompleted AppointmentStatus = "completed"
	// StatusCancelled запись отменена; переход необратим
	StatusCancelled AppointmentStatus = "cancelled"
)

// ParseStatus разбирает статус записи из строки
func ParseStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}

// Appointment запись клиента на услугу.
// Date хранит календарный день (полночь локального времени),
// StartTime и EndTime хранят время суток "HH:MM".
// EndTime всегда равен StartTime + длительность услуги и вычисляется
// сервисом, а не принимается от клиента.
type Appointment struct {
	ID             int64
	UserID         int64
	ServiceID      int64
	ProfessionalID *int64 // nil = мастер не назначен
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         AppointmentStatus

	// Денормализованные данные услуги для истории
	ServiceName  string
	ServicePrice float64

	Notes       *string
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если запись участвует в проверке пересечений
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsCancelled возвращает true для отмененной записи
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled возвращает true, если запись может быть отменена
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// StartsAt возвращает момент начала записи (календарный день + время начала)
func (a *Appointment) StartsAt() (time.Time, error) {
	return types.At(a.Date, a.StartTime)
}

// UserAppointmentsFilter фильтр истории записей пользователя
type UserAppointmentsFilter struct {
	UserID       int64
	Status       *AppointmentStatus // опционально
	UpcomingFrom *time.Time         // только записи начиная с этого календарного дня
	Limit        uint64             // 0 = без ограничения
}

// ConflictFilter параметры выборки записей для проверки пересечений.
// При заданном ProfessionalID выбираются записи этого мастера,
// при nil выбираются записи без назначенного мастера.
type ConflictFilter struct {
	Date           time.Time
	ProfessionalID *int64
}
