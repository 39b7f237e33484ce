package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// GetUserAppointmentsRequest запрос истории записей пользователя
type GetUserAppointmentsRequest struct {
	UserID   int64
	Status   *string // опциональный фильтр по статусу
	Upcoming bool    // только предстоящие записи (с сегодняшнего дня)
	Limit    uint64  // 0 = без ограничения
}

// AppointmentResponse представление записи для API
type AppointmentResponse struct {
	ID             int64
	UserID         int64
	ServiceID      int64
	ProfessionalID *int64
	Date           time.Time
	StartTime      string
	EndTime        string
	Status         string
	ServiceName    string
	ServicePrice   float64
	Notes          *string
	CancelledAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse
	Total        int
}

// FromDomainAppointment конвертирует доменную модель в представление API
func FromDomainAppointment(apt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             apt.ID,
		UserID:         apt.UserID,
		ServiceID:      apt.ServiceID,
		ProfessionalID: apt.ProfessionalID,
		Date:           apt.Date,
		StartTime:      apt.StartTime.String(),
		EndTime:        apt.EndTime.String(),
		Status:         string(apt.Status),
		ServiceName:    apt.ServiceName,
		ServicePrice:   apt.ServicePrice,
		Notes:          apt.Notes,
		CancelledAt:    apt.CancelledAt,
		CreatedAt:      apt.CreatedAt,
		UpdatedAt:      apt.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список доменных моделей
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, len(appointments))
	for i, apt := range appointments {
		result[i] = FromDomainAppointment(apt)
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}
