package get_user_appointments

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// AppointmentItem элемент списка записей
type AppointmentItem struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"userId"`
	ServiceID      int64   `json:"serviceId"`
	ProfessionalID *int64  `json:"professionalId,omitempty"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Status         string  `json:"status"`
	ServiceName    string  `json:"serviceName"`
	ServicePrice   float64 `json:"servicePrice"`
	Notes          *string `json:"notes,omitempty"`
	CancelledAt    *string `json:"cancelledAt,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// AppointmentListResponse HTTP response model
type AppointmentListResponse struct {
	Appointments []AppointmentItem `json:"appointments"`
	Total        int               `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentListResponse) *AppointmentListResponse {
	items := make([]AppointmentItem, len(resp.Appointments))
	for i, apt := range resp.Appointments {
		var cancelledAt *string
		if apt.CancelledAt != nil {
			formatted := apt.CancelledAt.Format(time.RFC3339)
			cancelledAt = &formatted
		}

		items[i] = AppointmentItem{
			ID:             apt.ID,
			UserID:         apt.UserID,
			ServiceID:      apt.ServiceID,
			ProfessionalID: apt.ProfessionalID,
			Date:           apt.Date.Format(domain.DateFormat),
			StartTime:      apt.StartTime,
			EndTime:        apt.EndTime,
			Status:         apt.Status,
			ServiceName:    apt.ServiceName,
			ServicePrice:   apt.ServicePrice,
			Notes:          apt.Notes,
			CancelledAt:    cancelledAt,
			CreatedAt:      apt.CreatedAt.Format(time.RFC3339),
			UpdatedAt:      apt.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &AppointmentListResponse{
		Appointments: items,
		Total:        resp.Total,
	}
}
