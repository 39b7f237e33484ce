package get_available_slots

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	Date            string   `json:"date"`
	ServiceID       int64    `json:"serviceId"`
	ProfessionalID  *int64   `json:"professionalId,omitempty"`
	DurationMinutes int      `json:"durationMinutes"`
	AvailableTimes  []string `json:"availableTimes"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(dateStr string, serviceID int64, professionalID *int64) (*getAvailableSlots.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID:      serviceID,
		ProfessionalID: professionalID,
		Date:           date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableTimesResponse {
	times := make([]string, len(resp.Times))
	for i, t := range resp.Times {
		times[i] = t.String()
	}

	return &AvailableTimesResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceID:       resp.ServiceID,
		ProfessionalID:  resp.ProfessionalID,
		DurationMinutes: resp.DurationMinutes,
		AvailableTimes:  times,
	}
}
