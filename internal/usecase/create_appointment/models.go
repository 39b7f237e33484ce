package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи.
// Время окончания клиентом не передается, оно всегда вычисляется
// из времени начала и длительности услуги.
type Request struct {
	UserID         int64            // ID владельца записи (из заголовка аутентификации)
	ServiceID      int64            // ID услуги
	ProfessionalID *int64           // ID мастера (опционально)
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала, например "10:00"
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID             int64
	UserID         int64
	ServiceID      int64
	ProfessionalID *int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         string

	// Денормализованные данные услуги
	ServiceName  string
	ServicePrice float64

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
