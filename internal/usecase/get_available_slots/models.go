package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступных времён начала
type Request struct {
	ServiceID      int64     // ID услуги
	ProfessionalID *int64    // ID мастера (опционально)
	Date           time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных времён начала.
// Times упорядочены по возрастанию, без дубликатов.
type Response struct {
	Date            time.Time
	ServiceID       int64
	ProfessionalID  *int64
	DurationMinutes int
	Times           []types.TimeString
}
