package get_service

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/integrations/catalogservice"
)

type CatalogClient interface {
	GetActiveService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
