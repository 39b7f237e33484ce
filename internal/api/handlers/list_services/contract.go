package list_services

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/integrations/catalogservice"
)

type CatalogClient interface {
	ListActiveServices(ctx context.Context) ([]catalogservice.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
