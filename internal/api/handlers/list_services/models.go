package list_services

import "github.com/m04kA/SMC-AppointmentService/internal/integrations/catalogservice"

// ServiceItem элемент списка услуг
type ServiceItem struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ServiceListResponse HTTP response model
type ServiceListResponse struct {
	Services []ServiceItem `json:"services"`
	Total    int           `json:"total"`
}

// FromCatalogServices конвертирует услуги каталога в HTTP response
func FromCatalogServices(services []catalogservice.Service) *ServiceListResponse {
	items := make([]ServiceItem, len(services))
	for i, svc := range services {
		items[i] = ServiceItem{
			ID:              svc.ID,
			Name:            svc.Name,
			Description:     svc.Description,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		}
	}

	return &ServiceListResponse{
		Services: items,
		Total:    len(items),
	}
}
