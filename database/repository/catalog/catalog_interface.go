package catalogRepo

import "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

// CatalogRepository defines persistence operations for the shop's bookable
// services and its barbers.
type CatalogRepository interface {
	CreateService(svc *models.Service) error
	UpdateService(svc *models.Service) error
	DeleteService(shopID, id string) error
	GetService(shopID, id string) (*models.Service, error)
	GetServices(shopID string) ([]models.Service, error)
	GetEnabledServices(shopID string) ([]models.Service, error)
	SetServiceEnabled(shopID, id string, enabled bool) error

	CreateBarber(b *models.Barber) error
	UpdateBarber(b *models.Barber) error
	DeleteBarber(shopID, id string) error
	GetBarbers(shopID string) ([]models.Barber, error)
}
