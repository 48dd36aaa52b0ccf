package shopRepo

import "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

// ShopRepository defines persistence operations for shop tenants and their
// operational settings.
type ShopRepository interface {
	Create(shop *models.Shop) error
	Update(shop *models.Shop) error
	GetByID(id string) (*models.Shop, error)
	GetByOwner(ownerID string) (*models.Shop, error)
	IncrementCustomerCount(id string, delta int) error
	IncrementBookingCount(id string, delta int) error
	SetPinHash(id, pinHash string) error

	GetSettings(shopID string) (*models.ShopSettings, error)
	UpsertSettings(settings *models.ShopSettings) error

	ListPaymentMethods(shopID string) ([]models.PaymentMethod, error)
	CreatePaymentMethod(pm *models.PaymentMethod) error
	UpdatePaymentMethod(pm *models.PaymentMethod) error
	DeletePaymentMethod(shopID, id string) error
}
