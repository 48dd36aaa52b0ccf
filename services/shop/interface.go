// Package shop manages the tenant itself: bootstrap, operating hours and
// program settings, the admin PIN, payment methods and currency display.
package shop

import (
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	shopRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/shop"
	userRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/user"
)

// ShopService defines tenant management operations.
type ShopService interface {
	Bootstrap(name, ownerEmail, ownerName, ownerPassword string) (*models.Shop, *models.User, error)
	GetShop(id string) (*models.Shop, error)
	UpdateShop(shop *models.Shop) error

	GetSettings(shopID string) (*models.ShopSettings, error)
	UpdateSettings(shopID string, settings *models.ShopSettings) (*models.ShopSettings, error)

	SetPin(shopID, pin string) error
	VerifyPin(shopID, pin string) error

	ListPaymentMethods(shopID string) ([]models.PaymentMethod, error)
	AddPaymentMethod(shopID string, pm models.PaymentMethod) (*models.PaymentMethod, error)
	UpdatePaymentMethod(shopID string, pm models.PaymentMethod) error
	RemovePaymentMethod(shopID, id string) error

	ConvertPrice(shopID string, amount float64, toCurrency string) (float64, error)
}

// DefaultShopService is the production implementation.
type DefaultShopService struct {
	Repo     shopRepo.ShopRepository
	UserRepo userRepo.UserRepository
}
