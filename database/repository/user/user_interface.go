package userRepo

import (
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	GetByShop(shopID string) ([]models.User, error)
	GetClientsByShop(shopID string) ([]models.User, error)
	GetByReferralCode(shopID, code string) (*models.User, error)
	GetByTokenHash(tokenHash string) (*models.User, error)
	SetTokenHash(id, tokenHash string) error
	SetRole(id, role string, permissions *models.StaffPermissions) error
	SetEnabled(id string, enabled bool) error
}
