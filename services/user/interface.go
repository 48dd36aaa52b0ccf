package user

import (
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	shopRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/shop"
	userRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/user"
)

// SignUpInput is the registration payload.
type SignUpInput struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	ReferralCode string `json:"referralCode,omitempty"`
}

// AuthResponse carries the signed token plus the public account fields.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// UserService defines account management operations for one shop tenant.
type UserService interface {
	SignUp(shop *models.Shop, in SignUpInput) (*AuthResponse, error)
	SignIn(shopID, email, password string) (*AuthResponse, error)
	SignOut(userID string) error
	GetUser(id string) (*models.User, error)
	ListUsers(shopID string) ([]models.User, error)
	ListClients(shopID string) ([]models.User, error)
	UpdateProfile(id string, name, email string) (*models.User, error)
	DeleteUser(shopID, id string) error
	SetRole(shopID, id, role string, permissions *models.StaffPermissions) error
	SetEnabled(shopID, id string, enabled bool) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	ShopRepo shopRepo.ShopRepository
}
