package shop

import (
	"fmt"
	"strings"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/config"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	shopRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/shop"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Bootstrap creates a new shop together with its admin account. The first
// sign-up of a tenant goes through here; everything else is created with the
// plan defaults and adjusted later from the admin surface.
func (s *DefaultShopService) Bootstrap(name, ownerEmail, ownerName, ownerPassword string) (*models.Shop, *models.User, error) {
	logger := utils.GetLogger()

	name = strings.TrimSpace(name)
	ownerEmail = strings.ToLower(strings.TrimSpace(ownerEmail))
	if name == "" {
		return nil, nil, fmt.Errorf("a shop name is required")
	}
	if ownerEmail == "" || ownerPassword == "" {
		return nil, nil, fmt.Errorf("owner email and password are required")
	}

	existing, err := s.UserRepo.GetByEmail(ownerEmail)
	if err != nil {
		logger.Error("failed to check for existing owner", zap.Error(err))
		return nil, nil, fmt.Errorf("shop creation failed, please try again")
	}
	if existing != nil {
		return nil, nil, fmt.Errorf("a user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(ownerPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash owner password", zap.Error(err))
		return nil, nil, fmt.Errorf("shop creation failed, please try again")
	}

	now := time.Now()
	newShop := &models.Shop{
		ID:           uuid.New().String(),
		Name:         name,
		Plan:         models.PlanFree,
		MaxCustomers: config.AppConfig.FreePlanMaxCustomers,
		Status:       models.ShopActive,
		SoundEnabled: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	owner := &models.User{
		ID:           uuid.New().String(),
		Email:        ownerEmail,
		Name:         strings.TrimSpace(ownerName),
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
		ShopID:       newShop.ID,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	newShop.OwnerID = owner.ID

	if err := s.Repo.Create(newShop); err != nil {
		logger.Error("failed to create shop", zap.Error(err))
		return nil, nil, fmt.Errorf("shop creation failed, please try again")
	}
	if err := s.UserRepo.Create(owner); err != nil {
		logger.Error("failed to create shop owner", zap.Error(err))
		return nil, nil, fmt.Errorf("shop creation failed, please try again")
	}

	settings := &models.ShopSettings{
		ShopID:      newShop.ID,
		OpeningTime: shopRepo.DefaultOpeningTime,
		ClosingTime: shopRepo.DefaultClosingTime,
		UpdatedAt:   now,
	}
	if err := s.Repo.UpsertSettings(settings); err != nil {
		logger.Warn("failed to seed shop settings", zap.String("shopID", newShop.ID), zap.Error(err))
	}

	return newShop, owner, nil
}

func (s *DefaultShopService) GetShop(id string) (*models.Shop, error) {
	shop, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shop: %w", err)
	}
	return shop, nil
}

func (s *DefaultShopService) UpdateShop(shop *models.Shop) error {
	shop.UpdatedAt = time.Now()
	if err := s.Repo.Update(shop); err != nil {
		return fmt.Errorf("failed to update shop: %w", err)
	}
	return nil
}
