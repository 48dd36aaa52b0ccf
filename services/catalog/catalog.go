// Package catalog manages the shop's bookable services and barber roster.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	catalogRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/catalog"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService defines catalogue and roster management operations.
type CatalogService interface {
	CreateService(shopID string, svc models.Service) (*models.Service, error)
	UpdateService(shopID string, svc models.Service) (*models.Service, error)
	DeleteService(shopID, id string) error
	SetServiceEnabled(shopID, id string, enabled bool) error
	ListServices(shopID string, enabledOnly bool) ([]models.Service, error)

	CreateBarber(shopID string, b models.Barber) (*models.Barber, error)
	UpdateBarber(shopID string, b models.Barber) error
	DeleteBarber(shopID, id string) error
	ListBarbers(shopID string) ([]models.Barber, error)

	SeedDefaults(shopID string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

func validateService(svc *models.Service) error {
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return fmt.Errorf("a service name is required")
	}
	if svc.Price <= 0 {
		return fmt.Errorf("the price must be positive")
	}
	if svc.DiscountedPrice < 0 {
		return fmt.Errorf("the discounted price cannot be negative")
	}
	if svc.DiscountedPrice >= svc.Price && svc.DiscountedPrice != 0 {
		return fmt.Errorf("the discounted price must be below the base price")
	}
	if svc.Duration <= 0 {
		return fmt.Errorf("the duration must be a positive number of minutes")
	}
	if svc.MaxQuantity < 0 {
		return fmt.Errorf("the maximum quantity cannot be negative")
	}
	return nil
}

func (s *DefaultCatalogService) CreateService(shopID string, svc models.Service) (*models.Service, error) {
	if err := validateService(&svc); err != nil {
		return nil, err
	}
	now := time.Now()
	svc.ID = uuid.New().String()
	svc.ShopID = shopID
	svc.Enabled = true
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if err := s.Repo.CreateService(&svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &svc, nil
}

func (s *DefaultCatalogService) UpdateService(shopID string, svc models.Service) (*models.Service, error) {
	if err := validateService(&svc); err != nil {
		return nil, err
	}
	existing, err := s.Repo.GetService(shopID, svc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	svc.ShopID = shopID
	svc.Enabled = existing.Enabled
	svc.CreatedAt = existing.CreatedAt
	svc.UpdatedAt = time.Now()
	if err := s.Repo.UpdateService(&svc); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return &svc, nil
}

func (s *DefaultCatalogService) DeleteService(shopID, id string) error {
	if err := s.Repo.DeleteService(shopID, id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) SetServiceEnabled(shopID, id string, enabled bool) error {
	if err := s.Repo.SetServiceEnabled(shopID, id, enabled); err != nil {
		return fmt.Errorf("failed to toggle service: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) ListServices(shopID string, enabledOnly bool) ([]models.Service, error) {
	if enabledOnly {
		return s.Repo.GetEnabledServices(shopID)
	}
	return s.Repo.GetServices(shopID)
}

func (s *DefaultCatalogService) CreateBarber(shopID string, b models.Barber) (*models.Barber, error) {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return nil, fmt.Errorf("a barber name is required")
	}
	b.ID = uuid.New().String()
	b.ShopID = shopID
	b.CreatedAt = time.Now()
	if err := s.Repo.CreateBarber(&b); err != nil {
		return nil, fmt.Errorf("failed to create barber: %w", err)
	}
	return &b, nil
}

func (s *DefaultCatalogService) UpdateBarber(shopID string, b models.Barber) error {
	b.ShopID = shopID
	if err := s.Repo.UpdateBarber(&b); err != nil {
		return fmt.Errorf("failed to update barber: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) DeleteBarber(shopID, id string) error {
	if err := s.Repo.DeleteBarber(shopID, id); err != nil {
		return fmt.Errorf("failed to delete barber: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) ListBarbers(shopID string) ([]models.Barber, error) {
	return s.Repo.GetBarbers(shopID)
}

// SeedDefaults loads the starter catalogue into a freshly created shop so
// the booking page is usable before the admin customises anything.
func (s *DefaultCatalogService) SeedDefaults(shopID string) error {
	existing, err := s.Repo.GetServices(shopID)
	if err != nil {
		return fmt.Errorf("failed to check existing catalogue: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []models.Service{
		{Name: "Haircut", Price: 25, Duration: 30},
		{Name: "Beard Trim", Price: 15, Duration: 30},
		{Name: "Hot Towel Shave", Price: 20, Duration: 30},
		{Name: "Haircut & Beard", Price: 35, Duration: 60, IsPackage: true},
		{Name: "Kids Haircut", Price: 18, Duration: 30},
	}
	now := time.Now()
	for i := range defaults {
		svc := defaults[i]
		svc.ID = uuid.New().String()
		svc.ShopID = shopID
		svc.Enabled = true
		svc.CreatedAt = now
		svc.UpdatedAt = now
		if err := s.Repo.CreateService(&svc); err != nil {
			utils.GetLogger().Warn("failed to seed default service",
				zap.String("shopID", shopID), zap.String("name", svc.Name), zap.Error(err))
		}
	}
	return nil
}
