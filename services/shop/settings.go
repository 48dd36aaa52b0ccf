package shop

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	"github.com/google/uuid"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func (s *DefaultShopService) GetSettings(shopID string) (*models.ShopSettings, error) {
	settings, err := s.Repo.GetSettings(shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shop settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings validates and stores the operating hours plus the referral
// and currency programs. Opening must precede closing on the same day.
func (s *DefaultShopService) UpdateSettings(shopID string, settings *models.ShopSettings) (*models.ShopSettings, error) {
	if !clockPattern.MatchString(settings.OpeningTime) || !clockPattern.MatchString(settings.ClosingTime) {
		return nil, fmt.Errorf("opening and closing times must use the HH:MM 24-hour format")
	}
	if settings.OpeningTime >= settings.ClosingTime {
		return nil, fmt.Errorf("opening time must be before closing time")
	}
	if rs := settings.ReferralSettings; rs != nil {
		if rs.ReferrerRewardValue < 0 || rs.NewClientRewardValue < 0 {
			return nil, fmt.Errorf("reward values cannot be negative")
		}
	}
	if cs := settings.CurrencySettings; cs != nil {
		cs.BaseCurrency = strings.ToUpper(strings.TrimSpace(cs.BaseCurrency))
		for code, rate := range cs.Rates {
			if rate <= 0 {
				return nil, fmt.Errorf("conversion rate for %s must be positive", code)
			}
		}
	}

	settings.ShopID = shopID
	settings.UpdatedAt = time.Now()
	if err := s.Repo.UpsertSettings(settings); err != nil {
		return nil, fmt.Errorf("failed to store shop settings: %w", err)
	}
	return settings, nil
}

func (s *DefaultShopService) ListPaymentMethods(shopID string) ([]models.PaymentMethod, error) {
	return s.Repo.ListPaymentMethods(shopID)
}

func (s *DefaultShopService) AddPaymentMethod(shopID string, pm models.PaymentMethod) (*models.PaymentMethod, error) {
	if strings.TrimSpace(pm.MethodName) == "" || strings.TrimSpace(pm.AccountNumber) == "" {
		return nil, fmt.Errorf("a method name and account number are required")
	}
	pm.ID = uuid.New().String()
	pm.ShopID = shopID
	pm.CreatedAt = time.Now()
	if err := s.Repo.CreatePaymentMethod(&pm); err != nil {
		return nil, fmt.Errorf("failed to store payment method: %w", err)
	}
	return &pm, nil
}

func (s *DefaultShopService) UpdatePaymentMethod(shopID string, pm models.PaymentMethod) error {
	pm.ShopID = shopID
	if err := s.Repo.UpdatePaymentMethod(&pm); err != nil {
		return fmt.Errorf("failed to update payment method: %w", err)
	}
	return nil
}

func (s *DefaultShopService) RemovePaymentMethod(shopID, id string) error {
	if err := s.Repo.DeletePaymentMethod(shopID, id); err != nil {
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	return nil
}
