package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	"github.com/google/uuid"
)

// newReferralCode derives a short shareable code. Uniqueness per shop is
// enforced by the repository index.
func newReferralCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:8])
}

func (s *DefaultUserService) GetUser(id string) (*models.User, error) {
	account, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return account, nil
}

func (s *DefaultUserService) ListUsers(shopID string) ([]models.User, error) {
	return s.Repo.GetByShop(shopID)
}

func (s *DefaultUserService) ListClients(shopID string) ([]models.User, error) {
	return s.Repo.GetClientsByShop(shopID)
}

// UpdateProfile changes an account's display name and/or email.
func (s *DefaultUserService) UpdateProfile(id string, name, email string) (*models.User, error) {
	account, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if name = strings.TrimSpace(name); name != "" {
		account.Name = name
	}
	if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
		if !emailPattern.MatchString(email) {
			return nil, fmt.Errorf("a valid email address is required")
		}
		account.Email = email
	}
	account.UpdatedAt = time.Now()
	if err := s.Repo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return account, nil
}

// DeleteUser removes an account belonging to the shop.
func (s *DefaultUserService) DeleteUser(shopID, id string) error {
	account, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if account.ShopID != shopID {
		return fmt.Errorf("user does not belong to this shop")
	}
	if account.Role == models.RoleAdmin {
		return fmt.Errorf("admin accounts cannot be deleted")
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if account.Role == models.RoleClient {
		// Counter drift here is tolerable; the plan limit check is advisory.
		_ = s.ShopRepo.IncrementCustomerCount(shopID, -1)
	}
	return nil
}

// SetRole promotes or demotes an account. Staff accounts carry an explicit
// permission set; promoting without one grants the booking-desk defaults.
func (s *DefaultUserService) SetRole(shopID, id, role string, permissions *models.StaffPermissions) error {
	switch role {
	case models.RoleClient, models.RoleStaff:
	default:
		return fmt.Errorf("unsupported role %q", role)
	}
	account, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if account.ShopID != shopID {
		return fmt.Errorf("user does not belong to this shop")
	}
	if account.Role == models.RoleAdmin {
		return fmt.Errorf("the admin role cannot be changed")
	}
	if role == models.RoleStaff && permissions == nil {
		permissions = &models.StaffPermissions{
			CanViewBookings:      true,
			CanAddWalkInBookings: true,
		}
	}
	if role == models.RoleClient {
		permissions = nil
	}
	return s.Repo.SetRole(id, role, permissions)
}

// SetEnabled toggles whether the account may sign in.
func (s *DefaultUserService) SetEnabled(shopID, id string, enabled bool) error {
	account, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if account.ShopID != shopID {
		return fmt.Errorf("user does not belong to this shop")
	}
	if account.Role == models.RoleAdmin && !enabled {
		return fmt.Errorf("admin accounts cannot be disabled")
	}
	return s.Repo.SetEnabled(id, enabled)
}
