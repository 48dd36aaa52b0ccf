package user

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/config"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// ErrCustomerLimit is returned when a free-plan shop is at its customer cap.
var ErrCustomerLimit = errors.New("this shop has reached its plan's customer limit")

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// verifyPasswordComplexity requires a minimum length plus at least one letter
// and one digit.
func verifyPasswordComplexity(pw string) error {
	if len(pw) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !regexp.MustCompile(`[a-zA-Z]`).MatchString(pw) {
		return fmt.Errorf("password must include at least one letter")
	}
	if !regexp.MustCompile(`[0-9]`).MatchString(pw) {
		return fmt.Errorf("password must include at least one number")
	}
	return nil
}

// SignUp registers a new client account on the shop, resolving an optional
// referral code to link the new account to its referrer.
func (s *DefaultUserService) SignUp(shop *models.Shop, in SignUpInput) (*AuthResponse, error) {
	logger := utils.GetLogger()

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	if !emailPattern.MatchString(in.Email) {
		return nil, fmt.Errorf("a valid email address is required")
	}
	if in.Name == "" {
		return nil, fmt.Errorf("a name is required")
	}
	if err := verifyPasswordComplexity(in.Password); err != nil {
		return nil, err
	}

	if shop.Plan == models.PlanFree && config.AppConfig.FreePlanMaxCustomers > 0 &&
		shop.CustomerCount >= config.AppConfig.FreePlanMaxCustomers {
		return nil, ErrCustomerLimit
	}

	existing, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		logger.Error("failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	// Resolve the referral code before creating anything so a bad code is a
	// clean rejection instead of a half-registered account.
	var referrer *models.User
	if code := strings.TrimSpace(in.ReferralCode); code != "" {
		referrer, err = s.Repo.GetByReferralCode(shop.ID, strings.ToUpper(code))
		if err != nil {
			logger.Error("failed to look up referral code", zap.Error(err))
			return nil, fmt.Errorf("registration failed, please try again")
		}
		if referrer == nil {
			return nil, fmt.Errorf("referral code not recognised")
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	account := &models.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleClient,
		ShopID:       shop.ID,
		Enabled:      true,
		ReferralCode: newReferralCode(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if referrer != nil {
		account.ReferredBy = referrer.ID
	}

	if err := s.Repo.Create(account); err != nil {
		logger.Error("failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	if referrer != nil {
		referrer.ReferralStats.TotalReferrals++
		referrer.UpdatedAt = time.Now()
		if err := s.Repo.Update(referrer); err != nil {
			logger.Warn("failed to bump referral counter",
				zap.String("referrerID", referrer.ID), zap.Error(err))
		}
	}

	if err := s.ShopRepo.IncrementCustomerCount(shop.ID, 1); err != nil {
		logger.Warn("failed to bump customer count", zap.String("shopID", shop.ID), zap.Error(err))
	}

	return s.issueToken(account)
}

// SignIn authenticates an email/password pair against the shop's accounts.
func (s *DefaultUserService) SignIn(shopID, email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	account, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		logger.Error("failed to fetch user for sign-in", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if account == nil || account.ShopID != shopID {
		return nil, fmt.Errorf("invalid email or password")
	}
	if !account.Enabled {
		return nil, fmt.Errorf("this account has been disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(account)
}

// SignOut revokes the account's current token by clearing its stored hash.
func (s *DefaultUserService) SignOut(userID string) error {
	if err := s.Repo.SetTokenHash(userID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// issueToken signs a JWT and stores its hash so the token can be revoked.
func (s *DefaultUserService) issueToken(account *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(account.ID, account.Email, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if err := s.Repo.SetTokenHash(account.ID, utils.HashToken(token)); err != nil {
		utils.GetLogger().Error("failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	return &AuthResponse{
		ID:    account.ID,
		Token: token,
		Email: account.Email,
		Name:  account.Name,
		Role:  account.Role,
	}, nil
}
