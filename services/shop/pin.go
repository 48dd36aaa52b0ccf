package shop

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/config"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrPinLocked is returned once the attempt budget for a shop is exhausted.
var ErrPinLocked = fmt.Errorf("too many incorrect attempts, try again later")

// ErrPinNotSet is returned for protected actions on a shop without a PIN.
// There is no default PIN; the gate fails closed until the admin sets one.
var ErrPinNotSet = fmt.Errorf("no admin PIN has been configured")

var pinPattern = regexp.MustCompile(`^[0-9]{4,8}$`)

func pinAttemptsKey(shopID string) string {
	return "pinAttempts:" + shopID
}

// SetPin hashes and stores a new admin PIN, clearing any lockout counter.
func (s *DefaultShopService) SetPin(shopID, pin string) error {
	if !pinPattern.MatchString(pin) {
		return fmt.Errorf("the PIN must be 4 to 8 digits")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}
	if err := s.Repo.SetPinHash(shopID, string(hashed)); err != nil {
		return fmt.Errorf("failed to store PIN: %w", err)
	}
	ctx := context.Background()
	utils.GetLockoutCacheClient().Del(ctx, pinAttemptsKey(shopID))
	return nil
}

// VerifyPin checks the PIN against the stored hash, counting failures in
// redis so repeated wrong guesses lock the gate for a while.
func (s *DefaultShopService) VerifyPin(shopID, pin string) error {
	shop, err := s.Repo.GetByID(shopID)
	if err != nil {
		return fmt.Errorf("failed to fetch shop: %w", err)
	}
	if !shop.HasPin() {
		return ErrPinNotSet
	}

	ctx := context.Background()
	client := utils.GetLockoutCacheClient()
	key := pinAttemptsKey(shopID)

	maxAttempts := config.AppConfig.PinMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if attempts, err := client.Get(ctx, key).Int(); err == nil && attempts >= maxAttempts {
		return ErrPinLocked
	}

	if bcrypt.CompareHashAndPassword([]byte(shop.AdminPinHash), []byte(pin)) != nil {
		lockout := time.Duration(config.AppConfig.PinLockoutMinutes) * time.Minute
		if lockout <= 0 {
			lockout = 15 * time.Minute
		}
		attempts, err := client.Incr(ctx, key).Result()
		if err == nil && attempts == 1 {
			client.Expire(ctx, key, lockout)
		}
		if attempts >= int64(maxAttempts) {
			return ErrPinLocked
		}
		return fmt.Errorf("incorrect PIN")
	}

	client.Del(ctx, key)
	return nil
}
