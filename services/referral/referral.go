// Package referral implements the shop referral program: credit computation
// for completed appointments and the client-facing program summary.
package referral

import (
	"fmt"
	"strings"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/config"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	appointmentRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/appointment"
	shopRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/shop"
	userRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/user"
)

// Info is the program summary shown on a client's referral page.
type Info struct {
	Enabled              bool                 `json:"enabled"`
	ReferralCode         string               `json:"referralCode"`
	ShareURL             string               `json:"shareUrl"`
	RewardBalance        float64              `json:"rewardBalance"`
	ReferrerRewardValue  float64              `json:"referrerRewardValue"`
	NewClientRewardValue float64              `json:"newClientRewardValue"`
	Stats                models.ReferralStats `json:"stats"`
}

// Service answers referral program queries and derives credits.
type Service struct {
	UserRepo userRepo.UserRepository
	ShopRepo shopRepo.ShopRepository
}

// ComputeCredit determines the reward credits to grant when the given
// client's appointment completes. It returns nil when nothing is owed: the
// program is off, the client was not referred, walk-ins, or a one-time
// program where the referred client has already consumed the welcome reward.
func ComputeCredit(settings *models.ReferralSettings, client *models.User) *appointmentRepo.ReferralCredit {
	if settings == nil || !settings.Enabled {
		return nil
	}
	if client == nil || client.ReferredBy == "" {
		return nil
	}
	if settings.OneTimeOnly && client.WelcomeRewardUsed {
		return nil
	}

	credit := &appointmentRepo.ReferralCredit{
		ReferrerID:     client.ReferredBy,
		ReferrerAmount: settings.ReferrerRewardValue,
		ReferredID:     client.ID,
		ReferredAmount: settings.NewClientRewardValue,
	}
	if credit.ReferrerAmount <= 0 && credit.ReferredAmount <= 0 {
		return nil
	}
	return credit
}

// CreditFor resolves the shop's program settings and the appointment's client
// and computes the credit due on completion. Walk-in appointments never earn
// credits.
func (s *Service) CreditFor(appt *models.Appointment) (*appointmentRepo.ReferralCredit, error) {
	if appt.ClientID == models.WalkInClientID {
		return nil, nil
	}
	settings, err := s.ShopRepo.GetSettings(appt.ShopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shop settings: %w", err)
	}
	client, err := s.UserRepo.GetByID(appt.ClientID)
	if err != nil {
		// A deleted account forfeits any pending credit.
		return nil, nil
	}
	return ComputeCredit(settings.ReferralSettings, client), nil
}

func shareURL(shopID, code string) string {
	if code == "" {
		return ""
	}
	base := strings.TrimRight(config.AppConfig.AppBaseURL, "/")
	return fmt.Sprintf("%s/shops/%s/signup?ref=%s", base, shopID, code)
}

// InfoFor assembles the referral page payload for a client account.
func (s *Service) InfoFor(user *models.User) (*Info, error) {
	settings, err := s.ShopRepo.GetSettings(user.ShopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shop settings: %w", err)
	}
	info := &Info{
		ReferralCode:  user.ReferralCode,
		ShareURL:      shareURL(user.ShopID, user.ReferralCode),
		RewardBalance: user.RewardBalance,
		Stats:         user.ReferralStats,
	}
	if rs := settings.ReferralSettings; rs != nil {
		info.Enabled = rs.Enabled
		info.ReferrerRewardValue = rs.ReferrerRewardValue
		info.NewClientRewardValue = rs.NewClientRewardValue
	}
	return info, nil
}
