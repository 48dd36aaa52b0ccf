package models

import "time"

// Roles a user account can hold within a shop.
const (
	RoleClient = "client"
	RoleStaff  = "staff"
	RoleAdmin  = "admin"
)

// StaffPermissions controls what a staff account may do on the admin surface.
type StaffPermissions struct {
	CanViewBookings      bool `bson:"canViewBookings" json:"canViewBookings"`
	CanAddWalkInBookings bool `bson:"canAddWalkInBookings" json:"canAddWalkInBookings"`
	CanEditBookingStatus bool `bson:"canEditBookingStatus" json:"canEditBookingStatus"`
	CanManageCustomers   bool `bson:"canManageCustomers" json:"canManageCustomers"`
	CanViewOverview      bool `bson:"canViewOverview" json:"canViewOverview"`
}

// ReferralStats accumulates referral program counters on a client account.
type ReferralStats struct {
	TotalReferrals      int     `bson:"totalReferrals" json:"totalReferrals"`
	SuccessfulReferrals int     `bson:"successfulReferrals" json:"successfulReferrals"`
	TotalRewardsEarned  float64 `bson:"totalRewardsEarned" json:"totalRewardsEarned"`
}

// User represents a client, staff or admin account.
type User struct {
	ID           string            `bson:"id" json:"id"`
	Email        string            `bson:"email" json:"email"`
	Name         string            `bson:"name" json:"name"`
	PasswordHash string            `bson:"password_hash" json:"-"`
	Role         string            `bson:"role" json:"role"`
	ShopID       string            `bson:"shop_id" json:"shopId"`
	Permissions  *StaffPermissions `bson:"permissions,omitempty" json:"permissions,omitempty"`
	Enabled      bool              `bson:"enabled" json:"enabled"`

	// Referral program fields. RewardBalance is store credit in the shop's
	// base currency and is never negative.
	ReferralCode      string        `bson:"referral_code,omitempty" json:"referralCode,omitempty"`
	ReferredBy        string        `bson:"referred_by,omitempty" json:"referredBy,omitempty"`
	RewardBalance     float64       `bson:"reward_balance" json:"rewardBalance"`
	WelcomeRewardUsed bool          `bson:"welcome_reward_used" json:"welcomeRewardUsed"`
	ReferralStats     ReferralStats `bson:"referral_stats" json:"referralStats"`

	TokenHash string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsStaffOrAdmin reports whether the account may use the staff surface.
func (u *User) IsStaffOrAdmin() bool {
	return u.Role == RoleStaff || u.Role == RoleAdmin
}

// Can reports whether the account holds the given staff permission. Admins
// hold every permission implicitly.
func (u *User) Can(check func(StaffPermissions) bool) bool {
	if u.Role == RoleAdmin {
		return true
	}
	if u.Role != RoleStaff || u.Permissions == nil {
		return false
	}
	return check(*u.Permissions)
}
