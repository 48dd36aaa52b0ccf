package models

import "time"

// Subscription plans for a shop tenant.
const (
	PlanFree  = "free"
	PlanBasic = "basic"
	PlanPro   = "pro"
)

// Shop statuses.
const (
	ShopActive    = "active"
	ShopSuspended = "suspended"
)

// Shop is a tenant: one barbershop with its own catalogue, staff and bookings.
type Shop struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	OwnerID       string    `bson:"owner_id" json:"ownerId"`
	Plan          string    `bson:"plan" json:"plan"`
	CustomerCount int       `bson:"customer_count" json:"customerCount"`
	BookingCount  int       `bson:"booking_count" json:"bookingCount"`
	MaxCustomers  int       `bson:"max_customers" json:"maxCustomers"`
	Status        string    `bson:"status" json:"status"`
	AdminPinHash  string    `bson:"admin_pin_hash,omitempty" json:"-"`
	SoundEnabled  bool      `bson:"sound_enabled" json:"soundEnabled"`
	ThemeColor    string    `bson:"theme_color,omitempty" json:"themeColor,omitempty"`
	LogoURL       string    `bson:"logo_url,omitempty" json:"logoUrl,omitempty"`
	Address       string    `bson:"address,omitempty" json:"address,omitempty"`
	City          string    `bson:"city,omitempty" json:"city,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// HasPin reports whether an admin PIN has been configured. There is no
// default PIN; protected actions fail closed until one is set.
func (s *Shop) HasPin() bool {
	return s.AdminPinHash != ""
}

// ReferralSettings configures the shop's referral program. Reward values are
// fixed amounts in the shop's base currency.
type ReferralSettings struct {
	Enabled              bool    `bson:"enabled" json:"enabled"`
	ReferrerRewardValue  float64 `bson:"referrer_reward_value" json:"referrerRewardValue"`
	NewClientRewardValue float64 `bson:"new_client_reward_value" json:"newClientRewardValue"`
	OneTimeOnly          bool    `bson:"one_time_only" json:"oneTimeOnly"`
}

// CurrencySettings holds the shop's base currency and optional custom
// conversion rates keyed by currency code (units of base per 1 unit of the
// keyed currency).
type CurrencySettings struct {
	BaseCurrency      string             `bson:"base_currency" json:"baseCurrency"`
	Rates             map[string]float64 `bson:"rates,omitempty" json:"rates,omitempty"`
	DisplayCurrencies []string           `bson:"display_currencies,omitempty" json:"displayCurrencies,omitempty"`
}

// ShopSettings carries the per-shop operational configuration read by the
// booking flow: opening hours plus referral and currency programs.
type ShopSettings struct {
	ShopID           string            `bson:"shop_id" json:"shopId"`
	OpeningTime      string            `bson:"opening_time" json:"openingTime"` // "HH:MM", 24h
	ClosingTime      string            `bson:"closing_time" json:"closingTime"` // "HH:MM", 24h
	ReferralSettings *ReferralSettings `bson:"referral_settings,omitempty" json:"referralSettings,omitempty"`
	CurrencySettings *CurrencySettings `bson:"currency_settings,omitempty" json:"currencySettings,omitempty"`
	UpdatedAt        time.Time         `bson:"updated_at" json:"updated_at"`
}

// PaymentMethod is a manual payout destination (bank account, mobile wallet)
// shown to clients who choose to pay online.
type PaymentMethod struct {
	ID                string    `bson:"id" json:"id"`
	ShopID            string    `bson:"shop_id" json:"shopId"`
	MethodName        string    `bson:"method_name" json:"methodName"`
	AccountHolderName string    `bson:"account_holder_name" json:"accountHolderName"`
	AccountNumber     string    `bson:"account_number" json:"accountNumber"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}
