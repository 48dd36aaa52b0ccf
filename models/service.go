package models

import "time"

// Service is a bookable catalogue entry: a single treatment or a package.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	ShopID          string    `bson:"shop_id" json:"shopId"`
	Name            string    `bson:"name" json:"name"`
	IsPackage       bool      `bson:"is_package" json:"isPackage"`
	Price           float64   `bson:"price" json:"price"`
	DiscountedPrice float64   `bson:"discounted_price,omitempty" json:"discountedPrice,omitempty"`
	Duration        int       `bson:"duration" json:"duration"` // minutes
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Enabled         bool      `bson:"enabled" json:"enabled"`
	MaxQuantity     int       `bson:"max_quantity,omitempty" json:"maxQuantity,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// EffectivePrice returns the discounted price when one is set and positive,
// otherwise the base price.
func (s *Service) EffectivePrice() float64 {
	if s.DiscountedPrice > 0 {
		return s.DiscountedPrice
	}
	return s.Price
}

// Barber is a member of the shop's cutting staff a client may request.
type Barber struct {
	ID        string    `bson:"id" json:"id"`
	ShopID    string    `bson:"shop_id" json:"shopId"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
