package models

import "time"

// BookingSession is the ephemeral state of one booking form, cached in redis
// between the first service selection and the final confirmation. Everything
// here is recomputed from the cart and date on each update.
type BookingSession struct {
	SessionID string         `json:"sessionId"`
	ShopID    string         `json:"shopId"`
	UserID    string         `json:"userId"`
	Cart      map[string]int `json:"cart"` // service id -> quantity (>= 1)
	Date      string         `json:"date"` // DateLayout

	// Derived on every recompute.
	TotalPrice     float64  `json:"totalPrice"`
	TotalDuration  int      `json:"totalDuration"`
	RewardDiscount float64  `json:"rewardDiscount"`
	PayableTotal   float64  `json:"payableTotal"`
	AvailableSlots []string `json:"availableSlots"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingInput is the confirmation payload for a session.
type BookingInput struct {
	SessionID     string `json:"sessionId"`
	Time          string `json:"time"` // TimeLayout
	BarberID      string `json:"barberId,omitempty"`
	Notes         string `json:"notes,omitempty"`
	PaymentMethod string `json:"paymentMethod"`

	// Staff-only fields for booking on behalf of a customer.
	CustomerType string `json:"customerType,omitempty"` // "registered" or "walk-in"
	CustomerID   string `json:"customerId,omitempty"`
	WalkInName   string `json:"walkInName,omitempty"`
}
