package models

import "time"

// Expense is a shop outgoing recorded by an admin.
type Expense struct {
	ID        string    `bson:"id" json:"id"`
	ShopID    string    `bson:"shop_id" json:"shopId"`
	Name      string    `bson:"name" json:"name"`
	Amount    float64   `bson:"amount" json:"amount"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// OverviewStats is the aggregated dashboard snapshot for a shop.
type OverviewStats struct {
	Revenue        float64        `json:"revenue"`        // completed appointments
	PendingRevenue float64        `json:"pendingRevenue"` // confirmed, not yet completed
	TotalExpenses  float64        `json:"totalExpenses"`
	NetIncome      float64        `json:"netIncome"`
	RewardsApplied float64        `json:"rewardsApplied"`
	ByStatus       map[string]int `json:"byStatus"`
	ByBarber       map[string]int `json:"byBarber"`
	Appointments   int            `json:"appointments"`
}
