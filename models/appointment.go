package models

import "time"

// Appointment statuses. Completed, cancelled and no-show are terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

// Payment fields on an appointment.
const (
	PaymentCash   = "cash"
	PaymentOnline = "online"

	PaymentPaid   = "paid"
	PaymentUnpaid = "unpaid"
)

// Booking origin.
const (
	BookingOnline = "online"
	BookingWalkIn = "walk-in"
)

// WalkInClientID marks appointments booked for unregistered walk-in clients.
const WalkInClientID = "walk-in"

// Display layouts for the stored date and time strings. Booked appointments
// are matched against generated slots by formatting and re-parsing through
// these layouts, so both sides must agree.
const (
	DateLayout = "January 2, 2006"
	TimeLayout = "3:04 PM"
)

// AppointmentService is the denormalized snapshot of one selected catalogue
// entry at booking time. Price is the effective unit price then in force.
type AppointmentService struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Duration int     `bson:"duration" json:"duration"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// Appointment is one booked visit.
type Appointment struct {
	ID             string               `bson:"id" json:"id"`
	ShopID         string               `bson:"shop_id" json:"shopId"`
	ClientID       string               `bson:"client_id" json:"clientId"` // user id or WalkInClientID
	ClientName     string               `bson:"client_name" json:"clientName"`
	Services       []AppointmentService `bson:"services" json:"services"`
	OriginalPrice  float64              `bson:"original_price" json:"originalPrice"`
	RewardApplied  float64              `bson:"reward_applied" json:"rewardApplied"`
	TotalPrice     float64              `bson:"total_price" json:"totalPrice"`
	TotalDuration  int                  `bson:"total_duration" json:"totalDuration"` // minutes
	Date           string               `bson:"date" json:"date"`                    // DateLayout
	Time           string               `bson:"time" json:"time"`                    // TimeLayout
	BarberID       string               `bson:"barber_id,omitempty" json:"barberId,omitempty"`
	Notes          string               `bson:"notes,omitempty" json:"notes,omitempty"`
	Status         string               `bson:"status" json:"status"`
	PaymentMethod  string               `bson:"payment_method" json:"paymentMethod"`
	PaymentStatus  string               `bson:"payment_status" json:"paymentStatus"`
	BookedBy       string               `bson:"booked_by,omitempty" json:"bookedBy,omitempty"`
	BookingType    string               `bson:"booking_type" json:"bookingType"`
	RewardCredited bool                 `bson:"reward_credited" json:"rewardCredited"`
	CreatedAt      time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time            `bson:"updated_at" json:"updated_at"`
}

// CanTransition reports whether moving from the appointment's current status
// to next is a legal step of the lifecycle.
func (a *Appointment) CanTransition(next string) bool {
	switch a.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusNoShow || next == StatusCancelled
	default:
		return false
	}
}

// Blocks reports whether the appointment occupies the shop's schedule. Only
// pending and confirmed bookings block slots.
func (a *Appointment) Blocks() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}
