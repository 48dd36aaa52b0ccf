package appointmentRepo

import "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

// AppointmentQuery narrows listing of a shop's appointments. Zero values mean
// "no filter".
type AppointmentQuery struct {
	Date     string
	Status   string
	ClientID string
	BarberID string
}

// ReferralCredit describes the reward credits to grant when a referred
// client's appointment completes. Either amount may be zero.
type ReferralCredit struct {
	ReferrerID     string
	ReferrerAmount float64
	ReferredID     string
	ReferredAmount float64
}

// AppointmentRepository defines persistence operations for appointments,
// including the transactional writes that pair bookings with reward balance
// movements.
type AppointmentRepository interface {
	GetByID(shopID, id string) (*models.Appointment, error)
	List(shopID string, q AppointmentQuery) ([]models.Appointment, error)
	GetBookedForDate(shopID, date string) ([]models.Appointment, error)
	UpdateStatus(shopID, id, from, to string) error
	SetPaymentStatus(shopID, id, paymentStatus string) error

	// CreateWithRewardDebit inserts the appointment and debits the client's
	// reward balance by appt.RewardApplied in a single transaction.
	CreateWithRewardDebit(appt *models.Appointment) error

	// CompleteWithReferralCredit transitions a confirmed appointment to
	// completed and grants the referral credits in a single transaction.
	// The transition and the credits are guarded by the appointment's
	// reward_credited flag, so retries are no-ops.
	CompleteWithReferralCredit(shopID, id string, credit *ReferralCredit) error
}
