package models

// ReminderPayload is the task body queued for an upcoming appointment.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	ShopID        string `json:"shopId"`
	ClientID      string `json:"clientId"`
	ClientName    string `json:"clientName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	FireAt        string `json:"fireAt"` // RFC3339
}
