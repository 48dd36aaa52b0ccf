package booking

import (
	appointmentRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/appointment"
	catalogRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/catalog"
	shopRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/shop"
	userRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/user"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/reminder"
)

// BookingSessionService manages the stateful booking flow: a cached session
// holding the cart and date, recomputed availability, and final confirmation.
type BookingSessionService interface {
	InitiateSession(shop *models.Shop, user *models.User, cart map[string]int, date string) (*models.BookingSession, error)
	UpdateSession(shopID, sessionID string, cart map[string]int, date string) (*models.BookingSession, error)
	ConfirmBooking(shop *models.Shop, actor *models.User, in models.BookingInput) (*models.Appointment, error)
	CancelSession(sessionID string) error
	GetAvailableSlots(shopID, date string, cart map[string]int) ([]string, error)
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	AppointmentRepo appointmentRepo.AppointmentRepository
	CatalogRepo     catalogRepo.CatalogRepository
	ShopRepo        shopRepo.ShopRepository
	UserRepo        userRepo.UserRepository
	Reminders       reminder.Scheduler
}
