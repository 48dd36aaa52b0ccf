package handlers

import (
	shopRepoPkg "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/shop"
	userRepoPkg "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct, plus the
// repositories the middleware chain needs.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository
	ShopRepo shopRepoPkg.ShopRepository

	// Bootstrap and auth.
	BootstrapShopHandler gin.HandlerFunc
	SignUpHandler        gin.HandlerFunc
	SignInHandler        gin.HandlerFunc
	SignOutHandler       gin.HandlerFunc

	// Profile and accounts.
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc
	ListCustomersHandler gin.HandlerFunc
	ListTeamHandler      gin.HandlerFunc
	SetRoleHandler       gin.HandlerFunc
	SetEnabledHandler    gin.HandlerFunc
	DeleteUserHandler    gin.HandlerFunc

	// Booking sessions and availability.
	InitiateSessionHandler gin.HandlerFunc
	UpdateSessionHandler   gin.HandlerFunc
	ConfirmBookingHandler  gin.HandlerFunc
	CancelSessionHandler   gin.HandlerFunc
	AvailableSlotsHandler  gin.HandlerFunc

	// Appointments.
	ListAppointmentsHandler    gin.HandlerFunc
	MyAppointmentsHandler      gin.HandlerFunc
	GetAppointmentHandler      gin.HandlerFunc
	UpdateStatusHandler        gin.HandlerFunc
	CancelMyAppointmentHandler gin.HandlerFunc
	MarkPaidHandler            gin.HandlerFunc

	// Catalogue and roster.
	ListServicesHandler  gin.HandlerFunc
	CreateServiceHandler gin.HandlerFunc
	UpdateServiceHandler gin.HandlerFunc
	DeleteServiceHandler gin.HandlerFunc
	ToggleServiceHandler gin.HandlerFunc
	SeedServicesHandler  gin.HandlerFunc
	ListBarbersHandler   gin.HandlerFunc
	CreateBarberHandler  gin.HandlerFunc
	UpdateBarberHandler  gin.HandlerFunc
	DeleteBarberHandler  gin.HandlerFunc

	// Shop settings, PIN, payment methods, currency.
	GetShopHandler             gin.HandlerFunc
	UpdateShopHandler          gin.HandlerFunc
	GetSettingsHandler         gin.HandlerFunc
	UpdateSettingsHandler      gin.HandlerFunc
	SetPinHandler              gin.HandlerFunc
	VerifyPinHandler           gin.HandlerFunc
	ListPaymentMethodsHandler  gin.HandlerFunc
	AddPaymentMethodHandler    gin.HandlerFunc
	UpdatePaymentMethodHandler gin.HandlerFunc
	DeletePaymentMethodHandler gin.HandlerFunc
	ConvertPriceHandler        gin.HandlerFunc

	// Expenses and overview.
	ListExpensesHandler  gin.HandlerFunc
	CreateExpenseHandler gin.HandlerFunc
	UpdateExpenseHandler gin.HandlerFunc
	DeleteExpenseHandler gin.HandlerFunc
	OverviewHandler      gin.HandlerFunc

	// Referral program.
	ReferralInfoHandler gin.HandlerFunc
}
