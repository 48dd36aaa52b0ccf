package routes

import (
	"net/http"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/handlers"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/middleware"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers bootstrap and per-shop auth endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/shops", hb.BootstrapShopHandler)

	api := r.Group("/api/shops/:shopId/auth")
	api.Use(middleware.ShopMiddleware(hb.ShopRepo))
	{
		api.POST("/signup", hb.SignUpHandler)
		api.POST("/signin", hb.SignInHandler)
		api.POST("/signout", middleware.JWTAuthMiddleware(hb.UserRepo), hb.SignOutHandler)
	}
}

// RegisterBookingRoutes registers the session flow and availability queries.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shops/:shopId/bookings")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.ShopMiddleware(hb.ShopRepo))
	{
		api.GET("/slots", hb.AvailableSlotsHandler)
		api.POST("/session", hb.InitiateSessionHandler)
		api.PUT("/session/:sessionId", hb.UpdateSessionHandler)
		api.POST("/session/:sessionId/confirm", hb.ConfirmBookingHandler)
		api.DELETE("/session/:sessionId", hb.CancelSessionHandler)
	}
}

// RegisterAppointmentRoutes registers lifecycle endpoints. Clients see their
// own bookings; the staff surface is permission gated.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shops/:shopId/appointments")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.ShopMiddleware(hb.ShopRepo))
	{
		api.GET("/mine", hb.MyAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.POST("/:id/cancel", hb.CancelMyAppointmentHandler)

		staff := api.Group("")
		staff.Use(middleware.RequireStaff())
		staff.GET("", middleware.RequirePermission(func(p models.StaffPermissions) bool { return p.CanViewBookings }), hb.ListAppointmentsHandler)
		staff.PATCH("/:id/status", middleware.RequirePermission(func(p models.StaffPermissions) bool { return p.CanEditBookingStatus }), hb.UpdateStatusHandler)
		staff.POST("/:id/paid", middleware.RequirePermission(func(p models.StaffPermissions) bool { return p.CanEditBookingStatus }), hb.MarkPaidHandler)
	}
}

// RegisterCatalogRoutes registers the service catalogue and barber roster.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shops/:shopId")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.ShopMiddleware(hb.ShopRepo))
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/barbers", hb.ListBarbersHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		admin.POST("/services", hb.CreateServiceHandler)
		admin.POST("/services/seed", hb.SeedServicesHandler)
		admin.PUT("/services/:id", hb.UpdateServiceHandler)
		admin.DELETE("/services/:id", hb.DeleteServiceHandler)
		admin.PATCH("/services/:id/enabled", hb.ToggleServiceHandler)
		admin.POST("/barbers", hb.CreateBarberHandler)
		admin.PUT("/barbers/:id", hb.UpdateBarberHandler)
		admin.DELETE("/barbers/:id", hb.DeleteBarberHandler)
	}
}

// RegisterShopRoutes registers tenant settings, the PIN gate, payment
// methods and currency conversion.
func RegisterShopRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shops/:shopId")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.ShopMiddleware(hb.ShopRepo))
	{
		api.GET("", hb.GetShopHandler)
		api.GET("/settings", hb.GetSettingsHandler)
		api.GET("/payment-methods", hb.ListPaymentMethodsHandler)
		api.GET("/currency/convert", hb.ConvertPriceHandler)
		api.POST("/pin/verify", middleware.RequireStaff(), hb.VerifyPinHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		admin.PUT("", hb.UpdateShopHandler)
		admin.PUT("/settings", hb.UpdateSettingsHandler)
		admin.PUT("/pin", hb.SetPinHandler)
		admin.POST("/payment-methods", hb.AddPaymentMethodHandler)
		admin.PUT("/payment-methods/:id", hb.UpdatePaymentMethodHandler)
		admin.DELETE("/payment-methods/:id", hb.DeletePaymentMethodHandler)
	}
}

// RegisterAccountRoutes registers profile, customer and team management.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shops/:shopId")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.ShopMiddleware(hb.ShopRepo))
	{
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.GET("/referrals/me", hb.ReferralInfoHandler)

		api.GET("/customers",
			middleware.RequireStaff(),
			middleware.RequirePermission(func(p models.StaffPermissions) bool { return p.CanManageCustomers }),
			hb.ListCustomersHandler)

		admin := api.Group("/users")
		admin.Use(middleware.RequireAdmin())
		admin.GET("", hb.ListTeamHandler)
		admin.PUT("/:id/role", hb.SetRoleHandler)
		admin.PUT("/:id/enabled", hb.SetEnabledHandler)
		admin.DELETE("/:id", hb.DeleteUserHandler)
	}
}

// RegisterDashboardRoutes registers expenses and the overview.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shops/:shopId")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.ShopMiddleware(hb.ShopRepo))
	{
		api.GET("/overview",
			middleware.RequireStaff(),
			middleware.RequirePermission(func(p models.StaffPermissions) bool { return p.CanViewOverview }),
			hb.OverviewHandler)

		admin := api.Group("/expenses")
		admin.Use(middleware.RequireAdmin())
		admin.GET("", hb.ListExpensesHandler)
		admin.POST("", hb.CreateExpenseHandler)
		admin.PUT("/:id", hb.UpdateExpenseHandler)
		admin.DELETE("/:id", hb.DeleteExpenseHandler)
	}
}

// RegisterRoutes wires CORS, the health probe and every endpoint group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterShopRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
}
