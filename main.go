package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/config"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/cron"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/handlers"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/middleware"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/routes"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	appointmentRepoPkg "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/appointment"
	catalogRepoPkg "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/catalog"
	expenseRepoPkg "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/expense"
	shopRepoPkg "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/shop"
	userRepoPkg "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/user"

	appointmentSvc "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/appointment"
	bookingSvc "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/booking"
	catalogSvc "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/catalog"
	expenseSvc "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/expense"
	referralSvc "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/referral"
	reminderSvc "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/reminder"
	shopSvc "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/shop"
	userSvc "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/user"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	shopRepo := shopRepoPkg.NewMongoShopRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	expenseRepo := expenseRepoPkg.NewMongoExpenseRepo()

	// services.
	userService := &userSvc.DefaultUserService{
		Repo:     userRepo,
		ShopRepo: shopRepo,
	}
	shopService := &shopSvc.DefaultShopService{
		Repo:     shopRepo,
		UserRepo: userRepo,
	}
	catalogService := &catalogSvc.DefaultCatalogService{
		Repo: catalogRepo,
	}
	referralService := &referralSvc.Service{
		UserRepo: userRepo,
		ShopRepo: shopRepo,
	}
	appointmentService := &appointmentSvc.DefaultAppointmentService{
		Repo:      appointmentRepo,
		Referrals: referralService,
	}
	expenseService := &expenseSvc.DefaultExpenseService{
		Repo:            expenseRepo,
		AppointmentRepo: appointmentRepo,
	}
	bookingService := &bookingSvc.DefaultBookingSessionService{
		AppointmentRepo: appointmentRepo,
		CatalogRepo:     catalogRepo,
		ShopRepo:        shopRepo,
		UserRepo:        userRepo,
		Reminders:       reminderSvc.NewAsynqScheduler(),
	}

	// handlers.
	authHandler := handlers.NewAuthHandler(userService, shopService, catalogService)
	userHandler := handlers.NewUserHandler(userService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	shopHandler := handlers.NewShopHandler(shopService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	referralHandler := handlers.NewReferralHandler(referralService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		ShopRepo: shopRepo,

		BootstrapShopHandler: authHandler.BootstrapShopHandler,
		SignUpHandler:        authHandler.SignUpHandler,
		SignInHandler:        authHandler.SignInHandler,
		SignOutHandler:       authHandler.SignOutHandler,

		GetProfileHandler:    userHandler.GetProfileHandler,
		UpdateProfileHandler: userHandler.UpdateProfileHandler,
		ListCustomersHandler: userHandler.ListCustomersHandler,
		ListTeamHandler:      userHandler.ListTeamHandler,
		SetRoleHandler:       userHandler.SetRoleHandler,
		SetEnabledHandler:    userHandler.SetEnabledHandler,
		DeleteUserHandler:    userHandler.DeleteUserHandler,

		InitiateSessionHandler: bookingHandler.InitiateSessionHandler,
		UpdateSessionHandler:   bookingHandler.UpdateSessionHandler,
		ConfirmBookingHandler:  bookingHandler.ConfirmBookingHandler,
		CancelSessionHandler:   bookingHandler.CancelSessionHandler,
		AvailableSlotsHandler:  bookingHandler.AvailableSlotsHandler,

		ListAppointmentsHandler:    appointmentHandler.ListAppointmentsHandler,
		MyAppointmentsHandler:      appointmentHandler.MyAppointmentsHandler,
		GetAppointmentHandler:      appointmentHandler.GetAppointmentHandler,
		UpdateStatusHandler:        appointmentHandler.UpdateStatusHandler,
		CancelMyAppointmentHandler: appointmentHandler.CancelMyAppointmentHandler,
		MarkPaidHandler:            appointmentHandler.MarkPaidHandler,

		ListServicesHandler:  catalogHandler.ListServicesHandler,
		CreateServiceHandler: catalogHandler.CreateServiceHandler,
		UpdateServiceHandler: catalogHandler.UpdateServiceHandler,
		DeleteServiceHandler: catalogHandler.DeleteServiceHandler,
		ToggleServiceHandler: catalogHandler.ToggleServiceHandler,
		SeedServicesHandler:  catalogHandler.SeedServicesHandler,
		ListBarbersHandler:   catalogHandler.ListBarbersHandler,
		CreateBarberHandler:  catalogHandler.CreateBarberHandler,
		UpdateBarberHandler:  catalogHandler.UpdateBarberHandler,
		DeleteBarberHandler:  catalogHandler.DeleteBarberHandler,

		GetShopHandler:             shopHandler.GetShopHandler,
		UpdateShopHandler:          shopHandler.UpdateShopHandler,
		GetSettingsHandler:         shopHandler.GetSettingsHandler,
		UpdateSettingsHandler:      shopHandler.UpdateSettingsHandler,
		SetPinHandler:              shopHandler.SetPinHandler,
		VerifyPinHandler:           shopHandler.VerifyPinHandler,
		ListPaymentMethodsHandler:  shopHandler.ListPaymentMethodsHandler,
		AddPaymentMethodHandler:    shopHandler.AddPaymentMethodHandler,
		UpdatePaymentMethodHandler: shopHandler.UpdatePaymentMethodHandler,
		DeletePaymentMethodHandler: shopHandler.DeletePaymentMethodHandler,
		ConvertPriceHandler:        shopHandler.ConvertPriceHandler,

		ListExpensesHandler:  expenseHandler.ListExpensesHandler,
		CreateExpenseHandler: expenseHandler.CreateExpenseHandler,
		UpdateExpenseHandler: expenseHandler.UpdateExpenseHandler,
		DeleteExpenseHandler: expenseHandler.DeleteExpenseHandler,
		OverviewHandler:      expenseHandler.OverviewHandler,

		ReferralInfoHandler: referralHandler.ReferralInfoHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitoring.
	cron.InitReminderWorker(appointmentRepo)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetLockoutCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
