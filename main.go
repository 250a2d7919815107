package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pr4shxnt/ecobin-backend/config"
	"github.com/pr4shxnt/ecobin-backend/cron"
	"github.com/pr4shxnt/ecobin-backend/database"
	adminRepoPkg "github.com/pr4shxnt/ecobin-backend/database/repository/admin"
	invoiceRepoPkg "github.com/pr4shxnt/ecobin-backend/database/repository/invoice"
	landlordRepoPkg "github.com/pr4shxnt/ecobin-backend/database/repository/landlord"
	notificationRepoPkg "github.com/pr4shxnt/ecobin-backend/database/repository/notification"
	scheduleRepoPkg "github.com/pr4shxnt/ecobin-backend/database/repository/schedule"
	subscriptionRepoPkg "github.com/pr4shxnt/ecobin-backend/database/repository/subscription"
	tenantRepoPkg "github.com/pr4shxnt/ecobin-backend/database/repository/tenant"
	"github.com/pr4shxnt/ecobin-backend/handlers"
	"github.com/pr4shxnt/ecobin-backend/middleware"
	"github.com/pr4shxnt/ecobin-backend/routes"
	adminSvc "github.com/pr4shxnt/ecobin-backend/services/admin"
	"github.com/pr4shxnt/ecobin-backend/services/intelligence"
	invoiceSvc "github.com/pr4shxnt/ecobin-backend/services/invoice"
	landlordSvc "github.com/pr4shxnt/ecobin-backend/services/landlord"
	"github.com/pr4shxnt/ecobin-backend/services/notification"
	scheduleSvc "github.com/pr4shxnt/ecobin-backend/services/schedule"
	"github.com/pr4shxnt/ecobin-backend/services/storage"
	tenantSvc "github.com/pr4shxnt/ecobin-backend/services/tenant"
	"github.com/pr4shxnt/ecobin-backend/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	client, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Close(client); err != nil {
			logger.Sugar().Errorf("main: error closing MongoDB connection: %v", err)
		}
	}()
	db := client.Database(config.AppConfig.DatabaseName)

	utils.InitAuthCache()
	utils.FirebaseInit()

	// repositories.
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo(db)
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo(db)
	adminRepo := adminRepoPkg.NewMongoAdminRepo(db)
	subscriptionRepo := subscriptionRepoPkg.NewMongoSubscriptionRepo(db)
	tenantRepo := tenantRepoPkg.NewMongoTenantRepo(db)
	landlordRepo := landlordRepoPkg.NewMongoLandlordRepo(db)
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo(db)

	for name, ensure := range map[string]func() error{
		"schedules":     scheduleRepo.EnsureIndexes,
		"notifications": notificationRepo.EnsureIndexes,
		"admins":        adminRepo.EnsureIndexes,
		"subscriptions": subscriptionRepo.EnsureIndexes,
		"tenants":       tenantRepo.EnsureIndexes,
		"landlords":     landlordRepo.EnsureIndexes,
		"invoices":      invoiceRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Warnf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// Delivery gateway: real FCM when credentials are configured, simulated
	// otherwise.
	var gateway notification.DeliveryGateway
	if utils.FCMClient != nil {
		gateway = notification.NewFCMGateway(utils.FCMClient, subscriptionRepo,
			time.Duration(config.AppConfig.DeliveryTimeoutSeconds)*time.Second, logger)
	} else {
		gateway = notification.NewLogGateway(logger)
	}

	// services.
	pushService, err := notification.NewDefaultPushService(scheduleRepo, notificationRepo, gateway, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize push service: %v", err)
	}
	scheduleService := &scheduleSvc.DefaultScheduleService{Repo: scheduleRepo, Logger: logger}
	authService := &adminSvc.AuthService{Repo: adminRepo, Logger: logger}
	locationService := &adminSvc.LocationService{Admins: adminRepo, Schedules: scheduleRepo, Logger: logger}
	invoiceService := &invoiceSvc.Service{Repo: invoiceRepo, Logger: logger}

	var storageService storage.StorageService
	storageService, err = storage.NewCloudinaryStorage(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}
	tenantService := &tenantSvc.Service{Repo: tenantRepo, Subs: subscriptionRepo, Storage: storageService, Logger: logger}
	landlordService := &landlordSvc.Service{Repo: landlordRepo, Storage: storageService, Logger: logger}

	// Reminder trigger: shared single-flight gate for the scheduled worker
	// and the operator force endpoint.
	trigger := cron.NewReminderTrigger(pushService)
	cron.InitReminderWorker(trigger, logger)
	reminderCron, err := cron.InitReminderScheduler(logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start reminder scheduler: %v", err)
	}

	var classifyHandler *handlers.ClassifyHandler
	if config.AppConfig.GeminiAPIKey != "" {
		geminiClient, err := intelligence.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		classifyHandler = &handlers.ClassifyHandler{
			Classifier: &intelligence.WasteClassifier{Client: geminiClient, Logger: logger},
		}
	} else {
		logger.Warn("main: GEMINI_API_KEY not set, waste classification disabled")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &handlers.HandlerBundle{
		AdminAuth:     &handlers.AdminAuthHandler{Service: authService},
		Schedules:     &handlers.ScheduleHandler{Service: scheduleService, Notifications: pushService},
		Notifications: &handlers.NotificationHandler{Service: pushService, Trigger: trigger},
		Location:      &handlers.LocationHandler{Service: locationService},
		Tenants:       &handlers.TenantHandler{Service: tenantService},
		Landlords:     &handlers.LandlordHandler{Service: landlordService},
		Invoices:      &handlers.InvoiceHandler{Service: invoiceService},
		Classify:      classifyHandler,
	}
	routes.RegisterRoutes(router, handlerBundle)

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

	reminderCron.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
