// File: consulta/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"consulta/config"
	"consulta/database"
	patientRepoPkg "consulta/database/repository/patient"
	paymentRepoPkg "consulta/database/repository/payment"
	sessionRepoPkg "consulta/database/repository/session"
	settingRepoPkg "consulta/database/repository/setting"
	"consulta/handlers"
	"consulta/middleware"
	"consulta/routes"
	"consulta/services/patient"
	"consulta/services/payment"
	"consulta/services/reminder"
	"consulta/services/schedule"
	"consulta/services/session"
	"consulta/services/settings"
	"consulta/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	localStore := utils.NewLocalStore(config.AppConfig.LocalStorePath)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// Repositories.
	sessRepo := sessionRepoPkg.NewMongoSessionRepo()
	patRepo := patientRepoPkg.NewMongoPatientRepo()
	setRepo := settingRepoPkg.NewMongoSettingRepo()
	payRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// Services.
	reminderScheduler := reminder.NewAsynqScheduler()
	defer reminderScheduler.Close()

	sessionService := &session.DefaultSessionService{
		Repo:        sessRepo,
		PatientRepo: patRepo,
		Reminders:   reminderScheduler,
	}
	patientService := &patient.DefaultPatientService{
		Repo: patRepo,
	}
	paymentService := &payment.DefaultPaymentService{
		Repo: payRepo,
	}
	settingsService := settings.NewDefaultSettingsService(
		setRepo,
		localStore,
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.SettingsCacheTTL)*time.Second,
	)
	settingsService.Subscribe(func(snap settings.Snapshot) {
		logger.Debug("settings snapshot updated",
			zap.Int("dayOffs", len(snap.DayOffs)),
			zap.String("start", snap.WorkingHours.StartTime),
			zap.String("end", snap.WorkingHours.EndTime))
	})

	notifier := schedule.LogNotifier{Logger: logger}
	mediator := schedule.NewMediator(sessionService, notifier, logger)

	reminder.InitReminderWorker(notifier)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Calendar: handlers.NewCalendarHandler(sessionService, settingsService, patientService, paymentService, mediator),
		Sessions: handlers.NewSessionHandler(sessionService),
		Patients: handlers.NewPatientHandler(patientService),
		Settings: handlers.NewSettingsHandler(settingsService),
		Payments: handlers.NewPaymentHandler(paymentService),
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
