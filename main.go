// File: grocli/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grocli/config"
	grocliCron "grocli/cron"
	invitationRepoPkg "grocli/database/repository/invitation"
	listRepoPkg "grocli/database/repository/list"
	reminderRepoPkg "grocli/database/repository/reminder"
	tokenRepoPkg "grocli/database/repository/token"
	userRepoPkg "grocli/database/repository/user"
	"grocli/handlers"
	"grocli/middleware"
	"grocli/routes"
	"grocli/services/invitation"
	"grocli/services/notification"
	"grocli/services/reminder"
	"grocli/services/user"
	"grocli/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.FirebaseInit()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	reminderRepo := reminderRepoPkg.NewFirestoreReminderRepo(utils.FirestoreClient)
	listRepo := listRepoPkg.NewFirestoreListRepo(utils.FirestoreClient)
	tokenRepo := tokenRepoPkg.NewFirestoreTokenRepo(utils.FirestoreClient)
	userRepo := userRepoPkg.NewFirestoreUserRepo(utils.FirestoreClient)
	invitationRepo := invitationRepoPkg.NewFirestoreInvitationRepo(utils.FirestoreClient)

	// services.
	messenger, err := notification.NewFCMMessenger(utils.FCMClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize FCM messenger: %v", err)
	}

	dispatcher := &reminder.Dispatcher{
		Reminders: reminderRepo,
		Lists:     listRepo,
		Tokens:    tokenRepo,
		Messenger: messenger,
		Policy: reminder.Policy{
			RetryUndelivered: config.AppConfig.ReminderRetryUndelivered,
		},
		Lookahead: config.ReminderLookahead(),
		Logger:    logger,
	}

	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}

	queueClient := grocliCron.NewQueueClient()
	defer queueClient.Close()

	invitationService := &invitation.DefaultInvitationService{
		Repo:   invitationRepo,
		Queue:  queueClient,
		Logger: logger,
	}

	notifier := &invitation.Notifier{
		Tokens:    tokenRepo,
		Messenger: messenger,
		Logger:    logger,
	}

	// handlers.
	tokenHandler := handlers.NewTokenHandler(tokenRepo)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	authEventHandler := handlers.NewAuthEventHandler(userService)
	dispatchHandler := handlers.NewDispatchHandler(dispatcher)

	handlerBundle := &handlers.HandlerBundle{
		RegisterFCMTokenHandler: tokenHandler.RegisterFCMTokenHandler,
		RemoveFCMTokenHandler:   tokenHandler.RemoveFCMTokenHandler,
		CreateInvitationHandler: invitationHandler.CreateInvitationHandler,
		AuthEventHandler:        authEventHandler.HandleAuthEvent,
		RunDispatchHandler:      dispatchHandler.RunDispatchHandler,
		HealthHandler:           handlers.HealthHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, utils.AuthClient)

	// Background workers.
	grocliCron.InitInvitationWorker(notifier)
	utils.StartHealthMonitor(utils.GetCacheClient(), utils.FirestoreClient)

	scheduler := grocliCron.NewDispatchScheduler(
		dispatcher,
		utils.GetCacheClient(),
		config.AppConfig.ReminderCronSpec,
		logger,
	)
	if err := scheduler.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start dispatch scheduler: %v", err)
	}

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

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
