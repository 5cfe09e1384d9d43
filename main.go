// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	appointmentRepoPkg "medibook/database/repository/appointment"
	doctorRepoPkg "medibook/database/repository/doctor"
	overrideRepoPkg "medibook/database/repository/override"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	appointmentSvc "medibook/services/appointment"
	"medibook/services/notification"
	scheduleSvc "medibook/services/schedule"
	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	overrideRepo := overrideRepoPkg.NewMongoOverrideRepo()

	for name, ensure := range map[string]func() error{
		"doctors":      doctorRepo.EnsureIndexes,
		"appointments": apptRepo.EnsureIndexes,
		"overrides":    overrideRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// Async post-commit event pipeline.
	publisher := cron.NewAsynqPublisher()
	defer publisher.Close()
	cron.InitEventWorker(notification.LogSink{})

	// services.
	engine := &scheduling.DefaultEngine{
		DoctorRepo:      doctorRepo,
		OverrideRepo:    overrideRepo,
		AppointmentRepo: apptRepo,
	}
	appointments := &appointmentSvc.DefaultService{
		Repo:      apptRepo,
		Engine:    engine,
		Publisher: publisher,
		Cache:     utils.GetCacheClient(),
	}
	scheduleService := &scheduleSvc.DefaultService{
		DoctorRepo:      doctorRepo,
		OverrideRepo:    overrideRepo,
		AppointmentRepo: apptRepo,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(engine, appointments, scheduleService, doctorRepo)
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
