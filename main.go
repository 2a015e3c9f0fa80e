// File: courtside/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"courtside/config"
	"courtside/cron"
	"courtside/database"
	courtRepoPkg "courtside/database/repository/court"
	slotRepoPkg "courtside/database/repository/slot"
	"courtside/handlers"
	"courtside/middleware"
	"courtside/routes"
	courtSvc "courtside/services/court"
	"courtside/services/scheduling"
	"courtside/utils"
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
	router.Use(routes.CORSMiddleware())

	// repositories.
	courtRepo := courtRepoPkg.NewMongoCourtRepo()
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	if err := courtRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create court indexes: %v", err)
	}
	if err := slotRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create slot indexes: %v", err)
	}

	// services.
	courtCache := scheduling.NewCourtCache(utils.GetCacheClient())
	slotService := &scheduling.DefaultSlotService{
		Repo:      slotRepo,
		CourtRepo: courtRepo,
		Cache:     courtCache,
	}
	courtService := &courtSvc.DefaultCourtService{
		Repo:  courtRepo,
		Slots: slotService,
		Cache: courtCache,
	}

	// Background horizon extension.
	cron.InitHorizonWorker(courtRepo, slotService)

	// handlers and routes.
	courtHandler := handlers.NewCourtHandler(courtService)
	slotHandler := handlers.NewSlotHandler(slotService)
	routes.RegisterCourtRoutes(router, courtHandler)
	routes.RegisterSlotRoutes(router, slotHandler)
	routes.RegisterHealthRoute(router)

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
