// File: sewakit/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sewakit/config"
	"sewakit/database"
	catalogRepo "sewakit/database/repository/catalog"
	"sewakit/handlers"
	"sewakit/middleware"
	"sewakit/routes"
	"sewakit/services/catalog"
	"sewakit/services/wizard"
	"sewakit/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	defer database.CloseDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catRepo := catalogRepo.NewMongoCatalogRepo()
	if err := catRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure catalog indexes: %v", err)
	}

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:     catRepo,
		Cache:    utils.GetCatalogCacheClient(),
		CacheTTL: 5 * time.Minute,
	}

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	wizardService := &wizard.DefaultWizardService{
		Store:      wizard.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL),
		CatalogSvc: catalogService,
		Gateway:    wizard.NewAPISubmissionGateway(config.AppConfig.BookingAPIURL),
	}

	wizardHandler := handlers.NewWizardHandler(wizardService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)

	routes.RegisterRoutes(router, wizardHandler, catalogHandler)

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
