// File: evently/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"evently/config"
	"evently/handlers"
	"evently/middleware"
	"evently/routes"
	"evently/services/booking"
	"evently/services/catalog"
	"evently/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Session store.
	var store booking.SessionStore
	switch config.AppConfig.SessionStore {
	case config.SessionStoreRedis:
		if err := utils.InitSessionCache(); err != nil {
			logger.Sugar().Fatalf("main: failed to initialize session cache: %v", err)
		}
		store = booking.NewRedisStore(utils.GetSessionCacheClient(), config.AppConfig.SessionTTL)
	case config.SessionStoreMemory, "":
		memStore := booking.NewMemoryStore(config.AppConfig.SessionTTL)
		memStore.StartJanitor(ctx, time.Minute)
		store = memStore
	default:
		logger.Sugar().Fatalf("main: unknown SESSION_STORE %q", config.AppConfig.SessionStore)
	}
	defer func() {
		if err := utils.CloseSessionCache(); err != nil {
			logger.Warn("main: failed to close session cache", zap.Error(err))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := utils.NewBookingMetrics(registry)

	// services.
	catalogService := catalog.NewSeedCatalogService()
	bookingService := &booking.DefaultBookingSessionService{
		Catalog:   catalogService,
		Store:     store,
		Finalizer: booking.SimulatedFinalizer{Delay: config.AppConfig.SubmitDelay},
		Logger:    logger,
		Metrics:   metrics,
	}

	catalogHandler := handlers.NewCatalogHandler(catalogService, metrics, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	metricsHandler := gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	handlerBundle := handlers.NewHandlerBundle(catalogHandler, bookingHandler, routes.HealthHandler, metricsHandler)

	utils.StartHealthMonitor(ctx, 30*time.Second, map[string]utils.HealthCheck{
		"sessionStore": store.Ping,
	})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.Origins())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s (session store: %s)...", srv.Addr, config.AppConfig.SessionStore)
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
	stop()

	// In-flight submissions hold their request open for the submit delay.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second+config.AppConfig.SubmitDelay)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
		return
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
