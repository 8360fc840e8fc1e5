package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mandapdash/api"
	"mandapdash/config"
	"mandapdash/handlers"
	"mandapdash/middleware"
	"mandapdash/routes"
	"mandapdash/services/session"
	"mandapdash/utils"

	"github.com/gin-gonic/gin"
)

const healthCheckInterval = 60 * time.Second

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	cfg := config.AppConfig
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	redisClient := utils.GetSessionCacheClient()
	sessionStore := session.NewRedisStore(redisClient, cfg.SessionTTL)

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()
	utils.StartHealthMonitor(rootCtx, redisClient, cfg.BackendBaseURL, healthCheckInterval)

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	clients := handlers.BackendClients{Config: api.Config{
		BaseURL: cfg.BackendBaseURL,
		Timeout: cfg.BackendTimeout,
		Logger:  logger,
	}}
	sessionHandler := handlers.NewSessionHandler(sessionStore, cfg.JWTSecret, config.IsProduction())
	sessionMiddleware := middleware.SessionMiddleware(sessionStore, redisClient, cfg.SessionTTL, cfg.JWTSecret)

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(clients, sessionHandler, sessionMiddleware)

	routes.RegisterRoutes(router, handlerBundle, routes.ParseOrigins(cfg.AllowedOrigins))

	port := cfg.AppPort
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
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
