package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bmahler/estate-portal/api/internal/config"
	"github.com/bmahler/estate-portal/api/internal/database"
	"github.com/bmahler/estate-portal/api/internal/handlers"
	"github.com/bmahler/estate-portal/api/internal/logger"
	"github.com/bmahler/estate-portal/api/internal/metrics"
	"github.com/bmahler/estate-portal/api/internal/middleware"
	"github.com/bmahler/estate-portal/api/internal/repository"
	"github.com/bmahler/estate-portal/api/internal/services"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration from .env / environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting Real Estate Portal API", map[string]interface{}{
		"version":     "1.0.0",
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
		"table":       cfg.Database.Table,
	})

	// Create database connection pool
	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"table":    cfg.Database.Table,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Middleware in order: RequestID -> Logger -> Recovery -> CORS -> Metrics
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))
	router.Use(middleware.Metrics())

	// Initialize repository and service layers
	inquiryRepo := repository.NewInquiryRepository(db, cfg.Database.Table)
	inquiryService := services.NewInquiryService(inquiryRepo, log)

	// Initialize handlers
	inquiryHandler := handlers.NewInquiryHandler(inquiryService, cfg.Database.Table)
	healthHandler := handlers.NewHealthHandler(db, inquiryRepo)

	// Health and metrics routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API routes
	api := router.Group("/api")
	{
		api.GET("", inquiryHandler.Docs)
		api.GET("/schema", inquiryHandler.Schema)

		inquiries := api.Group("/inquiries")
		{
			inquiries.GET("", inquiryHandler.List)
			inquiries.GET("/:id", inquiryHandler.Get)
			inquiries.POST("", inquiryHandler.Create)
			inquiries.DELETE("/:id", inquiryHandler.Delete)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"addr": srv.Addr,
			"endpoints": []string{
				"GET /api/inquiries",
				"GET /api/inquiries/:id",
				"POST /api/inquiries",
				"DELETE /api/inquiries/:id",
				"GET /api/schema",
				"GET /api",
			},
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
