package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "contribution-rewards-backend/internal/api/http"
	"contribution-rewards-backend/internal/config"
	"contribution-rewards-backend/internal/logger"
	"contribution-rewards-backend/internal/metrics"
	"contribution-rewards-backend/internal/repository/postgres"
	"contribution-rewards-backend/internal/security"
	"contribution-rewards-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Contribution Rewards Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "timezone", cfg.Ledger.Timezone)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if cfg.Database.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	userSvc := service.NewUserService(store.UserRepository, nil)
	categorySvc := service.NewCategoryService(store.CategoryRepository)
	ledgerSvc := service.NewLedgerService(store.UserRepository, store.CategoryRepository, store.ActivityRepository, store.EncashmentRepository, nil)
	statsSvc := service.NewStatsService(store.UserRepository, store.ActivityRepository, store.EncashmentRepository, cfg.Location(), nil)
	profileSvc := service.NewProfileService(store.UserRepository, store.ProfileChangeRepository, nil)
	adminSvc := service.NewAdminService(store.UserRepository, store.AdminRepository, cfg.Admin.SampleEmailPatterns)

	if cfg.Database.SeedCatalog {
		if _, err := categorySvc.SeedCatalog(context.Background()); err != nil {
			logger.Error("Failed to seed activity categories", "error", err)
			log.Fatalf("Failed to seed activity categories: %v", err)
		}
	}

	// Initialize HTTP API
	metrics.Init()
	handler := httpapi.NewHandler(userSvc, categorySvc, ledgerSvc, statsSvc, profileSvc, adminSvc)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		TokenManager:      security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience),
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		TrustForwardedFor: cfg.RateLimit.TrustForwardedFor,
		MaxBodyBytes:      cfg.Server.MaxBodyBytes,
		Ready:             store.Ping,
	})

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped. Goodbye!")
}
