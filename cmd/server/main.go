package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chat-mvp/backend/internal/models"
	"chat-mvp/backend/pkg/config"
	"chat-mvp/backend/pkg/di"
	"chat-mvp/backend/pkg/logger"
	"chat-mvp/backend/pkg/observability"
	"chat-mvp/backend/pkg/router"
	"chat-mvp/backend/pkg/secrets"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.New()

	// Initialize structured logger
	logConfig := logger.DefaultConfig()
	logConfig.Level = cfg.Logging.Level
	logConfig.JSON = cfg.Logging.Format != "text"

	appLog := logger.New(logConfig)
	logger.SetGlobal(appLog)

	appLog.Info("Starting chat server", "env", cfg.Server.Env)

	// Resolve the JWT signing key through the secrets manager (Vault when
	// enabled, environment otherwise)
	secretsManager, err := secrets.NewVaultManager(appLog)
	if err != nil {
		appLog.LogError(err, "Failed to initialize secrets manager")
		os.Exit(1)
	}
	jwtSecret := secretsManager.GetSecretWithDefault(context.Background(), "jwt-secret", cfg.JWT.Secret)

	// Observability: Prometheus metrics always, tracing opt-in
	if _, err := observability.SetupMetrics(cfg.Observability.MetricsAddr); err != nil {
		appLog.LogError(err, "Failed to initialize metrics exporter")
	}
	if cfg.Observability.TracingEnabled {
		shutdownTracing, err := observability.SetupTracing("chat-mvp-backend")
		if err != nil {
			appLog.LogError(err, "Failed to initialize tracing")
		} else {
			defer shutdownTracing()
		}
	}

	// Initialize database
	db, err := config.NewDB()
	if err != nil {
		appLog.LogError(err, "Failed to initialize database")
		os.Exit(1)
	}

	// Auto-create the messages table on first startup
	if err := db.AutoMigrate(&models.Message{}); err != nil {
		appLog.LogError(err, "Failed to migrate database")
		os.Exit(1)
	}

	// Initialize dependency injection container
	diConfig := di.DefaultConfig()
	diConfig.LoggerConfig = logConfig
	diConfig.JWTSecret = jwtSecret
	diConfig.JWTIssuer = cfg.JWT.Issuer
	diConfig.JWTAudience = cfg.JWT.Audience
	diConfig.JWTExpiry = int(cfg.JWT.Expiry.Hours())
	diConfig.ChatUsers = cfg.Chat.Users
	diConfig.ChatPassword = cfg.Chat.SharedPassword

	container := di.New(db, diConfig)

	// Initialize router; OpenAPI validation must come before route setup
	r := router.New(container)
	if cfg.OpenAPISchemaPath != "" {
		if err := r.AddOpenAPIValidation(cfg.OpenAPISchemaPath); err != nil {
			appLog.LogError(err, "Failed to enable OpenAPI validation", "schema", cfg.OpenAPISchemaPath)
		}
	}
	r.SetupRoutes()

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r.Engine,
	}

	// Start the server in a goroutine
	go func() {
		appLog.Info("Server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.LogError(err, "Server failed to start")
			os.Exit(1)
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLog.LogError(err, "Server forced to shutdown")
	}

	appLog.Info("Server exited gracefully")
}
