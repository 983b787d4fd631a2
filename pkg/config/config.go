package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server struct {
		Port    string
		Env     string
		Timeout time.Duration
		BaseURL string
	}

	// Database configuration
	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
		MaxConns int
		Timeout  time.Duration
	}

	// JWT configuration
	JWT struct {
		Secret   string
		Issuer   string
		Audience string
		Expiry   time.Duration
	}

	// Chat holds the fixed two-user allow-list and the password they share
	Chat struct {
		Users          []string
		SharedPassword string
	}

	// Security configuration
	Security struct {
		AllowedOrigin string
	}

	// Logging configuration
	Logging struct {
		Level  string
		Format string
	}

	// Observability configuration
	Observability struct {
		MetricsAddr    string
		TracingEnabled bool
	}

	// Client configuration (polling terminal client)
	Client struct {
		ServerURL    string
		PollInterval time.Duration
	}

	// OpenAPI schema path for request validation (empty disables it)
	OpenAPISchemaPath string
}

var (
	instance *Config
	once     sync.Once
)

// New creates a new Config instance with values from environment variables
// Uses singleton pattern to ensure only one instance exists
func New() *Config {
	once.Do(func() {
		// Load .env file if exists
		godotenv.Load()

		instance = &Config{}

		// Server config
		instance.Server.Port = getEnvString("PORT", "8081")
		instance.Server.Env = getEnvString("APP_ENV", "development")
		instance.Server.Timeout = getEnvDuration("SERVER_TIMEOUT", 30*time.Second)
		instance.Server.BaseURL = getEnvString("BASE_URL", "http://localhost:"+instance.Server.Port)

		// Database config
		instance.Database.Host = getEnvString("DB_HOST", "localhost")
		instance.Database.Port = getEnvString("DB_PORT", "5432")
		instance.Database.User = getEnvString("DB_USER", "postgres")
		instance.Database.Password = getEnvString("DB_PASSWORD", "postgres")
		instance.Database.Name = getEnvString("DB_NAME", "chat-mvp")
		instance.Database.SSLMode = getEnvString("DB_SSL_MODE", "disable")
		instance.Database.MaxConns = getEnvInt("DB_MAX_CONNS", 20)
		instance.Database.Timeout = getEnvDuration("DB_TIMEOUT", 5*time.Second)

		// JWT config
		instance.JWT.Secret = getEnvString("JWT_SECRET", "default-jwt-secret-do-not-use-in-production")
		instance.JWT.Issuer = getEnvString("JWT_ISSUER", "chat-mvp")
		instance.JWT.Audience = getEnvString("JWT_AUDIENCE", "chat-mvp-client")
		instance.JWT.Expiry = getEnvDuration("JWT_EXPIRY", time.Hour)

		// Chat accounts
		instance.Chat.Users = getEnvStringSlice("CHAT_USERS", []string{"aecio", "roberta"})
		instance.Chat.SharedPassword = getEnvString("CHAT_PASSWORD", "123")

		// Security config
		instance.Security.AllowedOrigin = getEnvString("ALLOWED_ORIGIN", "http://localhost:3000")

		// Logging config
		instance.Logging.Level = getEnvString("LOG_LEVEL", "info")
		instance.Logging.Format = getEnvString("LOG_FORMAT", "json")

		// Observability config
		instance.Observability.MetricsAddr = getEnvString("METRICS_ADDR", ":2112")
		instance.Observability.TracingEnabled = getEnvBool("TRACING_ENABLED", false)

		// Client config
		instance.Client.ServerURL = getEnvString("CHAT_SERVER_URL", instance.Server.BaseURL)
		instance.Client.PollInterval = getEnvDuration("POLL_INTERVAL", 3*time.Second)

		// OpenAPI schema
		instance.OpenAPISchemaPath = getEnvString("OPENAPI_SCHEMA_PATH", "")
	})

	return instance
}

// Get returns the singleton Config instance
func Get() *Config {
	if instance == nil {
		return New()
	}
	return instance
}

// Helper functions to read environment variables with default values

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
