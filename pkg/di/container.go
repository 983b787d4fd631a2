package di

import (
	"time"

	"chat-mvp/backend/internal/repository"
	"chat-mvp/backend/internal/service"
	"chat-mvp/backend/pkg/jwt"
	"chat-mvp/backend/pkg/logger"

	"gorm.io/gorm"
)

// Container holds all the dependencies for the application
type Container struct {
	DB                *gorm.DB
	Logger            *logger.Logger
	JWTService        *jwt.Service
	AuthService       *service.AuthService
	MessageService    *service.MessageService
	MessageRepository repository.MessageRepository
}

// Config holds the configuration for the container
type Config struct {
	LoggerConfig logger.Config
	JWTSecret    string
	JWTIssuer    string
	JWTAudience  string
	JWTExpiry    int // hours
	ChatUsers    []string
	ChatPassword string
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		LoggerConfig: logger.DefaultConfig(),
		JWTIssuer:    "chat-mvp",
		JWTAudience:  "chat-mvp-client",
		JWTExpiry:    1,
		ChatUsers:    []string{"aecio", "roberta"},
		ChatPassword: "123",
	}
}

// New creates a new dependency injection container
func New(db *gorm.DB, config *Config) *Container {
	if config == nil {
		config = DefaultConfig()
	}

	log := logger.New(config.LoggerConfig)

	jwtService := jwt.NewService(
		config.JWTSecret,
		config.JWTIssuer,
		config.JWTAudience,
		time.Duration(config.JWTExpiry)*time.Hour,
	)

	verifier := service.NewFixedUserVerifier(config.ChatUsers, config.ChatPassword)
	authService := service.NewAuthService(verifier, jwtService)

	messageRepo := repository.NewGormMessageRepository(db)
	messageService := service.NewMessageService(messageRepo)

	return &Container{
		DB:                db,
		Logger:            log,
		JWTService:        jwtService,
		AuthService:       authService,
		MessageService:    messageService,
		MessageRepository: messageRepo,
	}
}
