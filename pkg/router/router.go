package router

import (
	"path/filepath"
	"time"

	"chat-mvp/backend/internal/api"
	"chat-mvp/backend/pkg/config"
	"chat-mvp/backend/pkg/di"
	"chat-mvp/backend/pkg/errors"
	"chat-mvp/backend/pkg/logger"
	"chat-mvp/backend/pkg/middleware"
	"chat-mvp/backend/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Router is the main router for the application
type Router struct {
	Engine    *gin.Engine
	Container *di.Container
	Logger    *logger.Logger
	Config    *config.Config
}

// New creates a new router with the given container
func New(container *di.Container) *Router {
	logger.SetGlobal(container.Logger)

	cfg := config.Get()

	// Configure Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Logger middleware first to capture all requests
	engine.Use(logger.Middleware(container.Logger))

	// Error handler turns c.Error(...) into JSON responses
	engine.Use(errors.ErrorHandler())

	// Recovery middleware with structured logging instead of gin's default
	engine.Use(errors.RecoveryWithLogger())

	return &Router{
		Engine:    engine,
		Container: container,
		Logger:    container.Logger,
		Config:    cfg,
	}
}

// SetupRoutes registers all application routes
func (r *Router) SetupRoutes() {
	r.Engine.Use(corsMiddleware(r.Config.Security.AllowedOrigin))

	jwtAuth := middleware.JWTAuthMiddleware(r.Container.JWTService, r.Logger)

	authHandler := api.NewAuthHandler(r.Container.AuthService, r.Logger)
	messageHandler := api.NewMessageHandler(r.Container.MessageService, r.Logger)

	r.Engine.GET("/health", r.healthCheckHandler())

	apiGroup := r.Engine.Group("/api")
	{
		// Login is the only unauthenticated endpoint
		apiGroup.POST("/auth/login", authHandler.Login)

		messageRoutes := apiGroup.Group("/messages")
		messageRoutes.Use(jwtAuth)
		{
			messageRoutes.POST("", messageHandler.SendMessage)
			messageRoutes.GET("/:otherUser", messageHandler.GetConversation)
		}
	}
}

// AddOpenAPIValidation enables request validation against the given schema
// and serves the schema file under /api/docs. Must be called before
// SetupRoutes so the middleware covers the API routes.
func (r *Router) AddOpenAPIValidation(schemaPath string) error {
	v, err := validator.NewOpenAPIValidator(schemaPath)
	if err != nil {
		return err
	}
	r.Engine.Use(v.Middleware())

	r.Engine.Static("/api/docs", filepath.Dir(schemaPath))
	r.Logger.Info("OpenAPI validation enabled", "schema", schemaPath)
	return nil
}

// healthCheckHandler returns a simple health check handler
func (r *Router) healthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    r.Config.Server.Env,
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// corsMiddleware allows exactly one origin (the client's) with credentials,
// any method and any header
func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == allowedOrigin {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

			headers := c.Request.Header.Get("Access-Control-Request-Headers")
			if headers == "" {
				headers = "Content-Type, Authorization"
			}
			c.Writer.Header().Set("Access-Control-Allow-Headers", headers)
			c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
