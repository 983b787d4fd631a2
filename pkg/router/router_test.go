package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chat-mvp/backend/internal/models"
	"chat-mvp/backend/internal/repository"
	"chat-mvp/backend/internal/service"
	"chat-mvp/backend/pkg/di"
	"chat-mvp/backend/pkg/jwt"
	"chat-mvp/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memoryRepo is a minimal in-memory message store for routing tests
type memoryRepo struct {
	messages []models.Message
}

func (r *memoryRepo) Create(message *models.Message) error {
	r.messages = append(r.messages, *message)
	return nil
}

func (r *memoryRepo) GetByID(id string) (*models.Message, error) {
	for i := range r.messages {
		if r.messages[i].ID == id {
			return &r.messages[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRepo) GetConversation(userA, userB string) ([]models.Message, error) {
	var result []models.Message
	for _, m := range r.messages {
		if (m.Sender == userA && m.Receiver == userB) || (m.Sender == userB && m.Receiver == userA) {
			result = append(result, m)
		}
	}
	return result, nil
}

var _ repository.MessageRepository = (*memoryRepo)(nil)

func newTestRouter() *Router {
	gin.SetMode(gin.TestMode)

	log := logger.New(logger.Config{Level: "error", JSON: true, Output: io.Discard})
	jwtService := jwt.NewService("test-secret", "chat-mvp", "chat-mvp-client", time.Hour)
	verifier := service.NewFixedUserVerifier([]string{"aecio", "roberta"}, "123")

	container := &di.Container{
		Logger:         log,
		JWTService:     jwtService,
		AuthService:    service.NewAuthService(verifier, jwtService),
		MessageService: service.NewMessageService(&memoryRepo{}),
	}

	r := New(container)
	r.SetupRoutes()
	return r
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter()

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.Engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := newTestRouter()
	origin := r.Config.Security.AllowedOrigin

	req, _ := http.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", origin)
	w := httptest.NewRecorder()
	r.Engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSIgnoresOtherOrigins(t *testing.T) {
	r := newTestRouter()

	req, _ := http.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()
	r.Engine.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	r := newTestRouter()

	req, _ := http.NewRequest(http.MethodGet, "/api/messages/roberta", nil)
	w := httptest.NewRecorder()
	r.Engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
