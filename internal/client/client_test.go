package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chat-mvp/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(models.LoginResponse{Token: "fake-token"})
	})

	mux.HandleFunc("POST /api/messages", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fake-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var req models.SendMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Message{
			ID:        "m1",
			Sender:    "aecio",
			Receiver:  req.Receiver,
			Content:   req.Content,
			Timestamp: time.Now().UTC(),
		})
	})

	mux.HandleFunc("GET /api/messages/{otherUser}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fake-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode([]models.Message{
			{ID: "m1", Sender: "roberta", Receiver: "aecio", Content: "oi"},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientLoginStoresToken(t *testing.T) {
	srv := newFakeServer(t)
	c := New(srv.URL)

	err := c.Login(context.Background(), "aecio", "123")
	require.NoError(t, err)
	assert.Equal(t, "fake-token", c.token)
}

func TestClientLoginFailure(t *testing.T) {
	srv := newFakeServer(t)
	c := New(srv.URL)

	err := c.Login(context.Background(), "aecio", "wrong")
	assert.Error(t, err)
	assert.Empty(t, c.token)
}

func TestClientSendUsesBearerToken(t *testing.T) {
	srv := newFakeServer(t)
	c := New(srv.URL)

	// Without a token the server answers 401 and Send surfaces it
	err := c.Send(context.Background(), "roberta", "hi")
	assert.Error(t, err)

	require.NoError(t, c.Login(context.Background(), "aecio", "123"))
	assert.NoError(t, c.Send(context.Background(), "roberta", "hi"))
}

func TestClientConversation(t *testing.T) {
	srv := newFakeServer(t)
	c := New(srv.URL)

	require.NoError(t, c.Login(context.Background(), "aecio", "123"))

	messages, err := c.Conversation(context.Background(), "roberta")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "oi", messages[0].Content)
}
