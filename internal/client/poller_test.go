package client

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"chat-mvp/backend/internal/models"
	"chat-mvp/backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", JSON: true, Output: io.Discard})
}

func TestPollerFetchesImmediatelyAndOnTicks(t *testing.T) {
	var mu sync.Mutex
	var updates [][]models.Message

	fetch := func(ctx context.Context) ([]models.Message, error) {
		return []models.Message{{ID: "1", Content: "hi"}}, nil
	}
	update := func(messages []models.Message) {
		mu.Lock()
		defer mu.Unlock()
		updates = append(updates, messages)
	}

	p := NewPoller(20*time.Millisecond, fetch, update, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	// Enough time for the immediate fetch plus at least one tick
	time.Sleep(70 * time.Millisecond)
	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(updates), 2)
	assert.Equal(t, "hi", updates[0][0].Content)
}

func TestPollerKeepsPollingAfterFetchFailure(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	updateCount := 0

	fetch := func(ctx context.Context) ([]models.Message, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == 1 {
			return nil, assert.AnError
		}
		return []models.Message{}, nil
	}
	update := func(messages []models.Message) {
		mu.Lock()
		defer mu.Unlock()
		updateCount++
	}

	p := NewPoller(20*time.Millisecond, fetch, update, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	time.Sleep(70 * time.Millisecond)
	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	// First fetch failed silently; later ticks still delivered updates
	assert.GreaterOrEqual(t, calls, 2)
	assert.GreaterOrEqual(t, updateCount, 1)
}

func TestPollerDiscardsInFlightResultAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	fetchStarted := make(chan struct{})
	fetch := func(ctx context.Context) ([]models.Message, error) {
		close(fetchStarted)
		// Simulate a slow response racing the teardown
		time.Sleep(30 * time.Millisecond)
		return []models.Message{{ID: "late"}}, nil
	}

	updated := false
	update := func(messages []models.Message) {
		updated = true
	}

	p := NewPoller(time.Hour, fetch, update, testLogger())

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	<-fetchStarted
	cancel()
	<-done

	assert.False(t, updated, "update must not run after cancellation")
}
