package client

import (
	"context"
	"time"

	"chat-mvp/backend/internal/models"
	"chat-mvp/backend/pkg/logger"
)

// FetchFunc retrieves the current conversation
type FetchFunc func(ctx context.Context) ([]models.Message, error)

// UpdateFunc receives each successful fetch result
type UpdateFunc func(messages []models.Message)

// Poller re-fetches the conversation on a fixed interval and hands each
// result to the update callback. It is bound to a context: once the context
// is cancelled no further updates are delivered, even for a fetch that was
// already in flight.
type Poller struct {
	interval time.Duration
	fetch    FetchFunc
	update   UpdateFunc
	log      *logger.Logger
}

// NewPoller creates a poller with the given interval
func NewPoller(interval time.Duration, fetch FetchFunc, update UpdateFunc, log *logger.Logger) *Poller {
	return &Poller{
		interval: interval,
		fetch:    fetch,
		update:   update,
		log:      log,
	}
}

// Run polls until the context is cancelled. The first fetch happens
// immediately; failures are logged and the next tick retries, with no
// backoff or jitter.
func (p *Poller) Run(ctx context.Context) {
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	messages, err := p.fetch(ctx)
	if err != nil {
		p.log.Warn("Failed to fetch messages", "error", err.Error())
		return
	}

	// Cancellation is observed before touching shared UI state, so a fetch
	// that raced a teardown is discarded.
	if ctx.Err() != nil {
		return
	}

	p.update(messages)
}
