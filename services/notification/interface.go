package notification

import (
	"context"
	"sync"
	"time"

	"mandapdash/metrics"
	"mandapdash/models"
)

// Notifier is the one-shot channel that surfaces toasts to the provider.
type Notifier interface {
	Notify(ctx context.Context, level, message string)
}

// Drainer returns the pending notifications and forgets them.
type Drainer interface {
	Drain(ctx context.Context) ([]models.Notification, error)
}

// Collector is an in-memory notifier scoped to a single request.
type Collector struct {
	mu    sync.Mutex
	items []models.Notification
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Notify(_ context.Context, level, message string) {
	metrics.Notifications.WithLabelValues(level).Inc()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, models.Notification{
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

func (c *Collector) Drain(_ context.Context) ([]models.Notification, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.items
	c.items = nil
	return out, nil
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Notify(context.Context, string, string) {}
