package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mandapdash/metrics"
	"mandapdash/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const flashPrefix = "flash:"

// FlashStore keeps a session's notifications in Redis until the dashboard
// polls for them. Each notification is delivered at most once.
type FlashStore struct {
	client    *redis.Client
	sessionID string
	ttl       time.Duration
	logger    *zap.Logger
}

func NewFlashStore(client *redis.Client, sessionID string, ttl time.Duration, logger *zap.Logger) *FlashStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FlashStore{client: client, sessionID: sessionID, ttl: ttl, logger: logger}
}

func (s *FlashStore) key() string {
	return flashPrefix + s.sessionID
}

// Notify appends a notification. Redis failures are logged, never returned:
// a lost toast must not fail the request that produced it.
func (s *FlashStore) Notify(ctx context.Context, level, message string) {
	metrics.Notifications.WithLabelValues(level).Inc()
	data, err := json.Marshal(models.Notification{
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	})
	if err != nil {
		s.logger.Error("Failed to marshal notification", zap.Error(err))
		return
	}
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, s.key(), data)
	pipe.Expire(ctx, s.key(), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Error("Failed to store notification", zap.String("session", s.sessionID), zap.Error(err))
	}
}

// Drain reads and deletes the pending notifications atomically.
func (s *FlashStore) Drain(ctx context.Context) ([]models.Notification, error) {
	pipe := s.client.TxPipeline()
	rng := pipe.LRange(ctx, s.key(), 0, -1)
	pipe.Del(ctx, s.key())
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to drain notifications: %w", err)
	}

	raw := rng.Val()
	out := make([]models.Notification, 0, len(raw))
	for _, item := range raw {
		var n models.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			s.logger.Warn("Skipping corrupt notification", zap.Error(err))
			continue
		}
		out = append(out, n)
	}
	return out, nil
}
