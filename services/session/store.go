package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const sessionPrefix = "dashSession:"

var ErrNotFound = errors.New("session not found or expired")

// Session is a signed-in provider's dashboard session. It is the explicit
// credential source handed to every resource client.
type Session struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"providerId"`
	Email      string    `json:"email,omitempty"`
	Token      string    `json:"token"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// ProviderToken reports the bearer token, if any.
func (s *Session) ProviderToken() (string, bool) {
	if s == nil || s.Token == "" {
		return "", false
	}
	return s.Token, true
}

// Store persists sessions.
type Store interface {
	Save(ctx context.Context, sess *Session) (string, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps sessions in Redis with a TTL bounded by the token expiry.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Save stores the session, assigning an id when it has none.
func (s *RedisStore) Save(ctx context.Context, sess *Session) (string, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	now := time.Now()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = now
	}

	ttl := s.ttl
	if !sess.ExpiresAt.IsZero() {
		remaining := sess.ExpiresAt.Sub(now)
		if remaining <= 0 {
			return "", fmt.Errorf("session for provider %s already expired", sess.ProviderID)
		}
		if ttl <= 0 || remaining < ttl {
			ttl = remaining
		}
	} else if ttl > 0 {
		sess.ExpiresAt = now.Add(ttl)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionPrefix+sess.ID, data, ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return sess.ID, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	data, err := s.client.Get(ctx, sessionPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionPrefix+id).Err()
}
