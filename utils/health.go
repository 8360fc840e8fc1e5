package utils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	Backend   bool      `json:"backend"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Healthy reports whether every dependency answered.
func (h HealthStatus) Healthy() bool {
	return h.Redis && h.Backend
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth pings Redis and the backend once and stores the result. Any
// HTTP answer from the backend counts as reachable.
func CheckHealth(ctx context.Context, redisClient *redis.Client, backendURL string, httpClient *http.Client) HealthStatus {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	status := HealthStatus{CheckedAt: time.Now()}
	if redisClient != nil {
		status.Redis = redisClient.Ping(ctx).Err() == nil
	}
	if req, err := http.NewRequestWithContext(ctx, http.MethodGet, backendURL, nil); err == nil {
		if resp, err := httpClient.Do(req); err == nil {
			resp.Body.Close()
			status.Backend = true
		}
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, redisClient *redis.Client, backendURL string, interval time.Duration) {
	go func() {
		CheckHealth(ctx, redisClient, backendURL, nil)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, redisClient, backendURL, nil)
			}
		}
	}()
}
