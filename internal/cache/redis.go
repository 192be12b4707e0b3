package cache

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/d60-Lab/yatube/internal/metrics"
	"github.com/d60-Lab/yatube/pkg/logger"
)

// RedisCache keeps pages in Redis with a fixed TTL. Calls go through a
// circuit breaker so an unavailable Redis costs nothing once the breaker opens.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	name   string
	cb     *gobreaker.CircuitBreaker[[]byte]
}

// NewRedisCache wraps client. name labels metrics and logs.
func NewRedisCache(client *redis.Client, name string, ttl time.Duration) *RedisCache {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("cache circuit breaker state change",
				zap.String("cache", name), zap.String("from", from.String()), zap.String("to", to.String()))
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
	})
	return &RedisCache{client: client, ttl: ttl, name: name, cb: cb}
}

func (c *RedisCache) Load(ctx context.Context, key string, dst interface{}) bool {
	data, err := c.cb.Execute(func() ([]byte, error) {
		return c.client.Get(ctx, key).Bytes()
	})
	switch {
	case errors.Is(err, redis.Nil):
		metrics.CacheRequests.WithLabelValues(c.name, "miss").Inc()
		return false
	case err != nil:
		metrics.CacheRequests.WithLabelValues(c.name, "error").Inc()
		logger.Debug("cache load failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		metrics.CacheRequests.WithLabelValues(c.name, "error").Inc()
		logger.Warn("cache payload corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	metrics.CacheRequests.WithLabelValues(c.name, "hit").Inc()
	return true
}

func (c *RedisCache) Store(ctx context.Context, key string, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	_, err = c.cb.Execute(func() ([]byte, error) {
		return nil, c.client.Set(ctx, key, payload, c.ttl).Err()
	})
	if err != nil {
		logger.Debug("cache store failed", zap.String("key", key), zap.Error(err))
	}
}

// State exposes the breaker state for health reporting.
func (c *RedisCache) State() gobreaker.State { return c.cb.State() }

// NewRedisClient opens a client and verifies connectivity.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
