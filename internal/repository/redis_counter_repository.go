package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultCallTimeout bounds each remote counter call so a slow Redis cannot
// stall request handling; the caller sees the timeout as an error.
const defaultCallTimeout = 3 * time.Second

// RedisConfig holds connection settings for the Redis counter repository.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisCounterRepository backs counters with a shared Redis instance, the
// durable choice for multi-instance deployments: INCR is atomic across all
// replicas.
type RedisCounterRepository struct {
	client  *redis.Client
	timeout time.Duration
}

// NewRedisCounterRepository connects to Redis and verifies the connection.
func NewRedisCounterRepository(cfg RedisConfig) (*RedisCounterRepository, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisCounterRepository{client: client, timeout: defaultCallTimeout}, nil
}

// Close releases the underlying connection pool.
func (r *RedisCounterRepository) Close() error {
	return r.client.Close()
}

// IncrementAndGet implements CounterRepository. Increment and expiry are two
// round trips; the expiry is set right after the increment that created the
// key. A crash between the two leaves a key without TTL, but keys are
// date-bucketed and fall out of use the next day, so the leak stays bounded.
func (r *RedisCounterRepository) IncrementAndGet(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("increment %s: %w", key, err)
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, ttl).Err(); err != nil {
			return 0, fmt.Errorf("set expiry on %s: %w", key, err)
		}
	}
	return count, nil
}
