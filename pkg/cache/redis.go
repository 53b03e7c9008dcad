// Package cache holds the shared Redis client. rasoi uses Redis only for
// rate-limiter counters; when Redis is unreachable the limiter falls back to
// its in-memory buckets, so Connect failures are non-fatal.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shashiranjanraj/rasoi/config"
)

var RDB *redis.Client

// Connect initialises the Redis client and verifies the connection with a
// ping. On failure RDB stays nil and callers degrade gracefully.
func Connect() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("cache: redis ping: %w", err)
	}

	RDB = client
	return nil
}

// Available reports whether a Redis connection is established.
func Available() bool { return RDB != nil }
