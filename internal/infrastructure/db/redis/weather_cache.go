package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 5 * time.Minute

// WeatherCache stores raw provider payloads keyed by city so that repeated
// lookups within the TTL skip the upstream call.
// Key format: weather:<city>
type WeatherCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewWeatherCache creates a WeatherCache wrapping the given Redis client.
// If ttl <= 0, defaultCacheTTL is used.
func NewWeatherCache(client *redis.Client, ttl time.Duration) *WeatherCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &WeatherCache{client: client, ttl: ttl}
}

// Get returns the cached payload for city, reporting whether one was found.
func (c *WeatherCache) Get(ctx context.Context, city string) (json.RawMessage, bool, error) {
	payload, err := c.client.Get(ctx, c.key(city)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return payload, true, nil
}

// Set records the payload for city (expires after the configured TTL).
func (c *WeatherCache) Set(ctx context.Context, city string, payload json.RawMessage) error {
	return c.client.Set(ctx, c.key(city), []byte(payload), c.ttl).Err()
}

func (c *WeatherCache) key(city string) string {
	return "weather:" + city
}
