package weather

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 10 * time.Minute

// Cache guarda reportes por localidad para ahorrar llamadas al proveedor.
type Cache interface {
	Get(ctx context.Context, location string) (Report, bool)
	Set(ctx context.Context, location string, report Report)
}

type redisGetSetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisCache struct {
	client redisGetSetter
	ttl    time.Duration
}

// NewRedisCache crea un cache de reportes respaldado por Redis.
func NewRedisCache(client *redis.Client) Cache {
	return &redisCache{client: client, ttl: cacheTTL}
}

func (c *redisCache) Get(ctx context.Context, location string) (Report, bool) {
	raw, err := c.client.Get(ctx, cacheKey(location)).Bytes()
	if err != nil {
		return Report{}, false
	}
	var report Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return Report{}, false
	}
	if len(report.Current) == 0 {
		return Report{}, false
	}
	return report, true
}

func (c *redisCache) Set(ctx context.Context, location string, report Report) {
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKey(location), raw, c.ttl)
}

func cacheKey(location string) string {
	return "weather:current:" + location
}

type cachedClient struct {
	inner Client
	cache Cache
}

// NewCachedClient envuelve un Client con un cache; los fallos de cache caen
// siempre a la consulta en vivo.
func NewCachedClient(inner Client, cache Cache) Client {
	if cache == nil {
		return inner
	}
	return &cachedClient{inner: inner, cache: cache}
}

func (c *cachedClient) Current(ctx context.Context, location string) (Report, error) {
	if report, ok := c.cache.Get(ctx, location); ok {
		return report, nil
	}
	report, err := c.inner.Current(ctx, location)
	if err != nil {
		return Report{}, err
	}
	c.cache.Set(ctx, location, report)
	return report, nil
}
