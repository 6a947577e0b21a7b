package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"tutorial-service/internal/domain/repositories"
)

// RedisCache backs the listing cache with Redis. With a nil client the cache
// degrades to a no-op so the service keeps working without Redis running.
type RedisCache struct {
	client *redis.Client
}

var _ repositories.ListingCache = (*RedisCache)(nil)

// NewRedisCache connects to Redis using the addr/password from configuration.
// A failed ping disables the cache rather than failing startup.
func NewRedisCache(addr, password string, db int) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		fmt.Printf("Warning: Redis connection failed: %v\n", err)
		fmt.Printf("Redis will be disabled. Listing cache invalidation becomes a no-op.\n")
		return &RedisCache{client: nil}
	}

	return &RedisCache{client: client}
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	if r.client == nil {
		return "", redis.Nil
	}
	return r.client.Get(ctx, key).Result()
}

func (r *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisCache) Delete(ctx context.Context, key string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, key).Err()
}

func (r *RedisCache) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
