package redisad

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"realestate_chatbot/internal/adapters/observability"
)

const cacheName = "redis"

type Options struct {
	Addr     string
	Password string
	DB       int
	// Prefix is prepended to every key, e.g. "realestate:".
	Prefix string
}

// Cache stores JSON values in redis. It satisfies domain.Cache.
type Cache struct {
	c      *redis.Client
	prefix string
}

func New(o Options) *Cache {
	return &Cache{
		c:      redis.NewClient(&redis.Options{Addr: o.Addr, Password: o.Password, DB: o.DB}),
		prefix: o.Prefix,
	}
}

// Ping checks connectivity at startup.
func (r *Cache) Ping(ctx context.Context) error { return r.c.Ping(ctx).Err() }

func (r *Cache) Close() error { return r.c.Close() }

func (r *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.c.Get(ctx, r.prefix+key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		observability.ObserveCache(cacheName, "miss")
		return false, nil
	case err != nil:
		observability.ObserveCache(cacheName, "error")
		return false, err
	}
	if err := json.Unmarshal(v, dst); err != nil {
		// undecodable entries count as misses; callers fall back to storage
		observability.ObserveCache(cacheName, "miss")
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	observability.ObserveCache(cacheName, "hit")
	return true, nil
}

func (r *Cache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.c.Set(ctx, r.prefix+key, b, time.Duration(ttlSec)*time.Second).Err(); err != nil {
		observability.ObserveCache(cacheName, "error")
		return err
	}
	observability.ObserveCache(cacheName, "set")
	return nil
}

func (r *Cache) Del(ctx context.Context, key string) error {
	if err := r.c.Del(ctx, r.prefix+key).Err(); err != nil {
		observability.ObserveCache(cacheName, "error")
		return err
	}
	observability.ObserveCache(cacheName, "del")
	return nil
}
