package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PostsListPrefix prefixes every cached post listing.
const PostsListPrefix = "posts:list"

// PostsListNamespace scopes the listing cache to one store. Stores whose
// records live only in this process pass their instance id.
func PostsListNamespace(backend, instance string) string {
	if instance == "" {
		return PostsListPrefix + ":" + backend
	}
	return PostsListPrefix + ":" + backend + ":" + instance
}

// PostsListKey returns the listing key for the current generation of
// namespace. InvalidatePostsList bumps the generation, so a listing loaded
// before a mutation and written back after it is never read. An empty key
// means the generation could not be read and the cache must be skipped.
func PostsListKey(ctx context.Context, namespace string) string {
	c := GetClient()
	if c == nil {
		return namespace + ":0"
	}
	gen, err := c.Get(ctx, namespace+":gen").Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return ""
	}
	return fmt.Sprintf("%s:%d", namespace, gen)
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	c := GetClient()
	if c == nil {
		return false, nil
	}
	s, err := c.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	c := GetClient()
	if c == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first; on a miss (or a Redis failure) it calls fetch,
// which must populate dest, and stores the result with ttl. A ttl of zero
// bypasses the cache entirely.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	if ttl <= 0 {
		return fetch()
	}

	found, err := GetJSON(ctx, key, dest)
	if err == nil && found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	_ = SetJSON(ctx, key, dest, ttl)
	return nil
}

// Invalidate removes key from the cache.
func Invalidate(ctx context.Context, key string) {
	if c := GetClient(); c != nil {
		c.Del(ctx, key)
	}
}

// InvalidatePostsList retires the cached listing of namespace after a store
// mutation or at startup.
func InvalidatePostsList(ctx context.Context, namespace string) {
	c := GetClient()
	if c == nil {
		return
	}
	key := PostsListKey(ctx, namespace)
	if err := c.Incr(ctx, namespace+":gen").Err(); err != nil {
		return
	}
	if key != "" {
		c.Del(ctx, key)
	}
}
