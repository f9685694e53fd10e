package middleware

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// FailPolicy decides what happens to a request when Redis cannot answer.
type FailPolicy int

const (
	// FailOpen lets the request through.
	FailOpen FailPolicy = iota
	// FailClosed answers 503.
	FailClosed
)

var errNoRedis = errors.New("rate limit: no redis client")

// Decision is the outcome of one rate limit check.
type Decision struct {
	Allowed   bool
	Remaining int
	// RetryAfter is the time left in the current window.
	RetryAfter time.Duration
}

// limiterBypassed reports whether APP_ENV turns limiting off. Unset counts as
// development.
func limiterBypassed() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "test":
		return true
	}
	return false
}

func rateLimitKey(resource, id string) string {
	return "rl:" + resource + ":" + id
}

// CheckRateLimit counts one hit for id against resource in a fixed window of
// length window. The first hit in a window starts its expiry.
func CheckRateLimit(ctx context.Context, rdb *redis.Client, resource, id string, limit int, window time.Duration) (Decision, error) {
	if limiterBypassed() {
		return Decision{Allowed: true, Remaining: limit}, nil
	}
	if rdb == nil {
		return Decision{}, errNoRedis
	}

	key := rateLimitKey(resource, id)
	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		ttl = pipe.TTL(ctx, key)
		return nil
	})
	if err != nil {
		return Decision{}, err
	}

	left := ttl.Val()
	if left < 0 {
		// fresh key, or one that lost its expiry
		if err := rdb.Expire(ctx, key, window).Err(); err != nil {
			return Decision{}, err
		}
		left = window
	}

	count := int(incr.Val())
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:    count <= limit,
		Remaining:  remaining,
		RetryAfter: left,
	}, nil
}

// RateLimit limits each client IP to limit requests per window on the routes
// it guards. Redis failures let requests through.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, name ...string) fiber.Handler {
	return RateLimitWithPolicy(rdb, limit, window, FailOpen, name...)
}

// RateLimitWithPolicy is RateLimit with an explicit FailPolicy. The optional
// name groups several routes under one counter; the path is used otherwise.
func RateLimitWithPolicy(rdb *redis.Client, limit int, window time.Duration, policy FailPolicy, name ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limit <= 0 {
			return c.Next()
		}

		resource := c.Path()
		if len(name) > 0 && name[0] != "" {
			resource = name[0]
		}

		d, err := CheckRateLimit(c.UserContext(), rdb, resource, "ip:"+c.IP(), limit, window)
		if err != nil {
			if policy == FailOpen {
				return c.Next()
			}
			log.Printf("rate limit unavailable for %s: %v", resource, err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "rate limit unavailable",
			})
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		if !d.Allowed {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(d.RetryAfter.Round(time.Second)/time.Second)))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}
		return c.Next()
	}
}
