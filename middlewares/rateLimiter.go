package middlewares

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"tenantguard-be/apierrors"
)

// RateWindow is the period a daily limit applies to.
const RateWindow = 24 * time.Hour

// Limiter counts hits per key over RateWindow.
type Limiter interface {
	// Allow records a hit for key. When the limit is exceeded it returns
	// false and how long until the key may try again.
	Allow(ctx context.Context, key string, limit int) (bool, time.Duration, error)
}

// RedisLimiter is a fixed-window counter shared by every instance of the
// server: INCR on first hit sets a RateWindow expiry.
type RedisLimiter struct {
	client redis.Cmdable
	prefix string
}

func NewRedisLimiter(client redis.Cmdable, prefix string) *RedisLimiter {
	return &RedisLimiter{client: client, prefix: prefix}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int) (bool, time.Duration, error) {
	redisKey := l.prefix + ":" + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("redis incr %s: %w", redisKey, err)
	}

	// First hit opens the window.
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, RateWindow).Err(); err != nil {
			return false, 0, fmt.Errorf("redis expire %s: %w", redisKey, err)
		}
	}

	if count > int64(limit) {
		retryAfter, err := l.client.TTL(ctx, redisKey).Result()
		if err != nil || retryAfter < 0 {
			retryAfter = RateWindow
		}
		return false, retryAfter, nil
	}
	return true, 0, nil
}

// MemoryLimiter is a per-process token bucket used when Redis is not
// configured. Each key refills limit tokens per RateWindow. A bucket idle for
// a whole RateWindow is full again, so it is dropped on the next sweep.
type MemoryLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*memoryBucket
	lastSweep time.Time
	now       func() time.Time
}

type memoryBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// sweepInterval bounds how often idle buckets are looked for.
const sweepInterval = 10 * time.Minute

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{buckets: make(map[string]*memoryBucket), now: time.Now}
}

func (l *MemoryLimiter) bucket(key string, limit int, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= sweepInterval {
		for k, b := range l.buckets {
			if now.Sub(b.lastSeen) >= RateWindow {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[key]
	if !ok {
		every := RateWindow / time.Duration(limit)
		b = &memoryBucket{limiter: rate.NewLimiter(rate.Every(every), limit)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter
}

// Len is the number of keys currently tracked.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *MemoryLimiter) Allow(_ context.Context, key string, limit int) (bool, time.Duration, error) {
	now := l.now()
	r := l.bucket(key, limit, now).ReserveN(now, 1)
	if !r.OK() {
		return false, RateWindow, nil
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay, nil
	}
	return true, 0, nil
}

// KeyFunc extracts the rate limit subject of a request; "" skips limiting.
type KeyFunc func(c *gin.Context) string

// ByUser keys on the authenticated user and must run after RequireAuth.
func ByUser(scope string) KeyFunc {
	return func(c *gin.Context) string {
		if identity, ok := CurrentIdentity(c); ok {
			return scope + ":user:" + identity.ID.Hex()
		}
		return ""
	}
}

// ByClient keys on the authenticated user when present, else on client IP.
// The IP only honours forwarding headers from the engine's trusted proxies.
func ByClient(scope string) KeyFunc {
	return func(c *gin.Context) string {
		if identity, ok := CurrentIdentity(c); ok {
			return scope + ":user:" + identity.ID.Hex()
		}
		return scope + ":ip:" + c.ClientIP()
	}
}

// RateLimit allows at most limit requests per key per RateWindow.
func RateLimit(limiter Limiter, key KeyFunc, limit int, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		k := key(c)
		if k == "" {
			c.Next()
			return
		}

		allowed, retryAfter, err := limiter.Allow(c.Request.Context(), k, limit)
		if err != nil {
			logger.Error("rate limiter failed", "key", k, "error", err)
			_ = c.Error(apierrors.Internal("rate limiter unavailable", err))
			c.Abort()
			return
		}

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			_ = c.Error(apierrors.TooManyRequests("rate limit exceeded"))
			c.Abort()
			return
		}

		c.Next()
	}
}
