package middleware

import (
	"sync"
	"time"

	"github.com/MagloireKITIO/chatbot-file/pkg/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// How long an idle client keeps its limiter before eviction.
const visitorTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit caps requests per client IP with a token bucket refilled at
// the configured per-minute rate. Excess requests get a 429.
func RateLimit(cfg *config.RateLimitConfig, logger *zap.Logger) fiber.Handler {
	perMinute := cfg.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = 30
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Limit(float64(perMinute) / 60.0)

	var mu sync.Mutex
	visitors := make(map[string]*visitor)

	cleanup := func(now time.Time) {
		for ip, v := range visitors {
			if now.Sub(v.lastSeen) > visitorTTL {
				delete(visitors, ip)
			}
		}
	}

	return func(c *fiber.Ctx) error {
		ip := c.IP()
		now := time.Now()

		mu.Lock()
		v, ok := visitors[ip]
		if !ok {
			cleanup(now)
			v = &visitor{limiter: rate.NewLimiter(limit, burst)}
			visitors[ip] = v
		}
		v.lastSeen = now
		mu.Unlock()

		if !v.limiter.Allow() {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded",
			})
		}

		return c.Next()
	}
}
