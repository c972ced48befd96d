package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/MagloireKITIO/chatbot-file/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLimitedApp(cfg *config.RateLimitConfig) *fiber.App {
	// ProxyHeader lets the tests pick the client IP per request
	app := fiber.New(fiber.Config{ProxyHeader: "X-Forwarded-For"})
	app.Use(RateLimit(cfg, zap.NewNop()))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, ip string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Forwarded-For", ip)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestRateLimitAllowsBurstThenRejects(t *testing.T) {
	app := newLimitedApp(&config.RateLimitConfig{RequestsPerMinute: 60, Burst: 2})

	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "10.0.0.1"))
	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "10.0.0.1"))
	assert.Equal(t, fiber.StatusTooManyRequests, doRequest(t, app, "10.0.0.1"))
}

func TestRateLimitPerIP(t *testing.T) {
	app := newLimitedApp(&config.RateLimitConfig{RequestsPerMinute: 60, Burst: 1})

	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "10.0.0.1"))
	assert.Equal(t, fiber.StatusTooManyRequests, doRequest(t, app, "10.0.0.1"))

	// A different client still has its own budget
	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "10.0.0.2"))
}

func TestRateLimitDefaults(t *testing.T) {
	// Zero config falls back to sane limits instead of blocking everything
	app := newLimitedApp(&config.RateLimitConfig{})
	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "10.0.0.3"))
}
