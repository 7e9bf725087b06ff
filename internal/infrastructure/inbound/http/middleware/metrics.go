package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/inbound/http/response"
)

// Metrics records request counts and latency per route template.
func Metrics(metrics ports.MetricsProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status, _ = response.Map(err)
		}

		route := c.Route().Path
		if route == "" || route == "/" {
			route = "unmatched"
		}

		metrics.IncrementHTTPRequests(c.Method(), route, status)
		metrics.RecordHTTPRequestDuration(c.Method(), route, status, time.Since(start))
		return err
	}
}
