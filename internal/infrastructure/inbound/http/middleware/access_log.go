package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	ports "social-feed-service/internal/domain/ports/output"
	"social-feed-service/internal/infrastructure/inbound/http/response"
)

func AccessLog(log ports.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status, _ = response.Map(err)
		}

		attrs := []any{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
		}
		if r := Requester(c); r != nil {
			attrs = append(attrs, slog.Int64("user_id", r.UserID))
		}
		log.Info("HTTP request", attrs...)
		return err
	}
}
