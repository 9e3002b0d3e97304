package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/reachjvc/daygame-coach-api/internal/logger"
)

// RequestLogger logs every request with method, path, status, and
// latency.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start).String(),
		)
		return err
	}
}
