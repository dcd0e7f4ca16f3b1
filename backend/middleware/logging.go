package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

func LoggingMiddleware(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		logger.Printf(
			"%s %s %s %d %v",
			c.IP(),
			c.Method(),
			c.OriginalURL(),
			c.Response().StatusCode(),
			time.Since(start),
		)
		if err != nil {
			logger.Printf("request error: %v", err)
		}

		return err
	}
}
