package middleware

import (
	"coursecatalog/backend/config"
	"coursecatalog/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware guards catalog mutations. The token subject is stored in
// c.Locals("admin").
func AdminMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject, err := utils.ExtractSubjectFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		if subject != cfg.AdminUsername {
			return utils.Error(c, fiber.StatusForbidden, fiber.NewError(fiber.StatusForbidden, "Forbidden - Admin access required"))
		}
		c.Locals("admin", subject)
		return c.Next()
	}
}
