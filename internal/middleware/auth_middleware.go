package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"reisemlak_backend/pkg/utils/jwt"
)

// AdminAuth Authorization: Bearer <token> başlığını doğrular ve claims'i
// c.Locals("admin") içine koyar
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing or malformed token",
			})
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		if claims.Role != jwt.AdminRole {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}

		c.Locals("admin", claims)
		return c.Next()
	}
}
