package middleware

import (
	"log"
	"strings"

	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware to check for a valid JWT token.
// On success it stores the caller's identity in Locals; handlers read it
// from there and pass it into services explicitly.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		c.Locals("user_id", claims["user_id"])
		c.Locals("username", claims["username"])
		c.Locals("tier", claims["tier"])
		c.Locals("is_staff", claims["is_staff"])

		return c.Next()
	}
}

// StaffOnly rejects requests from non-staff users. Must run after
// AuthRequired.
func StaffOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isStaff, ok := c.Locals("is_staff").(bool)
		if !ok || !isStaff {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Staff access required",
			})
		}
		return c.Next()
	}
}
