package handlers

import (
	"errors"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps the service error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidToken):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrNotVerified):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	body := fiber.Map{"message": err.Error()}
	if status == fiber.StatusInternalServerError {
		// Do not leak internals; the detail goes to the log at the call site.
		body = fiber.Map{"message": "internal server error"}
	}
	return c.Status(status).JSON(body)
}

// currentUserID reads the authenticated user's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}

// currentTier reads the authenticated user's tier claim, defaulting to
// Bronze for tokens issued before tiers existed.
func currentTier(c *fiber.Ctx) models.Tier {
	if tier, ok := c.Locals("tier").(string); ok && tier != "" {
		return models.Tier(tier)
	}
	return models.TierBronze
}
